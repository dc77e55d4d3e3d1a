package celestial

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownVariant is returned when decoding a classification name that does
// not belong to its enumeration.
var ErrUnknownVariant = errors.New("unknown variant")

var (
	BodyTypes = []BodyType{
		BodyTypeStar, BodyTypePlanet, BodyTypeMoon, BodyTypeAsteroid, BodyTypeComet,
		BodyTypeDwarfPlanet, BodyTypeDwarfMoon, BodyTypeBlackHole, BodyTypeOther,
	}
	StarTypes = []StarType{
		StarTypeO, StarTypeB, StarTypeA, StarTypeF, StarTypeG, StarTypeK, StarTypeM,
		StarTypeNeutron, StarTypePulsar, StarTypeSupernova, StarTypeOther,
	}
	PlanetTypes = []PlanetType{
		PlanetTypeGasGiant, PlanetTypeTerrestrial, PlanetTypeIceGiant, PlanetTypeRocky,
		PlanetTypeBarren, PlanetTypeDesert, PlanetTypeOcean, PlanetTypeOther,
	}
	HardBodyTypes = []HardBodyType{
		HardBodyTypeRocky, HardBodyTypeIce, HardBodyTypeWater,
		HardBodyTypeAmmonia, HardBodyTypeIron, HardBodyTypeOther,
	}
	GalaxyTypes = []GalaxyType{GalaxyTypeSpiral}
)

func (t BodyType) Valid() bool     { return slices.Contains(BodyTypes, t) }
func (t StarType) Valid() bool     { return slices.Contains(StarTypes, t) }
func (t PlanetType) Valid() bool   { return slices.Contains(PlanetTypes, t) }
func (t HardBodyType) Valid() bool { return slices.Contains(HardBodyTypes, t) }
func (t GalaxyType) Valid() bool   { return slices.Contains(GalaxyTypes, t) }

func (t *BodyType) UnmarshalJSON(data []byte) error {
	return decodeVariant(data, "body type", t)
}

func (t *StarType) UnmarshalJSON(data []byte) error {
	return decodeVariant(data, "star type", t)
}

func (t *PlanetType) UnmarshalJSON(data []byte) error {
	return decodeVariant(data, "planet type", t)
}

func (t *HardBodyType) UnmarshalJSON(data []byte) error {
	return decodeVariant(data, "hard body type", t)
}

func (t *GalaxyType) UnmarshalJSON(data []byte) error {
	return decodeVariant(data, "galaxy type", t)
}

type variant interface {
	~string
	Valid() bool
}

func decodeVariant[T variant](data []byte, kind string, dst *T) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("decode %s: %w", kind, err)
	}
	v := T(s)
	if !v.Valid() {
		return fmt.Errorf("%w: %s %q", ErrUnknownVariant, kind, s)
	}
	*dst = v
	return nil
}

// ParseBodyType matches a body kind name case-insensitively, ignoring
// underscores, so "dwarf_planet" and "DwarfPlanet" are equivalent.
func ParseBodyType(name string) (BodyType, error) {
	folded := strings.ReplaceAll(name, "_", "")
	for _, t := range BodyTypes {
		if strings.EqualFold(string(t), folded) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: body type %q", ErrUnknownVariant, name)
}
