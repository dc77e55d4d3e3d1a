package celestial

import (
	"errors"
	"fmt"
	"math"

	apperrors "starseed-server/internal/shared/errors"
)

// ErrInvalidAttribute is wrapped by every constructor rejecting a physical value.
var ErrInvalidAttribute = errors.New("invalid attribute")

// Body is implemented by every concrete celestial body. The set of
// implementations is closed to this package.
type Body interface {
	BodyType() BodyType
	isBody()
}

func (Star) BodyType() BodyType        { return BodyTypeStar }
func (Planet) BodyType() BodyType      { return BodyTypePlanet }
func (Moon) BodyType() BodyType        { return BodyTypeMoon }
func (DwarfPlanet) BodyType() BodyType { return BodyTypeDwarfPlanet }
func (DwarfMoon) BodyType() BodyType   { return BodyTypeDwarfMoon }
func (Asteroid) BodyType() BodyType    { return BodyTypeAsteroid }
func (Comet) BodyType() BodyType       { return BodyTypeComet }
func (BlackHole) BodyType() BodyType   { return BodyTypeBlackHole }

func (Star) isBody()        {}
func (Planet) isBody()      {}
func (Moon) isBody()        {}
func (DwarfPlanet) isBody() {}
func (DwarfMoon) isBody()   {}
func (Asteroid) isBody()    {}
func (Comet) isBody()       {}
func (BlackHole) isBody()   {}

func NewGalaxy(name string, galaxyType GalaxyType, seed uint64) Galaxy {
	return Galaxy{Name: name, GalaxyType: galaxyType, Seed: seed}
}

func NewGalacticPosition(x, y float64) GalacticPosition {
	return GalacticPosition{X: x, Y: y}
}

func NewStar(name string, starType StarType, seed uint64) Star {
	return Star{Name: name, StarType: starType, Seed: seed}
}

// NewPlanet returns a planet without moons. Radius and mass must be finite and
// non-negative.
func NewPlanet(name string, planetType PlanetType, seed uint64, radius, mass float64) (Planet, error) {
	if err := validatePhysical(radius, mass); err != nil {
		return Planet{}, err
	}
	return Planet{
		Name:       name,
		PlanetType: planetType,
		Seed:       seed,
		Radius:     radius,
		Mass:       mass,
		Moons:      []Moon{},
	}, nil
}

// AddMoon appends a moon; moons keep the order in which they were added.
func (p *Planet) AddMoon(m Moon) {
	p.Moons = append(p.Moons, m)
}

func NewMoon(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (Moon, error) {
	hb, err := newHardBody(name, hardBodyType, seed, radius, mass)
	return Moon{hb}, err
}

func NewDwarfPlanet(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (DwarfPlanet, error) {
	hb, err := newHardBody(name, hardBodyType, seed, radius, mass)
	return DwarfPlanet{hb}, err
}

func NewDwarfMoon(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (DwarfMoon, error) {
	hb, err := newHardBody(name, hardBodyType, seed, radius, mass)
	return DwarfMoon{hb}, err
}

func NewAsteroid(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (Asteroid, error) {
	hb, err := newHardBody(name, hardBodyType, seed, radius, mass)
	return Asteroid{hb}, err
}

func NewComet(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (Comet, error) {
	hb, err := newHardBody(name, hardBodyType, seed, radius, mass)
	return Comet{hb}, err
}

func NewBlackHole(name string, seed uint64, mass float64) (BlackHole, error) {
	if err := checkPhysical("mass", mass); err != nil {
		return BlackHole{}, err
	}
	return BlackHole{Name: name, Seed: seed, Mass: mass}, nil
}

func newHardBody(name string, hardBodyType HardBodyType, seed uint64, radius, mass float64) (HardBody, error) {
	if err := validatePhysical(radius, mass); err != nil {
		return HardBody{}, err
	}
	return HardBody{
		Name:         name,
		HardBodyType: hardBodyType,
		Seed:         seed,
		Radius:       radius,
		Mass:         mass,
	}, nil
}

// Validate reports whether a decoded planet and its moons hold physical values.
func (p Planet) Validate() error {
	if err := validatePhysical(p.Radius, p.Mass); err != nil {
		return err
	}
	for i, m := range p.Moons {
		if err := validatePhysical(m.Radius, m.Mass); err != nil {
			return fmt.Errorf("moon %d: %w", i, err)
		}
	}
	return nil
}

func (hb HardBody) Validate() error {
	return validatePhysical(hb.Radius, hb.Mass)
}

func validatePhysical(radius, mass float64) error {
	if err := checkPhysical("radius", radius); err != nil {
		return err
	}
	return checkPhysical("mass", mass)
}

func checkPhysical(attribute string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return apperrors.WrapValidation(
			fmt.Sprintf("%s %v must be finite and non-negative", attribute, v),
			ErrInvalidAttribute,
		)
	}
	return nil
}
