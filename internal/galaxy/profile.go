package galaxy

import (
	"fmt"

	"starseed-server/internal/celestial"
	"starseed-server/internal/sampler"
	"starseed-server/internal/shared/errors"
)

// StarProfile assigns a name and spectral class to a star from its seed.
type StarProfile interface {
	Name() string
	Star(seed uint64) celestial.Star
}

const (
	ProfileReference = "reference"
	ProfileCatalog   = "catalog"
)

// ProfileByName returns the star profile registered under name.
func ProfileByName(name string) (StarProfile, error) {
	switch name {
	case ProfileReference, "":
		return ReferenceProfile{}, nil
	case ProfileCatalog:
		return CatalogProfile{}, nil
	default:
		return nil, errors.Validationf("unknown star profile %q", name)
	}
}

// ReferenceProfile leaves stars unnamed and classifies every star as O.
type ReferenceProfile struct{}

func (ReferenceProfile) Name() string { return ProfileReference }

func (ReferenceProfile) Star(seed uint64) celestial.Star {
	return celestial.NewStar("", celestial.StarTypeO, seed)
}

// CatalogProfile names and classifies stars from weighted tables sampled on
// the attributes stream of the star seed.
type CatalogProfile struct{}

func (CatalogProfile) Name() string { return ProfileCatalog }

func (CatalogProfile) Star(seed uint64) celestial.Star {
	s := sampler.NewStream(seed, sampler.Attributes)

	starType := sampler.Choose(s, spectralClasses)
	name := fmt.Sprintf("%s-%04d", sampler.Pick(s, catalogNames), s.IntN(10000))

	return celestial.NewStar(name, starType, seed)
}

// Frequencies per 100000 stars: red dwarfs dominate, hot giants and stellar
// remnants are rare.
var spectralClasses = []sampler.Weighted[celestial.StarType]{
	{Value: celestial.StarTypeO, Weight: 500},
	{Value: celestial.StarTypeB, Weight: 2000},
	{Value: celestial.StarTypeA, Weight: 5000},
	{Value: celestial.StarTypeF, Weight: 10000},
	{Value: celestial.StarTypeG, Weight: 17500},
	{Value: celestial.StarTypeK, Weight: 25000},
	{Value: celestial.StarTypeM, Weight: 39500},
	{Value: celestial.StarTypeNeutron, Weight: 300},
	{Value: celestial.StarTypePulsar, Weight: 150},
	{Value: celestial.StarTypeSupernova, Weight: 50},
}

var catalogNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Betelgeuse", "Aldebaran", "Spica", "Antares", "Pollux", "Fomalhaut",
	"Deneb", "Regulus", "Adhara", "Castor", "Gacrux", "Bellatrix", "Elnath",
	"Miaplacidus", "Alnilam", "Alnair", "Alioth", "Dubhe", "Mirfak", "Wezen",
	"Sargas", "Kaus", "Avior", "Menkalinan", "Atria", "Alhena", "Peacock",
	"Alsephina", "Mirzam", "Polaris", "Alphard", "Hamal", "Algieba", "Diphda",
	"Mizar", "Nunki", "Menkent", "Mirach", "Alpheratz", "Rasalhague", "Kochab",
	"Saiph", "Zubenelgenubi", "Enif", "Schedar", "Markab", "Unukalhai", "Tau",
}
