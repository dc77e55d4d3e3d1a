// Package smallbody samples solid small bodies from a single seed.
//
// Every attribute is drawn from the attributes stream of the body seed, so a
// body can be regenerated from its seed and name alone.
package smallbody

import (
	"math"

	"starseed-server/internal/celestial"
	"starseed-server/internal/sampler"
)

// profile bounds the radius (km) and composition of one kind of small body.
type profile struct {
	minRadius    float64
	maxRadius    float64
	compositions []sampler.Weighted[celestial.HardBodyType]
}

var (
	moonProfile = profile{
		minRadius: 5,
		maxRadius: 2700,
		compositions: []sampler.Weighted[celestial.HardBodyType]{
			{Value: celestial.HardBodyTypeRocky, Weight: 35},
			{Value: celestial.HardBodyTypeIce, Weight: 30},
			{Value: celestial.HardBodyTypeWater, Weight: 10},
			{Value: celestial.HardBodyTypeAmmonia, Weight: 8},
			{Value: celestial.HardBodyTypeIron, Weight: 12},
			{Value: celestial.HardBodyTypeOther, Weight: 5},
		},
	}
	dwarfPlanetProfile = profile{
		minRadius: 200,
		maxRadius: 1200,
		compositions: []sampler.Weighted[celestial.HardBodyType]{
			{Value: celestial.HardBodyTypeIce, Weight: 40},
			{Value: celestial.HardBodyTypeRocky, Weight: 30},
			{Value: celestial.HardBodyTypeAmmonia, Weight: 15},
			{Value: celestial.HardBodyTypeWater, Weight: 10},
			{Value: celestial.HardBodyTypeIron, Weight: 3},
			{Value: celestial.HardBodyTypeOther, Weight: 2},
		},
	}
	dwarfMoonProfile = profile{
		minRadius: 10,
		maxRadius: 400,
		compositions: []sampler.Weighted[celestial.HardBodyType]{
			{Value: celestial.HardBodyTypeIce, Weight: 45},
			{Value: celestial.HardBodyTypeRocky, Weight: 35},
			{Value: celestial.HardBodyTypeAmmonia, Weight: 10},
			{Value: celestial.HardBodyTypeWater, Weight: 5},
			{Value: celestial.HardBodyTypeOther, Weight: 5},
		},
	}
	asteroidProfile = profile{
		minRadius: 0.5,
		maxRadius: 500,
		compositions: []sampler.Weighted[celestial.HardBodyType]{
			{Value: celestial.HardBodyTypeRocky, Weight: 60},
			{Value: celestial.HardBodyTypeIron, Weight: 30},
			{Value: celestial.HardBodyTypeOther, Weight: 10},
		},
	}
	cometProfile = profile{
		minRadius: 0.5,
		maxRadius: 30,
		compositions: []sampler.Weighted[celestial.HardBodyType]{
			{Value: celestial.HardBodyTypeIce, Weight: 60},
			{Value: celestial.HardBodyTypeAmmonia, Weight: 20},
			{Value: celestial.HardBodyTypeWater, Weight: 15},
			{Value: celestial.HardBodyTypeRocky, Weight: 5},
		},
	}
)

// Bulk densities in kg/m³ as mean and standard deviation.
var densities = map[celestial.HardBodyType][2]float64{
	celestial.HardBodyTypeRocky:   {3000, 300},
	celestial.HardBodyTypeIce:     {1000, 150},
	celestial.HardBodyTypeWater:   {1100, 100},
	celestial.HardBodyTypeAmmonia: {850, 100},
	celestial.HardBodyTypeIron:    {7000, 500},
	celestial.HardBodyTypeOther:   {2000, 500},
}

const minDensity = 300

// SphereMass returns the mass in kg of a sphere of radiusKm kilometers with
// the given density in kg/m³.
func SphereMass(radiusKm, density float64) float64 {
	r := radiusKm * 1000
	return density * 4.0 / 3.0 * math.Pi * r * r * r
}

func (p profile) sample(seed uint64) (celestial.HardBodyType, float64, float64) {
	s := sampler.NewStream(seed, sampler.Attributes)

	composition := sampler.Choose(s, p.compositions)
	radius := s.LogUniform(p.minRadius, p.maxRadius)
	d := densities[composition]
	density := s.PositiveNormal(d[0], d[1], minDensity)

	return composition, radius, SphereMass(radius, density)
}

func Moon(seed uint64, name string) (celestial.Moon, error) {
	composition, radius, mass := moonProfile.sample(seed)
	return celestial.NewMoon(name, composition, seed, radius, mass)
}

func DwarfPlanet(seed uint64, name string) (celestial.DwarfPlanet, error) {
	composition, radius, mass := dwarfPlanetProfile.sample(seed)
	return celestial.NewDwarfPlanet(name, composition, seed, radius, mass)
}

func DwarfMoon(seed uint64, name string) (celestial.DwarfMoon, error) {
	composition, radius, mass := dwarfMoonProfile.sample(seed)
	return celestial.NewDwarfMoon(name, composition, seed, radius, mass)
}

func Asteroid(seed uint64, name string) (celestial.Asteroid, error) {
	composition, radius, mass := asteroidProfile.sample(seed)
	return celestial.NewAsteroid(name, composition, seed, radius, mass)
}

func Comet(seed uint64, name string) (celestial.Comet, error) {
	composition, radius, mass := cometProfile.sample(seed)
	return celestial.NewComet(name, composition, seed, radius, mass)
}
