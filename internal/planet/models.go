package planet

import (
	"starseed-server/internal/celestial"
	"starseed-server/internal/sampler"
)

// physique describes the sampled shape of one planet type. Radii are in km,
// densities in kg/m³.
type physique struct {
	radiusMean    float64
	radiusStddev  float64
	radiusFloor   float64
	densityMean   float64
	densityStddev float64
	minMoons      int
	maxMoons      int
}

var planetTypes = []sampler.Weighted[celestial.PlanetType]{
	{Value: celestial.PlanetTypeRocky, Weight: 20},
	{Value: celestial.PlanetTypeBarren, Weight: 18},
	{Value: celestial.PlanetTypeTerrestrial, Weight: 14},
	{Value: celestial.PlanetTypeGasGiant, Weight: 14},
	{Value: celestial.PlanetTypeDesert, Weight: 12},
	{Value: celestial.PlanetTypeIceGiant, Weight: 10},
	{Value: celestial.PlanetTypeOcean, Weight: 8},
	{Value: celestial.PlanetTypeOther, Weight: 4},
}

var physiques = map[celestial.PlanetType]physique{
	celestial.PlanetTypeGasGiant:    {60000, 15000, 20000, 1300, 300, 4, 24},
	celestial.PlanetTypeIceGiant:    {25000, 4000, 15000, 1600, 200, 2, 14},
	celestial.PlanetTypeTerrestrial: {6400, 1200, 2000, 5500, 400, 0, 2},
	celestial.PlanetTypeOcean:       {7000, 1500, 3000, 4000, 500, 0, 2},
	celestial.PlanetTypeDesert:      {5500, 1200, 2000, 5000, 400, 0, 2},
	celestial.PlanetTypeRocky:       {4000, 1200, 1000, 4500, 500, 0, 1},
	celestial.PlanetTypeBarren:      {3000, 1000, 800, 4000, 500, 0, 1},
	celestial.PlanetTypeOther:       {5000, 2000, 500, 3500, 1000, 0, 3},
}

const minDensity = 500
