package celestial

type BodyType string

const (
	BodyTypeStar        BodyType = "Star"
	BodyTypePlanet      BodyType = "Planet"
	BodyTypeMoon        BodyType = "Moon"
	BodyTypeAsteroid    BodyType = "Asteroid"
	BodyTypeComet       BodyType = "Comet"
	BodyTypeDwarfPlanet BodyType = "DwarfPlanet"
	BodyTypeDwarfMoon   BodyType = "DwarfMoon"
	BodyTypeBlackHole   BodyType = "BlackHole"
	BodyTypeOther       BodyType = "Other"
)

type StarType string

const (
	StarTypeO         StarType = "O"
	StarTypeB         StarType = "B"
	StarTypeA         StarType = "A"
	StarTypeF         StarType = "F"
	StarTypeG         StarType = "G"
	StarTypeK         StarType = "K"
	StarTypeM         StarType = "M"
	StarTypeNeutron   StarType = "Neutron"
	StarTypePulsar    StarType = "Pulsar"
	StarTypeSupernova StarType = "Supernova"
	StarTypeOther     StarType = "Other"
)

type PlanetType string

const (
	PlanetTypeGasGiant    PlanetType = "GasGiant"
	PlanetTypeTerrestrial PlanetType = "Terrestrial"
	PlanetTypeIceGiant    PlanetType = "IceGiant"
	PlanetTypeRocky       PlanetType = "Rocky"
	PlanetTypeBarren      PlanetType = "Barren"
	PlanetTypeDesert      PlanetType = "Desert"
	PlanetTypeOcean       PlanetType = "Ocean"
	PlanetTypeOther       PlanetType = "Other"
)

// HardBodyType is the material classification of solid small bodies.
type HardBodyType string

const (
	HardBodyTypeRocky   HardBodyType = "Rocky"
	HardBodyTypeIce     HardBodyType = "Ice"
	HardBodyTypeWater   HardBodyType = "Water"
	HardBodyTypeAmmonia HardBodyType = "Ammonia"
	HardBodyTypeIron    HardBodyType = "Iron"
	HardBodyTypeOther   HardBodyType = "Other"
)

type GalaxyType string

const (
	GalaxyTypeSpiral GalaxyType = "Spiral"
)

type Galaxy struct {
	Name       string     `json:"name"`
	GalaxyType GalaxyType `json:"galaxy_type"`
	Seed       uint64     `json:"seed"`
}

// GalacticPosition is a point in the galactic plane, in light years.
type GalacticPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Star struct {
	Name     string   `json:"name"`
	StarType StarType `json:"star_type"`
	Seed     uint64   `json:"seed"`
}

// Planet radius is in kilometers and mass in kilograms.
type Planet struct {
	Name       string     `json:"name"`
	PlanetType PlanetType `json:"planet_type"`
	Seed       uint64     `json:"seed"`
	Radius     float64    `json:"radius"`
	Mass       float64    `json:"mass"`
	Moons      []Moon     `json:"moons"`
}

// HardBody holds the attributes shared by every solid small body.
type HardBody struct {
	Name         string       `json:"name"`
	HardBodyType HardBodyType `json:"hard_body_type"`
	Seed         uint64       `json:"seed"`
	Radius       float64      `json:"radius"`
	Mass         float64      `json:"mass"`
}

type Moon struct {
	HardBody
}

type DwarfPlanet struct {
	HardBody
}

type DwarfMoon struct {
	HardBody
}

type Asteroid struct {
	HardBody
}

type Comet struct {
	HardBody
}

type BlackHole struct {
	Name string  `json:"name"`
	Seed uint64  `json:"seed"`
	Mass float64 `json:"mass"`
}
