package universe

import (
	"starseed-server/internal/celestial"
	"starseed-server/internal/shared/errors"
)

// Depth selects how far below the nearby stars an exploration descends.
type Depth string

const (
	DepthStars   Depth = "stars"
	DepthPlanets Depth = "planets"
	DepthMoons   Depth = "moons"
)

// ParseDepth accepts "", stars, planets or moons. The empty string means
// stars.
func ParseDepth(s string) (Depth, error) {
	switch Depth(s) {
	case "", DepthStars:
		return DepthStars, nil
	case DepthPlanets, DepthMoons:
		return Depth(s), nil
	default:
		return "", errors.Validationf("unknown depth %q: expected stars, planets or moons", s)
	}
}

// StarSystem is a star with its planets. Planets is nil at star depth.
type StarSystem struct {
	Star    celestial.Star     `json:"star"`
	Planets []celestial.Planet `json:"planets,omitempty"`
}

type Exploration struct {
	Galaxy   celestial.Galaxy           `json:"galaxy"`
	Position celestial.GalacticPosition `json:"position"`
	Depth    Depth                      `json:"depth"`
	Systems  []StarSystem               `json:"systems"`
}
