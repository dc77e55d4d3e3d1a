package galaxy

import "starseed-server/internal/celestial"

// NearbyStarsResponse is returned by the named-galaxy nearby query.
type NearbyStarsResponse struct {
	Galaxy   celestial.Galaxy           `json:"galaxy"`
	Position celestial.GalacticPosition `json:"position"`
	Stars    []celestial.Star           `json:"stars"`
}
