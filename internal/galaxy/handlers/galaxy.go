package handlers

import (
	"log/slog"
	"net/http"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/shared/request"
	"starseed-server/internal/shared/response"
)

type GalaxyHandler struct {
	service       *galaxy.Service
	defaultGalaxy celestial.Galaxy
}

func NewGalaxyHandler(service *galaxy.Service, defaultGalaxy celestial.Galaxy) *GalaxyHandler {
	return &GalaxyHandler{
		service:       service,
		defaultGalaxy: defaultGalaxy,
	}
}

// NearbyStars handles GET /nearby_stars/{x}/{y} against the default galaxy.
func (h *GalaxyHandler) NearbyStars(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "nearby_stars")

	pos, err := request.Position(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, h.service.NearbyStars(h.defaultGalaxy, pos))
}

// List handles GET /api/galaxies
func (h *GalaxyHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "list_galaxies")

	galaxies, err := h.service.ListGalaxies(r.Context())
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if galaxies == nil {
		galaxies = []celestial.Galaxy{}
	}

	response.Success(w, http.StatusOK, galaxies)
}

// Register handles POST /api/galaxies - Admin only
func (h *GalaxyHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "register_galaxy")

	var g celestial.Galaxy
	if err := request.DecodeJSON(r, &g); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	if err := h.service.RegisterGalaxy(r.Context(), g); err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusCreated, g)
}
