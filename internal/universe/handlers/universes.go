package handlers

import (
	"log/slog"
	"net/http"

	"starseed-server/internal/celestial"
	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/request"
	"starseed-server/internal/shared/response"
	"starseed-server/internal/universe"
)

type UniverseHandler struct {
	service *universe.Service
	logger  *slog.Logger
}

func NewUniverseHandler(service *universe.Service, logger *slog.Logger) *UniverseHandler {
	return &UniverseHandler{
		service: service,
		logger:  logger,
	}
}

// Explore handles GET /api/galaxies/{name}/nearby_stars/{x}/{y}?depth=
func (h *UniverseHandler) Explore(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	logger := h.logger.With("handler", "explore", "galaxy", name)

	pos, err := request.Position(r)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	depth, err := universe.ParseDepth(r.URL.Query().Get("depth"))
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	exploration, err := h.service.ExploreGalaxy(r.Context(), name, pos, depth)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, exploration)
}

// StarPlanets handles GET /api/stars/{seed}/planets
func (h *UniverseHandler) StarPlanets(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "star_planets")

	seed, err := request.Seed(r, "seed")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	system, err := h.service.StarSystem(r.Context(), seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, system)
}

// BodyResponse tags a regenerated body with its kind.
type BodyResponse struct {
	BodyType celestial.BodyType `json:"body_type"`
	Body     celestial.Body     `json:"body"`
}

// Body handles GET /api/bodies/{kind}/{seed}
func (h *UniverseHandler) Body(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With("handler", "body")

	kind, err := celestial.ParseBodyType(r.PathValue("kind"))
	if err != nil {
		response.Error(w, r, logger, errors.WrapValidation("unknown body kind", err))
		return
	}

	seed, err := request.Seed(r, "seed")
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	body, err := h.service.Body(r.Context(), kind, seed)
	if err != nil {
		response.Error(w, r, logger, err)
		return
	}

	response.Success(w, http.StatusOK, BodyResponse{BodyType: body.BodyType(), Body: body})
}
