package universe

import (
	"context"
	"fmt"
	"log/slog"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/planet"
	"starseed-server/internal/sampler"
	"starseed-server/internal/shared/errors"
	"starseed-server/internal/shared/telemetry"
	"starseed-server/internal/smallbody"
	"starseed-server/internal/system"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service composes the per-level generators into whole star systems. It holds
// no generated state; every result is derived from seeds on demand.
type Service struct {
	galaxyService *galaxy.Service
	systemService *system.Service
	planetService *planet.Service
	tracer        trace.Tracer
	logger        *slog.Logger
}

func NewService(galaxyService *galaxy.Service, systemService *system.Service, planetService *planet.Service, logger *slog.Logger) *Service {
	return &Service{
		galaxyService: galaxyService,
		systemService: systemService,
		planetService: planetService,
		tracer:        telemetry.Tracer(),
		logger:        logger,
	}
}

// Explore generates the nearby star systems of g down to depth.
func (s *Service) Explore(ctx context.Context, g celestial.Galaxy, pos celestial.GalacticPosition, depth Depth) ([]StarSystem, error) {
	ctx, span := s.tracer.Start(ctx, "universe.Explore", trace.WithAttributes(
		attribute.String("galaxy.name", g.Name),
		attribute.String("depth", string(depth)),
	))
	defer span.End()

	logger := s.logger.With("component", "universe_service", "operation", "explore", "galaxy", g.Name, "depth", depth)

	stars := s.galaxyService.NearbyStars(g, pos)
	systems := make([]StarSystem, 0, len(stars))
	for _, star := range stars {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "exploration cancelled")
			return nil, err
		}

		sys, err := s.starSystem(star, depth)
		if err != nil {
			logger.Error("Failed to generate star system", "error", err, "star_seed", star.Seed)
			span.RecordError(err)
			span.SetStatus(codes.Error, "star system generation failed")
			return nil, err
		}
		systems = append(systems, sys)
	}

	logger.Debug("Exploration generated", "systems", len(systems))
	return systems, nil
}

// ExploreGalaxy resolves the named galaxy in the catalog and explores it.
func (s *Service) ExploreGalaxy(ctx context.Context, name string, pos celestial.GalacticPosition, depth Depth) (*Exploration, error) {
	g, err := s.galaxyService.GetGalaxy(ctx, name)
	if err != nil {
		return nil, err
	}

	systems, err := s.Explore(ctx, *g, pos, depth)
	if err != nil {
		return nil, err
	}

	return &Exploration{
		Galaxy:   *g,
		Position: pos,
		Depth:    depth,
		Systems:  systems,
	}, nil
}

// StarSystem regenerates the star carrying seed together with its planets
// and their moons.
func (s *Service) StarSystem(ctx context.Context, seed uint64) (*StarSystem, error) {
	_, span := s.tracer.Start(ctx, "universe.StarSystem", trace.WithAttributes(
		attribute.String("star.seed", fmt.Sprint(seed)),
	))
	defer span.End()

	sys, err := s.starSystem(s.galaxyService.Star(seed), DepthMoons)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "star system generation failed")
		return nil, err
	}
	return &sys, nil
}

func (s *Service) starSystem(star celestial.Star, depth Depth) (StarSystem, error) {
	sys := StarSystem{Star: star}
	if depth == DepthStars {
		return sys, nil
	}

	planets, err := s.systemService.GeneratePlanets(star)
	if err != nil {
		return StarSystem{}, err
	}

	if depth == DepthMoons {
		for i, p := range planets {
			withMoons, err := s.planetService.GenerateMoons(p)
			if err != nil {
				return StarSystem{}, err
			}
			planets[i] = withMoons
		}
	}

	sys.Planets = planets
	return sys, nil
}

// Body regenerates a single unnamed body of the given kind from its seed.
// Planets include their moons.
func (s *Service) Body(ctx context.Context, kind celestial.BodyType, seed uint64) (celestial.Body, error) {
	_, span := s.tracer.Start(ctx, "universe.Body", trace.WithAttributes(
		attribute.String("body.kind", string(kind)),
		attribute.String("body.seed", fmt.Sprint(seed)),
	))
	defer span.End()

	body, err := s.body(kind, seed)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "body generation failed")
		return nil, err
	}
	return body, nil
}

func (s *Service) body(kind celestial.BodyType, seed uint64) (celestial.Body, error) {
	switch kind {
	case celestial.BodyTypeStar:
		return s.galaxyService.Star(seed), nil
	case celestial.BodyTypePlanet:
		p, err := s.planetService.FromSeed(seed, "")
		if err != nil {
			return nil, err
		}
		return s.planetService.GenerateMoons(p)
	case celestial.BodyTypeMoon:
		return smallbody.Moon(seed, "")
	case celestial.BodyTypeDwarfPlanet:
		return smallbody.DwarfPlanet(seed, "")
	case celestial.BodyTypeDwarfMoon:
		return smallbody.DwarfMoon(seed, "")
	case celestial.BodyTypeAsteroid:
		return smallbody.Asteroid(seed, "")
	case celestial.BodyTypeComet:
		return smallbody.Comet(seed, "")
	case celestial.BodyTypeBlackHole:
		return blackHole(seed)
	default:
		return nil, errors.Validationf("body kind %q cannot be generated", kind)
	}
}

const solarMass = 1.989e30

// blackHole samples a stellar-mass black hole between 5 and 100 solar masses.
func blackHole(seed uint64) (celestial.BlackHole, error) {
	rng := sampler.NewStream(seed, sampler.Attributes)
	return celestial.NewBlackHole("", seed, rng.LogUniform(5, 100)*solarMass)
}
