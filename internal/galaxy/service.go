package galaxy

import (
	"context"
	"log/slog"

	"starseed-server/internal/celestial"
	"starseed-server/internal/sampler"
)

// NearbyStarCount is the number of stars returned by every nearby query.
const NearbyStarCount = 10

// NearbyStars derives the stars near pos from the galaxy seed. The position
// does not influence the result; the same galaxy always yields the same stars
// in the same order.
func NearbyStars(g celestial.Galaxy, pos celestial.GalacticPosition, profile StarProfile) []celestial.Star {
	s := sampler.New(g.Seed)

	stars := make([]celestial.Star, 0, NearbyStarCount)
	for range NearbyStarCount {
		stars = append(stars, profile.Star(s.Uint64()))
	}
	return stars
}

type Service struct {
	catalog Catalog
	profile StarProfile
	logger  *slog.Logger
}

func NewService(catalog Catalog, profile StarProfile, logger *slog.Logger) *Service {
	logger.Debug("Initializing galaxy service", "star_profile", profile.Name())

	return &Service{
		catalog: catalog,
		profile: profile,
		logger:  logger,
	}
}

func (s *Service) Profile() StarProfile {
	return s.profile
}

// NearbyStars generates the stars near pos in g.
func (s *Service) NearbyStars(g celestial.Galaxy, pos celestial.GalacticPosition) []celestial.Star {
	stars := NearbyStars(g, pos, s.profile)

	s.logger.Debug("Nearby stars generated",
		"component", "galaxy_service",
		"operation", "nearby_stars",
		"galaxy", g.Name,
		"seed", g.Seed,
		"x", pos.X,
		"y", pos.Y,
		"count", len(stars),
	)
	return stars
}

// NearbyStarsIn resolves the named galaxy in the catalog and generates the
// stars near pos.
func (s *Service) NearbyStarsIn(ctx context.Context, name string, pos celestial.GalacticPosition) (*celestial.Galaxy, []celestial.Star, error) {
	g, err := s.catalog.Get(ctx, name)
	if err != nil {
		return nil, nil, err
	}
	return g, s.NearbyStars(*g, pos), nil
}

// Star regenerates the star carrying seed under the active profile.
func (s *Service) Star(seed uint64) celestial.Star {
	return s.profile.Star(seed)
}

func (s *Service) GetGalaxy(ctx context.Context, name string) (*celestial.Galaxy, error) {
	return s.catalog.Get(ctx, name)
}

func (s *Service) ListGalaxies(ctx context.Context) ([]celestial.Galaxy, error) {
	return s.catalog.List(ctx)
}

func (s *Service) RegisterGalaxy(ctx context.Context, g celestial.Galaxy) error {
	logger := s.logger.With("component", "galaxy_service", "operation", "register_galaxy", "name", g.Name)

	if err := validateGalaxy(g); err != nil {
		return err
	}

	if err := s.catalog.Register(ctx, g); err != nil {
		return err
	}

	logger.Info("Galaxy registered", "galaxy_type", g.GalaxyType, "seed", g.Seed)
	return nil
}
