package system

import (
	"fmt"
	"log/slog"
	"strings"

	"starseed-server/internal/celestial"
	"starseed-server/internal/planet"
	"starseed-server/internal/sampler"
)

type Service struct {
	planetService *planet.Service
	logger        *slog.Logger
}

func NewService(planetService *planet.Service, logger *slog.Logger) *Service {
	logger.Debug("Initializing system service")

	return &Service{
		planetService: planetService,
		logger:        logger,
	}
}

// planetCounts bounds how many planets orbit each spectral class. Stellar
// remnants keep few survivors and a supernova none.
var planetCounts = map[celestial.StarType][2]int{
	celestial.StarTypeO:         {0, 4},
	celestial.StarTypeB:         {0, 6},
	celestial.StarTypeA:         {1, 8},
	celestial.StarTypeF:         {2, 10},
	celestial.StarTypeG:         {2, 10},
	celestial.StarTypeK:         {1, 8},
	celestial.StarTypeM:         {0, 6},
	celestial.StarTypeNeutron:   {0, 2},
	celestial.StarTypePulsar:    {0, 2},
	celestial.StarTypeSupernova: {0, 0},
	celestial.StarTypeOther:     {0, 3},
}

// PlanetCountRange returns the inclusive planet count bounds for a star type.
func PlanetCountRange(starType celestial.StarType) (int, int) {
	bounds, ok := planetCounts[starType]
	if !ok {
		bounds = planetCounts[celestial.StarTypeOther]
	}
	return bounds[0], bounds[1]
}

// GeneratePlanets derives the planets orbiting star from the star seed, inner
// orbit first. Planets are returned without moons.
func (s *Service) GeneratePlanets(star celestial.Star) ([]celestial.Planet, error) {
	logger := s.logger.With("component", "system_service", "operation", "generate_planets", "star_seed", star.Seed, "star_type", star.StarType)

	rng := sampler.New(star.Seed)
	count := rng.Between(PlanetCountRange(star.StarType))

	planets := make([]celestial.Planet, 0, count)
	for i := range count {
		p, err := s.planetService.FromSeed(rng.Uint64(), planetName(star.Name, i))
		if err != nil {
			logger.Error("Failed to generate planet", "error", err, "index", i)
			return nil, fmt.Errorf("failed to generate planet %d of star %d: %w", i, star.Seed, err)
		}
		planets = append(planets, p)
	}

	logger.Debug("Planets generated", "count", count)
	return planets, nil
}

func planetName(star string, index int) string {
	if star == "" {
		return ""
	}
	return star + " " + roman(index+1)
}

var numerals = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

func roman(n int) string {
	var b strings.Builder
	for _, num := range numerals {
		for n >= num.value {
			b.WriteString(num.symbol)
			n -= num.value
		}
	}
	return b.String()
}
