package planet

import (
	"fmt"
	"log/slog"

	"starseed-server/internal/celestial"
	"starseed-server/internal/sampler"
	"starseed-server/internal/smallbody"
)

type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	logger.Debug("Initializing planet service")

	return &Service{
		logger: logger,
	}
}

// FromSeed builds the planet identified by seed. The planet has no moons;
// use GenerateMoons to populate them.
func (s *Service) FromSeed(seed uint64, name string) (celestial.Planet, error) {
	rng := sampler.NewStream(seed, sampler.Attributes)

	planetType := sampler.Choose(rng, planetTypes)
	p := physiques[planetType]
	radius := rng.PositiveNormal(p.radiusMean, p.radiusStddev, p.radiusFloor)
	density := rng.PositiveNormal(p.densityMean, p.densityStddev, minDensity)

	planet, err := celestial.NewPlanet(name, planetType, seed, radius, smallbody.SphereMass(radius, density))
	if err != nil {
		return celestial.Planet{}, fmt.Errorf("failed to build planet %d: %w", seed, err)
	}
	return planet, nil
}

// GenerateMoons returns a copy of planet with its moons appended in the order
// their seeds are drawn from the planet seed. The input is not modified.
func (s *Service) GenerateMoons(planet celestial.Planet) (celestial.Planet, error) {
	logger := s.logger.With("component", "planet_service", "operation", "generate_moons", "planet_seed", planet.Seed)

	rng := sampler.New(planet.Seed)
	p := physiques[planet.PlanetType]
	count := rng.Between(p.minMoons, p.maxMoons)

	out := planet
	out.Moons = make([]celestial.Moon, 0, len(planet.Moons)+count)
	out.Moons = append(out.Moons, planet.Moons...)

	for i := range count {
		moon, err := smallbody.Moon(rng.Uint64(), moonName(planet.Name, i))
		if err != nil {
			logger.Error("Failed to generate moon", "error", err, "index", i)
			return celestial.Planet{}, fmt.Errorf("failed to generate moon %d: %w", i, err)
		}
		out.AddMoon(moon)
	}

	logger.Debug("Moons generated", "count", count)
	return out, nil
}

// moonName labels moons with lowercase letters after their planet: a..z, then
// aa, ab and so on. Unnamed planets have unnamed moons.
func moonName(planet string, index int) string {
	if planet == "" {
		return ""
	}
	return planet + " " + letters(index)
}

func letters(index int) string {
	suffix := ""
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		suffix = string(rune('a'+(n-1)%26)) + suffix
	}
	return suffix
}
