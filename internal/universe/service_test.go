package universe

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/planet"
	apperrors "starseed-server/internal/shared/errors"
	"starseed-server/internal/system"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(profile galaxy.StarProfile, galaxies ...celestial.Galaxy) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	planetService := planet.NewService(logger)
	return NewService(
		galaxy.NewService(galaxy.NewMemoryCatalog(galaxies...), profile, logger),
		system.NewService(planetService, logger),
		planetService,
		logger,
	)
}

func milkyWay() celestial.Galaxy {
	return celestial.NewGalaxy("Milky Way", celestial.GalaxyTypeSpiral, 42)
}

func TestExploreDepths(t *testing.T) {
	svc := newTestService(galaxy.CatalogProfile{})
	ctx := context.Background()
	origin := celestial.GalacticPosition{}

	stars, err := svc.Explore(ctx, milkyWay(), origin, DepthStars)
	require.NoError(t, err)
	require.Len(t, stars, galaxy.NearbyStarCount)
	for _, sys := range stars {
		assert.Nil(t, sys.Planets)
	}

	planets, err := svc.Explore(ctx, milkyWay(), origin, DepthPlanets)
	require.NoError(t, err)
	moons, err := svc.Explore(ctx, milkyWay(), origin, DepthMoons)
	require.NoError(t, err)

	totalMoons := 0
	for i := range stars {
		assert.Equal(t, stars[i].Star, planets[i].Star)
		assert.Equal(t, stars[i].Star, moons[i].Star)
		require.Len(t, moons[i].Planets, len(planets[i].Planets))
		for j, p := range planets[i].Planets {
			assert.Empty(t, p.Moons)
			assert.Equal(t, p.Seed, moons[i].Planets[j].Seed)
			totalMoons += len(moons[i].Planets[j].Moons)
		}
	}
	assert.Positive(t, totalMoons)

	again, err := svc.Explore(ctx, milkyWay(), celestial.NewGalacticPosition(3, 4), DepthMoons)
	require.NoError(t, err)
	assert.Equal(t, moons, again)
}

func TestExploreHonoursCancellation(t *testing.T) {
	svc := newTestService(galaxy.ReferenceProfile{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Explore(ctx, milkyWay(), celestial.GalacticPosition{}, DepthMoons)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExploreGalaxy(t *testing.T) {
	svc := newTestService(galaxy.ReferenceProfile{}, milkyWay())
	ctx := context.Background()

	exp, err := svc.ExploreGalaxy(ctx, "Milky Way", celestial.NewGalacticPosition(1, 2), DepthStars)
	require.NoError(t, err)
	assert.Equal(t, milkyWay(), exp.Galaxy)
	assert.Equal(t, celestial.NewGalacticPosition(1, 2), exp.Position)
	assert.Len(t, exp.Systems, galaxy.NearbyStarCount)

	_, err = svc.ExploreGalaxy(ctx, "Andromeda", celestial.GalacticPosition{}, DepthStars)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.GetType(err))
}

func TestStarSystemMatchesExploration(t *testing.T) {
	svc := newTestService(galaxy.CatalogProfile{})
	ctx := context.Background()

	systems, err := svc.Explore(ctx, milkyWay(), celestial.GalacticPosition{}, DepthMoons)
	require.NoError(t, err)

	for _, want := range systems {
		got, err := svc.StarSystem(ctx, want.Star.Seed)
		require.NoError(t, err)
		assert.Equal(t, want, *got)
	}
}

func TestBodyRegeneratesEveryKind(t *testing.T) {
	svc := newTestService(galaxy.CatalogProfile{})
	ctx := context.Background()

	for _, kind := range celestial.BodyTypes {
		if kind == celestial.BodyTypeOther {
			continue
		}
		t.Run(string(kind), func(t *testing.T) {
			a, err := svc.Body(ctx, kind, 314)
			require.NoError(t, err)
			b, err := svc.Body(ctx, kind, 314)
			require.NoError(t, err)

			assert.Equal(t, kind, a.BodyType())
			assert.Equal(t, a, b)
		})
	}
}

func TestBodyPlanetIncludesMoons(t *testing.T) {
	svc := newTestService(galaxy.ReferenceProfile{})

	found := false
	for seed := range uint64(50) {
		body, err := svc.Body(context.Background(), celestial.BodyTypePlanet, seed)
		require.NoError(t, err)
		if len(body.(celestial.Planet).Moons) > 0 {
			found = true
			break
		}
	}
	assert.True(t, found)
}

func TestBodyRejectsOther(t *testing.T) {
	svc := newTestService(galaxy.ReferenceProfile{})

	_, err := svc.Body(context.Background(), celestial.BodyTypeOther, 1)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetType(err))
}

func TestBlackHoleMass(t *testing.T) {
	for seed := range uint64(200) {
		bh, err := blackHole(seed)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, bh.Mass, 5*solarMass*0.999999)
		assert.LessOrEqual(t, bh.Mass, 100*solarMass*1.000001)
	}
}

func TestParseDepth(t *testing.T) {
	for in, want := range map[string]Depth{"": DepthStars, "stars": DepthStars, "planets": DepthPlanets, "moons": DepthMoons} {
		got, err := ParseDepth(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDepth("asteroids")
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.GetType(err))
}
