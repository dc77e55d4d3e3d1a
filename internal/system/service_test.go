package system

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"starseed-server/internal/celestial"
	"starseed-server/internal/planet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(planet.NewService(logger), logger)
}

func TestGeneratePlanetsIsDeterministic(t *testing.T) {
	svc := newTestService()

	for _, starType := range celestial.StarTypes {
		for seed := range uint64(100) {
			star := celestial.NewStar("Vega", starType, seed)

			a, err := svc.GeneratePlanets(star)
			require.NoError(t, err)
			b, err := svc.GeneratePlanets(star)
			require.NoError(t, err)
			require.Equal(t, a, b)

			lo, hi := PlanetCountRange(starType)
			require.GreaterOrEqual(t, len(a), lo)
			require.LessOrEqual(t, len(a), hi)

			for i, p := range a {
				assert.Equal(t, "Vega "+roman(i+1), p.Name)
				assert.Empty(t, p.Moons)
			}
		}
	}
}

func TestGeneratePlanetsForUnnamedStar(t *testing.T) {
	svc := newTestService()

	found := false
	for seed := range uint64(50) {
		planets, err := svc.GeneratePlanets(celestial.NewStar("", celestial.StarTypeG, seed))
		require.NoError(t, err)
		for _, p := range planets {
			found = true
			assert.Empty(t, p.Name)
		}
	}
	assert.True(t, found)
}

func TestSupernovaHasNoPlanets(t *testing.T) {
	svc := newTestService()

	planets, err := svc.GeneratePlanets(celestial.NewStar("SN", celestial.StarTypeSupernova, 99))
	require.NoError(t, err)
	assert.Empty(t, planets)
}

func TestPlanetSeedsDependOnlyOnStarSeed(t *testing.T) {
	svc := newTestService()

	a, err := svc.GeneratePlanets(celestial.NewStar("A", celestial.StarTypeG, 12))
	require.NoError(t, err)
	b, err := svc.GeneratePlanets(celestial.NewStar("B", celestial.StarTypeG, 12))
	require.NoError(t, err)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Seed, b[i].Seed)
		assert.True(t, strings.HasPrefix(b[i].Name, "B "))
	}
}

func TestRoman(t *testing.T) {
	cases := map[int]string{1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for n, want := range cases {
		assert.Equal(t, want, roman(n))
	}
}

func TestPlanetCountRangeUnknownType(t *testing.T) {
	lo, hi := PlanetCountRange("Quasar")
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)
}
