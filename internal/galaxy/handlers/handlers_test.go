package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"starseed-server/internal/celestial"
	"starseed-server/internal/galaxy"
	"starseed-server/internal/shared/response"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func milkyWay() celestial.Galaxy {
	return celestial.NewGalaxy("Milky Way", celestial.GalaxyTypeSpiral, 42)
}

func newTestMux(t *testing.T) (*http.ServeMux, *galaxy.Service) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := galaxy.NewService(galaxy.NewMemoryCatalog(milkyWay()), galaxy.ReferenceProfile{}, logger)

	h := NewGalaxyHandler(svc, milkyWay())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /nearby_stars/{x}/{y}", h.NearbyStars)
	mux.HandleFunc("GET /api/galaxies", h.List)
	mux.HandleFunc("POST /api/galaxies", h.Register)
	mux.Handle("GET /ws/nearby_stars", NewStreamHandler(svc, "Milky Way", ""))
	return mux, svc
}

func TestNearbyStarsEndpoint(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nearby_stars/0.5/-12", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var stars []celestial.Star
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stars))
	require.Len(t, stars, galaxy.NearbyStarCount)
	assert.Equal(t, galaxy.NearbyStars(milkyWay(), celestial.GalacticPosition{}, galaxy.ReferenceProfile{}), stars)
}

func TestNearbyStarsRejectsMalformedCoordinates(t *testing.T) {
	mux, _ := newTestMux(t)

	for _, path := range []string{"/nearby_stars/abc/1", "/nearby_stars/1/NaN", "/nearby_stars/Inf/0", "/nearby_stars/1e999/0"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)

		var body response.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "validation", body.Error)
	}
}

func TestGalaxyCatalogEndpoints(t *testing.T) {
	mux, _ := newTestMux(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galaxies",
		strings.NewReader(`{"name":"Andromeda","galaxy_type":"Spiral","seed":18446744073709551615}`)))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galaxies",
		strings.NewReader(`{"name":"Andromeda","galaxy_type":"Spiral","seed":1}`)))
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/galaxies",
		strings.NewReader(`{"name":"Bad","galaxy_type":"Ring","seed":1}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/galaxies", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var galaxies []celestial.Galaxy
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&galaxies))
	require.Len(t, galaxies, 2)
	assert.Equal(t, "Andromeda", galaxies[0].Name)
	assert.Equal(t, uint64(18446744073709551615), galaxies[0].Seed)
	assert.Equal(t, milkyWay(), galaxies[1])
}

func TestNearbyStarsStream(t *testing.T) {
	mux, svc := newTestMux(t)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/nearby_stars"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, conn.WriteJSON(celestial.NewGalacticPosition(3, 4)))
	var reply galaxy.NearbyStarsResponse
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, milkyWay(), reply.Galaxy)
	assert.Equal(t, celestial.NewGalacticPosition(3, 4), reply.Position)
	assert.Equal(t, svc.NearbyStars(milkyWay(), reply.Position), reply.Stars)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(`{"x":"north"}`)))
	var failure streamError
	require.NoError(t, conn.ReadJSON(&failure))
	assert.Equal(t, "validation", failure.Error)

	require.NoError(t, conn.WriteJSON(celestial.NewGalacticPosition(0, 0)))
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Len(t, reply.Stars, galaxy.NearbyStarCount)
}

func TestNearbyStarsStreamUnknownGalaxy(t *testing.T) {
	mux, _ := newTestMux(t)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/nearby_stars?galaxy=Andromeda"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
