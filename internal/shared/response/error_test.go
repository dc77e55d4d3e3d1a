package response

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"starseed-server/internal/shared/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMapsTypesToStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{errors.NotFoundf("galaxy %q not found", "x"), http.StatusNotFound},
		{errors.Validation("bad"), http.StatusBadRequest},
		{errors.Conflictf("exists"), http.StatusConflict},
		{errors.Unauthorized("who"), http.StatusUnauthorized},
		{errors.Forbidden("no"), http.StatusForbidden},
		{errors.MethodNotAllowed("PUT"), http.StatusMethodNotAllowed},
		{errors.RateLimited("slow down"), http.StatusTooManyRequests},
		{errors.WrapExternal("redis", fmt.Errorf("down")), http.StatusServiceUnavailable},
		{errors.WrapInternal("boom", fmt.Errorf("x")), http.StatusInternalServerError},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()

		Error(rec, req, logger, tt.err)

		require.Equal(t, tt.want, rec.Code, tt.err.Error())
		assert.Equal(t, tt.want, StatusCode(tt.err))

		var body ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.want, body.Code)
		assert.Equal(t, "req-1", body.RequestID)
	}
}

func TestErrorWithMessageHidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := errors.WrapInternal("query failed", fmt.Errorf("password=hunter2"))
	ErrorWithMessage(rec, httptest.NewRequest(http.MethodGet, "/", nil), slog.New(slog.NewTextHandler(io.Discard, nil)), err, "internal server error")

	assert.NotContains(t, rec.Body.String(), "hunter2")
	assert.Contains(t, rec.Body.String(), "internal server error")
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, http.StatusCreated, map[string]int{"n": 1})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"n":1}`, rec.Body.String())
}
