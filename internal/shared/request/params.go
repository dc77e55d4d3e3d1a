package request

import (
	"encoding/json"
	"io"
	"math"
	"net/http"
	"strconv"

	"starseed-server/internal/celestial"
	"starseed-server/internal/shared/errors"
)

const maxBodyBytes = 1 << 20

// ParseCoordinate accepts any finite decimal float.
func ParseCoordinate(name, raw string) (float64, error) {
	if raw == "" {
		return 0, errors.Validationf("%s coordinate is required", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errors.Validationf("%s coordinate %q is not a finite number", name, raw)
	}
	return v, nil
}

// Position reads the {x} and {y} path values.
func Position(r *http.Request) (celestial.GalacticPosition, error) {
	x, err := ParseCoordinate("x", r.PathValue("x"))
	if err != nil {
		return celestial.GalacticPosition{}, err
	}
	y, err := ParseCoordinate("y", r.PathValue("y"))
	if err != nil {
		return celestial.GalacticPosition{}, err
	}
	return celestial.NewGalacticPosition(x, y), nil
}

// Seed reads an unsigned 64-bit seed from the named path value.
func Seed(r *http.Request, name string) (uint64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, errors.Validationf("%s is required", name)
	}
	seed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.WrapValidation("invalid "+name+" format", err)
	}
	return seed, nil
}

// DecodeJSON decodes a single JSON document from the request body into dst.
// Malformed documents, unknown fields and unknown enum names are validation
// errors.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.WrapValidation("invalid request body", err)
	}
	if dec.More() {
		return errors.Validation("request body must contain a single JSON document")
	}
	return nil
}
