package apiutil

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/codr1/tintkit/internal/models"
)

const unitReason = "must be a number between 0 and 1"

// ParseUnitField parses a float in [0,1].
func ParseUnitField(raw string, field string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, FieldError{Field: field, Reason: "is required"}
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, FieldError{Field: field, Reason: unitReason}
	}
	if err := CheckUnit(value, field); err != nil {
		return 0, err
	}
	return value, nil
}

// CheckUnit rejects NaN and values outside [0,1].
func CheckUnit(value float64, field string) error {
	if math.IsNaN(value) || value < 0 || value > 1 {
		return FieldError{Field: field, Reason: unitReason}
	}
	return nil
}

// SchemeRequestFromQuery reads seed, mode and background from the query
// string. A missing seed falls back to defaultSeed.
func SchemeRequestFromQuery(r *http.Request, defaultSeed string) (models.SchemeRequest, error) {
	query := r.URL.Query()
	req := models.SchemeRequest{
		Seed:       query.Get("seed"),
		Mode:       query.Get("mode"),
		Background: query.Get("background"),
	}.Normalize()
	if req.Seed == "" {
		req.Seed = defaultSeed
	}
	if err := req.Validate(); err != nil {
		return models.SchemeRequest{}, BadRequest(err)
	}
	return req, nil
}
