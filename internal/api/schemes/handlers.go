// internal/api/schemes/handlers.go
package schemes

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/codr1/tintkit/internal/api/apiutil"
	"github.com/codr1/tintkit/internal/api/htmx"
	"github.com/codr1/tintkit/internal/color"
	"github.com/codr1/tintkit/internal/cssvars"
	"github.com/codr1/tintkit/internal/models"
	"github.com/codr1/tintkit/internal/palette"
	"github.com/codr1/tintkit/internal/presets"
	"github.com/codr1/tintkit/internal/themecolor"
)

const presetNameParam = "name"

// Options configures the handlers. Zero values fall back to models.DefaultSeed
// and no CSS prefix.
type Options struct {
	DefaultSeed string
	CSSPrefix   string
}

var (
	cache     *themecolor.Cache
	options   Options
	stateOnce sync.Once
)

type mixRequest struct {
	A      string   `json:"a"`
	B      string   `json:"b"`
	Amount *float64 `json:"amount"`
}

type mixResponse struct {
	Color color.Color `json:"color"`
}

type presetResponse struct {
	Preset presets.Preset    `json:"preset"`
	Scheme themecolor.Scheme `json:"scheme"`
}

// InitHandlers must be called during server startup before handling requests.
func InitHandlers(c *themecolor.Cache, opts Options) {
	if c == nil {
		return
	}
	stateOnce.Do(func() {
		cache = c
		options = opts
	})
}

// /api/v1/schemes
func HandleScheme(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	req, err := apiutil.SchemeRequestFromQuery(r, defaultSeed())
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	scheme, err := buildScheme(req)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	htmx.MarkVaries(w)
	if htmx.IsRequest(r) {
		if err := apiutil.WriteBody(w, http.StatusOK, "text/html; charset=utf-8", cssvars.StyleTag(scheme, options.CSSPrefix)); err != nil {
			logger.Error().Err(err).Str("seed", req.Seed).Msg("Failed to write scheme fragment")
		}
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, scheme); err != nil {
		logger.Error().Err(err).Str("seed", req.Seed).Msg("Failed to write scheme response")
	}
}

// /api/v1/schemes/css
func HandleSchemeCSS(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	req, err := apiutil.SchemeRequestFromQuery(r, defaultSeed())
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	prefix := options.CSSPrefix
	if raw, ok := r.URL.Query()["prefix"]; ok {
		prefix = strings.TrimSpace(raw[0])
		if prefix != "" && !models.IsCSSPrefix(prefix) {
			apiutil.WriteError(w, r, apiutil.FieldError{Field: "prefix", Reason: "must match [a-z][a-z0-9-]*"})
			return
		}
	}

	scheme, err := buildScheme(req)
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	if err := apiutil.WriteBody(w, http.StatusOK, "text/css; charset=utf-8", cssvars.Render(scheme, prefix)); err != nil {
		logger.Error().Err(err).Str("seed", req.Seed).Msg("Failed to write scheme css")
	}
}

// /api/v1/palettes
func HandlePalette(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	req, err := apiutil.SchemeRequestFromQuery(r, defaultSeed())
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	seed, err := req.SeedColor()
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}
	background, err := req.BackgroundColor()
	if err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}

	p := palette.Generate(seed, req.IsDark(), background)
	if err := apiutil.WriteJSON(w, http.StatusOK, p); err != nil {
		logger.Error().Err(err).Str("seed", req.Seed).Msg("Failed to write palette response")
	}
}

// /api/v1/mix
func HandleMix(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	var req mixRequest
	if err := apiutil.DecodeJSON(r, &req); err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}

	a, err := parseColorField(req.A, "a")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	b, err := parseColorField(req.B, "b")
	if err != nil {
		apiutil.WriteError(w, r, err)
		return
	}
	if req.Amount == nil {
		apiutil.WriteError(w, r, apiutil.FieldError{Field: "amount", Reason: "is required"})
		return
	}
	if err := apiutil.CheckUnit(*req.Amount, "amount"); err != nil {
		apiutil.WriteError(w, r, err)
		return
	}

	resp := mixResponse{Color: color.Mix(a, b, *req.Amount)}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Msg("Failed to write mix response")
	}
}

// /api/v1/presets
func HandlePresetsList(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	all, err := presets.All()
	if err != nil {
		apiutil.WriteError(w, r, apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to load presets", Err: err})
		return
	}

	if err := apiutil.WriteJSON(w, http.StatusOK, map[string]any{"presets": all}); err != nil {
		logger.Error().Err(err).Msg("Failed to write presets list response")
	}
}

// /api/v1/presets/{name}
func HandlePreset(w http.ResponseWriter, r *http.Request) {
	logger := log.Ctx(r.Context())

	name := strings.TrimSpace(r.PathValue(presetNameParam))
	if name == "" {
		http.Error(w, "preset name is required", http.StatusBadRequest)
		return
	}

	preset, err := presets.Lookup(name)
	if err != nil {
		if errors.Is(err, presets.ErrNotFound) {
			http.Error(w, "Preset not found", http.StatusNotFound)
			return
		}
		apiutil.WriteError(w, r, apiutil.HandlerError{Status: http.StatusInternalServerError, Message: "Failed to load presets", Err: err})
		return
	}

	req := models.SchemeRequest{
		Seed: preset.Seed.Hex(),
		Mode: r.URL.Query().Get("mode"),
	}.Normalize()
	if err := req.Validate(); err != nil {
		apiutil.WriteError(w, r, apiutil.BadRequest(err))
		return
	}

	resp := presetResponse{
		Preset: preset,
		Scheme: schemeFor(preset.Seed, req.IsDark()),
	}
	if err := apiutil.WriteJSON(w, http.StatusOK, resp); err != nil {
		logger.Error().Err(err).Str("preset", preset.Name).Msg("Failed to write preset response")
	}
}

func buildScheme(req models.SchemeRequest) (themecolor.Scheme, error) {
	seed, err := req.SeedColor()
	if err != nil {
		return themecolor.Scheme{}, apiutil.BadRequest(err)
	}
	return schemeFor(seed, req.IsDark()), nil
}

func schemeFor(seed color.Color, isDark bool) themecolor.Scheme {
	if cache == nil {
		return themecolor.Build(seed, isDark)
	}
	return cache.Get(seed, isDark)
}

func parseColorField(raw, field string) (color.Color, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return color.Color{}, apiutil.FieldError{Field: field, Reason: "is required"}
	}
	c, err := color.FromHex(raw)
	if err != nil {
		return color.Color{}, apiutil.FieldError{Field: field, Reason: "must be a hex color like #AABBCC"}
	}
	return c, nil
}

func defaultSeed() string {
	if options.DefaultSeed == "" {
		return models.DefaultSeed
	}
	return options.DefaultSeed
}
