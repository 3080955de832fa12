package api

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"

	"github.com/curvelab/lrplot/internal/render"
	"github.com/curvelab/lrplot/internal/schedule"
)

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(status, "application/json; charset=utf-8", b)
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request_error", msg)
}

func writeNotFound(c *echo.Context, msg string) error {
	return writeError(c, http.StatusNotFound, "not_found_error", msg)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return writeJSON(c, status, map[string]any{
		"error": apiError{Message: msg, Type: errType},
	})
}

func decodeJSON[T any](r io.Reader) (T, error) {
	var out T
	dec := json.NewDecoder(r)
	if err := dec.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}

// chartParams is the parameter set shared by the query and JSON body
// surfaces. Zero values fall back to the CLI defaults.
type chartParams struct {
	Powers   []float64 `json:"powers"`
	LR       float64   `json:"learning_rate"`
	LREnd    float64   `json:"lr_end"`
	Steps    int       `json:"steps"`
	Warmup   *int      `json:"warmup_steps"`
	Scale    string    `json:"log_scale"`
	Notation string    `json:"notation"`
	DPI      int       `json:"dpi"`
	Format   string    `json:"format"`
}

func paramsFromQuery(c *echo.Context) (chartParams, error) {
	var p chartParams
	var err error

	if v := c.QueryParam("powers"); v != "" {
		if p.Powers, err = schedule.ParsePowers(v); err != nil {
			return p, err
		}
	}
	if p.LR, err = queryFloat(c, "lr"); err != nil {
		return p, err
	}
	if p.LREnd, err = queryFloat(c, "lr_end"); err != nil {
		return p, err
	}
	if p.Steps, err = queryInt(c, "steps"); err != nil {
		return p, err
	}
	// Warmup zero is meaningful, so unset stays nil.
	if v := c.QueryParam("warmup"); v != "" {
		n, convErr := strconv.Atoi(v)
		if convErr != nil {
			return p, fmt.Errorf("bad warmup %q", v)
		}
		p.Warmup = &n
	}
	if p.DPI, err = queryInt(c, "dpi"); err != nil {
		return p, err
	}
	p.Scale = c.QueryParam("scale")
	p.Notation = c.QueryParam("notation")
	p.Format = c.QueryParam("format")
	return p, nil
}

func queryFloat(c *echo.Context, name string) (float64, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, v)
	}
	return f, nil
}

func queryInt(c *echo.Context, name string) (int, error) {
	v := c.QueryParam(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", name, v)
	}
	return n, nil
}

// resolve fills defaults, validates and translates the wire parameters
// into a schedule config and render options.
func (p chartParams) resolve() (schedule.Config, render.Options, error) {
	cfg := schedule.Default()
	if len(p.Powers) > 0 {
		cfg.Powers = p.Powers
	}
	if p.LR != 0 {
		cfg.InitialLR = p.LR
	}
	if p.LREnd != 0 {
		cfg.FinalLR = p.LREnd
	}
	if p.Steps != 0 {
		cfg.Steps = p.Steps
	}
	if p.Warmup != nil {
		cfg.Warmup = *p.Warmup
	}
	if err := cfg.Validate(); err != nil {
		return cfg, render.Options{}, err
	}

	scale, err := render.ParseScale(p.Scale)
	if err != nil {
		return cfg, render.Options{}, err
	}
	notation, err := render.ParseNotation(p.Notation)
	if err != nil {
		return cfg, render.Options{}, err
	}
	opts := render.Options{
		Scale:    scale,
		Notation: notation,
		DPI:      p.DPI,
		Format:   render.FormatPNG,
	}
	if p.Format == "svg" {
		opts.Format = render.FormatSVG
	}
	return cfg, opts, nil
}
