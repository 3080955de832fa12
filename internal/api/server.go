// Package api serves computed schedules and rendered charts over HTTP for
// the lrplot preview mode.
package api

import (
	"bytes"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/curvelab/lrplot/internal/export"
	"github.com/curvelab/lrplot/internal/render"
)

// Server holds the preview endpoints and their chart store.
type Server struct {
	store *ChartStore
	clock func() time.Time
}

// NewServer creates a Server. A nil store gets a fresh in-memory one.
func NewServer(store *ChartStore) *Server {
	if store == nil {
		store = NewChartStore()
	}
	return &Server{
		store: store,
		clock: time.Now,
	}
}

// Register mounts the preview routes on e.
func (s *Server) Register(e *echo.Echo) {
	e.GET("/v1/chart", s.handleRenderChart)
	e.GET("/v1/schedule", s.handleSchedule)
	e.POST("/v1/charts", s.handleCreateChart)
	e.GET("/v1/charts/:id", s.handleGetChart)
}

// handleRenderChart renders a chart straight from query parameters.
func (s *Server) handleRenderChart(c *echo.Context) error {
	p, err := paramsFromQuery(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	cfg, opts, err := p.resolve()
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, cfg, cfg.Curves(), opts); err != nil {
		return writeBadRequest(c, err.Error())
	}
	return c.Blob(http.StatusOK, contentTypeFor(opts.Format), buf.Bytes())
}

// handleSchedule returns the computed curves as JSON without rendering.
func (s *Server) handleSchedule(c *echo.Context) error {
	p, err := paramsFromQuery(c)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	cfg, _, err := p.resolve()
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	return writeJSON(c, http.StatusOK, export.Build(cfg, cfg.Curves()))
}

// CreateChartResponse is returned after a chart is rendered and stored.
type CreateChartResponse struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	CreatedAt int64  `json:"created_at"`
}

// handleCreateChart renders a chart from a JSON body and stores it under a
// fresh id for later retrieval.
func (s *Server) handleCreateChart(c *echo.Context) error {
	p, err := decodeJSON[chartParams](c.Request().Body)
	if err != nil {
		return writeBadRequest(c, err.Error())
	}
	cfg, opts, err := p.resolve()
	if err != nil {
		return writeBadRequest(c, err.Error())
	}

	var buf bytes.Buffer
	if err := render.Write(&buf, cfg, cfg.Curves(), opts); err != nil {
		return writeBadRequest(c, err.Error())
	}

	id := "chart_" + uuid.NewString()
	s.store.Put(StoredChart{
		ID:          id,
		ContentType: contentTypeFor(opts.Format),
		Data:        buf.Bytes(),
		CreatedAt:   s.clock(),
	})
	return writeJSON(c, http.StatusCreated, CreateChartResponse{
		ID:        id,
		URL:       "/v1/charts/" + id,
		CreatedAt: s.clock().Unix(),
	})
}

// handleGetChart returns a previously stored render.
func (s *Server) handleGetChart(c *echo.Context) error {
	id := c.Param("id")
	ch, ok := s.store.Get(id)
	if !ok {
		return writeNotFound(c, "no chart with id "+id)
	}
	return c.Blob(http.StatusOK, ch.ContentType, ch.Data)
}

func contentTypeFor(f render.Format) string {
	if f == render.FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}
