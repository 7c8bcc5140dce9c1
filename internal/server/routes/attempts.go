package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/tflwatch/internal/app/domain"
	"github.com/fr0stylo/tflwatch/internal/app/ports"
	"github.com/fr0stylo/tflwatch/internal/app/services"
	"github.com/fr0stylo/tflwatch/internal/db"
)

// LatencySource exposes per-query latency samples.
type LatencySource interface {
	QueryLatencyStats() []db.LatencyStats
}

// AttemptRoutes serves the attempt history read API.
type AttemptRoutes struct {
	attempts *services.AttemptReadService
	latency  LatencySource
}

func NewAttemptRoutes(attempts *services.AttemptReadService, latency LatencySource) *AttemptRoutes {
	return &AttemptRoutes{attempts: attempts, latency: latency}
}

// RegisterRoutes registers API endpoints.
func (a *AttemptRoutes) RegisterRoutes(s *echo.Echo) {
	api := s.Group("/api")

	api.GET("/attempts", a.handleListAttempts)
	api.GET("/attempts/:id", a.handleGetAttempt)
	api.GET("/attempts/:id/disruptions", a.handleListDisruptions)
	api.GET("/stats/queries", a.handleQueryStats)
}

type attemptResponse struct {
	ID                int64     `json:"id"`
	Timestamp         time.Time `json:"timestamp"`
	HTTPCode          int       `json:"http_code"`
	ErrorText         *string   `json:"error_text"`
	DisruptionCount   *int      `json:"disruption_count"`
	StoredDisruptions int64     `json:"stored_disruptions"`
}

type disruptionResponse struct {
	Response     json.RawMessage `json:"response"`
	TimeReceived time.Time       `json:"time_received"`
}

type attemptDisruptionsResponse struct {
	Attempt     attemptResponse      `json:"attempt"`
	Disruptions []disruptionResponse `json:"disruptions"`
}

type queryStatResponse struct {
	Name  string  `json:"name"`
	Count int     `json:"count"`
	P50   float64 `json:"p50_ms"`
	P95   float64 `json:"p95_ms"`
	Max   float64 `json:"max_ms"`
}

func (a *AttemptRoutes) handleListAttempts(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
		}
		limit = parsed
	}

	rows, err := a.attempts.ListRecentAttempts(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	out := make([]attemptResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, mapAttempt(row))
	}
	return c.JSON(http.StatusOK, out)
}

func (a *AttemptRoutes) handleGetAttempt(c echo.Context) error {
	id, err := attemptIDParam(c)
	if err != nil {
		return err
	}
	attempt, err := a.attempts.GetAttempt(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	return c.JSON(http.StatusOK, mapAttempt(attempt))
}

func (a *AttemptRoutes) handleListDisruptions(c echo.Context) error {
	id, err := attemptIDParam(c)
	if err != nil {
		return err
	}
	attempt, records, err := a.attempts.GetAttemptDisruptions(c.Request().Context(), id)
	if err != nil {
		return readError(err)
	}
	out := attemptDisruptionsResponse{
		Attempt:     mapAttempt(attempt),
		Disruptions: make([]disruptionResponse, 0, len(records)),
	}
	for _, record := range records {
		out.Disruptions = append(out.Disruptions, disruptionResponse{Response: record.Response, TimeReceived: record.TimeReceived})
	}
	return c.JSON(http.StatusOK, out)
}

func (a *AttemptRoutes) handleQueryStats(c echo.Context) error {
	out := []queryStatResponse{}
	if a.latency != nil {
		for _, entry := range a.latency.QueryLatencyStats() {
			out = append(out, queryStatResponse{
				Name:  entry.Name,
				Count: entry.Count,
				P50:   milliseconds(entry.P50),
				P95:   milliseconds(entry.P95),
				Max:   milliseconds(entry.Max),
			})
		}
	}
	return c.JSON(http.StatusOK, out)
}

func attemptIDParam(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid attempt id")
	}
	return id, nil
}

func readError(err error) error {
	if errors.Is(err, ports.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "attempt not found")
	}
	return err
}

func mapAttempt(row domain.AttemptSummary) attemptResponse {
	return attemptResponse{
		ID:                row.ID,
		Timestamp:         row.Timestamp,
		HTTPCode:          row.HTTPCode,
		ErrorText:         row.ErrorText,
		DisruptionCount:   row.DisruptionCount,
		StoredDisruptions: row.StoredDisruptions,
	}
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
