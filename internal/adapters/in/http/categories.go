package http

import (
	"net/http"

	"workify/internal/core/application/usecases/queries"
	"workify/internal/generated/servers"
	"workify/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// GetCategories handles GET /api/v1/categories.
func (s *Server) GetCategories(c echo.Context) error {
	views, err := s.h.GetCategories.Handle(c.Request().Context(), queries.NewGetAllCategoriesQuery())
	if err != nil {
		return err
	}

	response := make([]servers.Category, len(views))
	for i, v := range views {
		response[i] = categoryFromView(v)
	}
	return c.JSON(http.StatusOK, response)
}

// SyncCategories handles POST /api/v1/categories/sync. Only employers may
// trigger a resync.
func (s *Server) SyncCategories(c echo.Context) error {
	actor, err := ActorFrom(c)
	if err != nil {
		return err
	}
	if err = actor.EnsureEmployer("resync category counters"); err != nil {
		return err
	}

	updated, err := s.h.SyncCategoryCounts.Handle(c.Request().Context())
	if err != nil {
		metrics.IncrementCategorySync(metrics.ResultFailure)
		return err
	}

	metrics.IncrementCategorySync(metrics.ResultSuccess)
	s.logger.InfoContext(c.Request().Context(), "category counters resynced",
		"updated", updated,
		"actor_id", actor.ID().String())

	return c.JSON(http.StatusOK, servers.SyncResult{Updated: updated})
}

// GetStats handles GET /api/v1/stats.
func (s *Server) GetStats(c echo.Context) error {
	stats, err := s.h.GetJobStats.Handle(c.Request().Context(), queries.NewGetJobStatsQuery())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, servers.JobStats{
		TotalOpenJobs:   stats.TotalOpenJobs,
		TotalCategories: stats.TotalCategories,
	})
}
