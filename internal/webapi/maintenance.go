package webapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) postCleanupProducts(c echo.Context) error {
	stats, err := s.maint.Cleanup(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: cleanup failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to cleanup products")
	}
	return ok(c, map[string]interface{}{
		"message": fmt.Sprintf("Cleanup complete. Kept %d valid products, removed %d invalid products.",
			stats.Valid, stats.Removed),
		"stats": stats,
	})
}

func (s *Server) postRefreshSampleData(c echo.Context) error {
	stats, err := s.maint.Reseed(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: reseed failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to refresh data")
	}
	return ok(c, map[string]interface{}{
		"message": fmt.Sprintf("Sample data refreshed! Deleted %d old products, added %d new multi-image products.",
			stats.Deleted, stats.Inserted),
	})
}

func (s *Server) postInitSampleData(c echo.Context) error {
	seeded, err := s.maint.SeedSampleData(c.Request().Context())
	if err != nil {
		zap.L().Error("webapi: init sample data failed", zap.Error(err))
		return fail(c, http.StatusInternalServerError, "Failed to initialize data")
	}
	message := "Sample data already initialized"
	if seeded {
		message = "Sample data initialized"
	}
	return ok(c, map[string]interface{}{"message": message})
}
