package catalogapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/talkincode/tinyshop/internal/webserver"
)

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func registerHealthRoutes(s *webserver.Server, db *gorm.DB) {
	s.ApiGET("/health", func(c echo.Context) error {
		return health(c, db)
	})
}

// health reports whether the database answers a ping
// @Summary service health
// @Tags System
// @Success 200 {object} healthStatus
// @Failure 503 {object} healthStatus
// @Router /api/health [get]
func health(c echo.Context, db *gorm.DB) error {
	if db == nil {
		return c.JSON(http.StatusOK, healthStatus{Status: "ok", Database: "none"})
	}
	res := healthStatus{Status: "ok", Database: db.Dialector.Name()}
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		zap.L().Warn("catalogapi: database ping failed", zap.Error(err))
		res.Status = "unavailable"
		return c.JSON(http.StatusServiceUnavailable, res)
	}
	return c.JSON(http.StatusOK, res)
}
