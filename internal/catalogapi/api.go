// Package catalogapi implements the HTTP endpoints of the product catalog.
package catalogapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/talkincode/tinyshop/internal/store"
	"github.com/talkincode/tinyshop/internal/webserver"
)

const productContextKey = "catalogapi.product_context"

// Deps are the collaborators the endpoints need
type Deps struct {
	// Products opens one persistence context per request
	Products store.Factory
	// DB is pinged by the health endpoint; nil reports no database
	DB *gorm.DB
}

// Register mounts every catalog route on the server
func Register(s *webserver.Server, deps Deps) {
	registerProductRoutes(s, deps.Products)
	registerHealthRoutes(s, deps.DB)
}

// withProductContext opens a fresh persistence context for the request
func withProductContext(open store.Factory) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(productContextKey, open())
			return next(c)
		}
	}
}

// GetProductContext returns the request's persistence context
func GetProductContext(c echo.Context) store.ProductContext {
	return c.Get(productContextKey).(store.ProductContext)
}

func parseIDParam(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}

// fail writes the error envelope
func fail(c echo.Context, status int, code, msg string, details interface{}) error {
	return c.JSON(status, webserver.ErrorResponse{Code: code, Msg: msg, Details: details})
}

func invalidID(c echo.Context) error {
	return fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid product ID", nil)
}
