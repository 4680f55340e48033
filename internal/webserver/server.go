package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/talkincode/tinyshop/config"
	_ "github.com/talkincode/tinyshop/docs"
)

// ApiPrefix is the mount point of all API routes
const ApiPrefix = "/api"

// ErrorResponse is the error envelope written for handled failures
type ErrorResponse struct {
	Code    string      `json:"code"`
	Msg     string      `json:"msg"`
	Details interface{} `json:"details,omitempty"`
}

// Server wraps the echo instance serving the catalog API
type Server struct {
	cfg  config.WebConfig
	root *echo.Echo
	api  *echo.Group
}

// NewServer builds the echo instance with the standard middleware chain
func NewServer(cfg config.WebConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = httpErrorHandler

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			zap.L().Error("webserver: handler panic",
				zap.Error(err),
				zap.String("uri", c.Request().RequestURI),
				zap.ByteString("stack", stack))
			return err
		},
	}))
	e.Use(requestLogger())

	if cfg.Metrics {
		p := prometheus.NewPrometheus("tinyshop", nil)
		p.Use(e)
	}
	if cfg.Swagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return &Server{cfg: cfg, root: e, api: e.Group(ApiPrefix)}
}

// Echo exposes the underlying echo instance
func (s *Server) Echo() *echo.Echo {
	return s.root
}

// ServeHTTP lets the server be mounted in httptest or another mux
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.root.ServeHTTP(w, r)
}

// Reverse builds the path of a named route
func (s *Server) Reverse(name string, params ...interface{}) string {
	return s.root.Reverse(name, params...)
}

func (s *Server) ApiGET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return s.api.GET(path, h, m...)
}

func (s *Server) ApiPOST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return s.api.POST(path, h, m...)
}

func (s *Server) ApiPUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return s.api.PUT(path, h, m...)
}

func (s *Server) ApiDELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route {
	return s.api.DELETE(path, h, m...)
}

// Use adds middleware to the API group
func (s *Server) Use(m ...echo.MiddlewareFunc) {
	s.api.Use(m...)
}

// Start blocks serving HTTP until the server is shut down
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	zap.S().Infof("Prepare to start the web server at %s", addr)
	if err := s.root.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.root.Shutdown(ctx)
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				zap.L().Warn("webserver: request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			zap.L().Debug("webserver: request", fields...)
			return nil
		},
	})
}

// httpErrorHandler answers echo HTTP errors with their own status and
// anything else as an internal error
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		zap.L().Error("webserver: unhandled error",
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Error(err))
		he = &echo.HTTPError{Code: http.StatusInternalServerError, Message: http.StatusText(http.StatusInternalServerError)}
	}

	resp := ErrorResponse{Code: codeForStatus(he.Code), Msg: fmt.Sprint(he.Message)}
	if m, ok := he.Message.(ErrorResponse); ok {
		resp = m
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(he.Code)
	} else {
		werr = c.JSON(he.Code, resp)
	}
	if werr != nil {
		zap.L().Error("webserver: write error response", zap.Error(werr))
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	case http.StatusInternalServerError:
		return "INTERNAL_ERROR"
	default:
		return fmt.Sprintf("HTTP_%d", status)
	}
}
