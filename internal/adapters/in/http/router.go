package http

import (
	"log/slog"
	"net/http"

	"fastfeet/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving the API described by doc,
// plus /health and the Swagger UI under /swagger.
func NewRouter(server *Server, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	swaggerHandler, err := SwaggerHandler(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	e.Use(
		middleware.Recover(),
		RequestID(),
		RequestLogger(logger),
		validator,
	)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", swaggerHandler)

	servers.RegisterHandlers(e, server)

	return e, nil
}
