package http

import (
	"log/slog"
	"strings"

	"fastfeet/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// RequestID tags every request and response with an X-Request-ID, keeping
// one supplied by the client.
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	})
}

// RequestLogger writes one structured record per request.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= 500 {
				level = slog.LevelError
			}

			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}

// OpenAPIValidator rejects requests that violate doc with a RequestValidationError.
// Requests to paths doc does not describe pass through untouched.
func OpenAPIValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	options := &openapi3filter.Options{
		MultiError:          true,
		AuthenticationFunc:  openapi3filter.NoopAuthenticationFunc,
		SkipSettingDefaults: true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				return next(c)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return &RequestValidationError{
					Fields: openAPIFieldErrors(validateErr),
					Cause:  validateErr,
				}
			}

			return next(c)
		}
	}, nil
}

func openAPIFieldErrors(err error) []servers.FieldError {
	var fields []servers.FieldError

	var walk func(err error, field string)
	walk = func(err error, field string) {
		switch e := err.(type) {
		case openapi3.MultiError:
			for _, inner := range e {
				walk(inner, field)
			}
		case *openapi3filter.RequestError:
			name := "body"
			if e.Parameter != nil {
				name = e.Parameter.Name
			}
			if e.Err == nil {
				fields = append(fields, servers.FieldError{Field: name, Error: e.Reason})
				return
			}
			walk(e.Err, name)
		case *openapi3.SchemaError:
			if pointer := e.JSONPointer(); field == "body" && len(pointer) > 0 {
				field = strings.Join(pointer, ".")
			}
			fields = append(fields, servers.FieldError{Field: field, Error: e.Reason})
		default:
			fields = append(fields, servers.FieldError{Field: field, Error: err.Error()})
		}
	}
	walk(err, "request")

	return fields
}
