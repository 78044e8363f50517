package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fastfeet/internal/generated/servers"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// RequestValidationError reports a request rejected by the OpenAPI validator.
type RequestValidationError struct {
	Fields []servers.FieldError
	Cause  error
}

func (e *RequestValidationError) Error() string {
	return fmt.Sprintf("request does not match the API contract: %v", e.Cause)
}

func (e *RequestValidationError) Unwrap() error {
	return e.Cause
}

// ErrorHandler renders every error escaping a handler as a servers.Error body.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		ctx := c.Request().Context()
		body := toErrorBody(err)
		if body.Kind == servers.ErrorKindInternal {
			logger.ErrorContext(ctx, "request failed",
				"error", err,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"uri", c.Request().RequestURI,
			)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(body.Code)
		} else {
			writeErr = c.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.ErrorContext(ctx, "failed to write error response", "error", writeErr)
		}
	}
}

func toErrorBody(err error) servers.Error {
	var (
		validationErr *RequestValidationError
		httpErr       *echo.HTTPError
	)

	switch {
	case errors.As(err, &validationErr):
		return newErrorBody(http.StatusBadRequest, servers.ErrorKindValidation,
			"request does not match the API contract", validationErr.Fields)

	case errs.IsNotFound(err):
		return newErrorBody(http.StatusBadRequest, servers.ErrorKindNotFound, err.Error(), nil)

	case errs.IsValidation(err):
		return newErrorBody(http.StatusBadRequest, servers.ErrorKindValidation, err.Error(), domainFieldErrors(err))

	case errors.As(err, &httpErr):
		return httpErrorBody(httpErr)

	default:
		return newErrorBody(http.StatusInternalServerError, servers.ErrorKindInternal, "internal server error", nil)
	}
}

func httpErrorBody(err *echo.HTTPError) servers.Error {
	message := fmt.Sprint(err.Message)

	switch {
	case err.Code >= http.StatusInternalServerError:
		return newErrorBody(err.Code, servers.ErrorKindInternal, "internal server error", nil)
	case err.Code == http.StatusNotFound:
		return newErrorBody(err.Code, servers.ErrorKindNotFound, message, nil)
	case err.Code == http.StatusMethodNotAllowed:
		return newErrorBody(err.Code, servers.ErrorKindMethodNotAllowed, message, nil)
	case err.Code == http.StatusBadRequest, err.Code == http.StatusUnprocessableEntity:
		return newErrorBody(err.Code, servers.ErrorKindValidation, message, nil)
	default:
		return newErrorBody(err.Code, servers.ErrorKindClientError, message, nil)
	}
}

func newErrorBody(code int, kind servers.ErrorKind, message string, fields []servers.FieldError) servers.Error {
	body := servers.Error{Code: code, Kind: kind, Message: message}
	if len(fields) > 0 {
		body.Fields = &fields
	}
	return body
}

// domainFieldErrors flattens joined domain errors into one entry per field.
func domainFieldErrors(err error) []servers.FieldError {
	var fields []servers.FieldError

	var walk func(error)
	walk = func(err error) {
		switch e := err.(type) {
		case nil:
		case interface{ Unwrap() []error }:
			for _, inner := range e.Unwrap() {
				walk(inner)
			}
		case *errs.ValueIsRequiredError:
			fields = append(fields, servers.FieldError{Field: e.ParamName, Error: "is required"})
		case *errs.ValueIsInvalidError:
			fields = append(fields, servers.FieldError{Field: e.ParamName, Error: "is invalid"})
		case *errs.ValueIsOutOfRangeError:
			fields = append(fields, servers.FieldError{
				Field: e.ParamName,
				Error: fmt.Sprintf("must be between %v and %v", e.Min, e.Max),
			})
		default:
			walk(errors.Unwrap(err))
		}
	}
	walk(err)

	return fields
}
