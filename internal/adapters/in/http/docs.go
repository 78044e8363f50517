// Package http is the inbound HTTP adapter of FastFeet.
//
// Server implements the oapi-codegen generated servers.ServerInterface and
// translates requests into commands and queries. Errors returned by handlers
// are rendered by ErrorHandler:
//
//   - validation errors (errs.ValueIsRequiredError, errs.ValueIsInvalidError,
//     errs.ValueIsOutOfRangeError, OpenAPI request violations) → 400, kind "validation"
//   - errs.ObjectNotFoundError → 400, kind "not_found"
//   - Echo routing errors keep their status: 404 "not_found", 405 "method_not_allowed",
//     400/422 "validation", any other 4xx "client_error"
//   - anything else → 500, kind "internal", logged with the request id
//
// Both client failures share status 400; clients tell them apart by kind.
package http
