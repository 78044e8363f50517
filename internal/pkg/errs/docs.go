// Package errs provides standardized error types for the FastFeet backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the two failure families a client can see:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input
//     failed validation
//   - ObjectNotFoundError: a referenced record does not exist
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// IsValidation and IsNotFound classify an error chain (including chains built
// with errors.Join) so the transport layer can pick a response without
// knowing the concrete types.
package errs
