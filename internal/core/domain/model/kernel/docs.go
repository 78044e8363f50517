// Package kernel provides core domain primitives shared by the FastFeet domain model.
//
// The package includes:
//   - Pagination: a validated page window (page number and page size) with
//     offset/limit arithmetic and page counting
//   - Address: a value object holding the postal address of a recipient
//
// Both are immutable value objects guarded against zero-value construction,
// safe to copy and use concurrently.
package kernel
