package kernel

import (
	"errors"

	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

const (
	// DefaultPage is the page served when the client does not ask for one.
	DefaultPage = 1
	// DefaultPageSize is the page size served when the client does not ask for one.
	DefaultPageSize = 10
	// MaxPageSize caps the number of records a single page may hold.
	MaxPageSize = 100
	// MaxPage caps the page number so offsets stay inside int arithmetic.
	MaxPage = 1_000_000
)

// ErrPaginationIsNotConstructed is returned when a Pagination literal is used.
var ErrPaginationIsNotConstructed = errs.NewValueIsRequiredError(
	"pagination must be created via NewPagination or DefaultPagination")

// Pagination is a one-based page window over an ordered result set.
//
// Example:
//
//	p, err := kernel.NewPagination(3, 10)
//	if err != nil {
//	    return err
//	}
//	db.Limit(p.Limit()).Offset(p.Offset()) // rows 21..30
type Pagination struct { //nolint:recvcheck //using for validation
	page     int
	pageSize int
	guard    guard.ConstructorGuard
}

// NewPagination validates page (1..MaxPage) and pageSize (1..MaxPageSize).
func NewPagination(page, pageSize int) (Pagination, error) {
	p := Pagination{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setPage(page), p.setPageSize(pageSize)); err != nil {
		return Pagination{}, err
	}

	return p, nil
}

// DefaultPagination returns the first page with the default size.
func DefaultPagination() Pagination {
	return Pagination{
		page:     DefaultPage,
		pageSize: DefaultPageSize,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate reports whether p was built by a constructor.
func (p Pagination) Validate() error {
	return p.guard.Validate(ErrPaginationIsNotConstructed)
}

// Page returns the one-based page number.
func (p Pagination) Page() int {
	return p.page
}

// PageSize returns the maximum number of records on the page.
func (p Pagination) PageSize() int {
	return p.pageSize
}

// Limit is an alias of PageSize for SQL LIMIT clauses.
func (p Pagination) Limit() int {
	return p.pageSize
}

// Offset returns the number of records preceding the page.
func (p Pagination) Offset() int {
	return (p.page - 1) * p.pageSize
}

// Pages returns how many pages of this size are needed for total records.
// The result is 0 for an empty result set.
func (p Pagination) Pages(total int64) int {
	if total <= 0 || p.pageSize <= 0 {
		return 0
	}
	size := int64(p.pageSize)
	return int((total + size - 1) / size)
}

func (p *Pagination) setPage(page int) error {
	if page < 1 || page > MaxPage {
		return errs.NewValueIsOutOfRangeError("page", page, 1, MaxPage)
	}

	p.page = page
	return nil
}

func (p *Pagination) setPageSize(pageSize int) error {
	if pageSize < 1 || pageSize > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("paginate", pageSize, 1, MaxPageSize)
	}

	p.pageSize = pageSize
	return nil
}
