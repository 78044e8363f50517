package queries

import (
	"errors"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrListRecipientsQueryIsNotConstructed = errors.New(
		"ListRecipientsQuery must be created via NewListRecipientsQuery constructor",
	)
)

// ListRecipientsQuery pages through recipients whose name contains a filter,
// most recently updated first.
//
// Example:
//
//	pagination, _ := kernel.NewPagination(1, 10)
//	query, _ := NewListRecipientsQuery("acme", pagination)
//	page, err := handler.Handle(ctx, query)
type ListRecipientsQuery struct {
	name       string
	pagination kernel.Pagination
	guard      guard.ConstructorGuard
}

// NewListRecipientsQuery creates the query. An empty name matches every recipient.
func NewListRecipientsQuery(name string, pagination kernel.Pagination) (ListRecipientsQuery, error) {
	if err := pagination.Validate(); err != nil {
		return ListRecipientsQuery{}, err
	}

	return ListRecipientsQuery{
		name:       name,
		pagination: pagination,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRecipientsQuery) Validate() error {
	return q.guard.Validate(ErrListRecipientsQueryIsNotConstructed)
}

// Name returns the case-insensitive name filter.
func (q ListRecipientsQuery) Name() string {
	return q.name
}

// Pagination returns the requested page window.
func (q ListRecipientsQuery) Pagination() kernel.Pagination {
	return q.pagination
}

// RecipientSummary is the listing projection of a recipient.
// Complement and CEP are deliberately left out.
type RecipientSummary struct {
	ID      int64
	Name    string
	Address *string
	Street  string
	Number  *string
	City    string
	State   string
}

// ListRecipientsQueryResponse is one page of recipient summaries.
type ListRecipientsQueryResponse = Page[RecipientSummary]
