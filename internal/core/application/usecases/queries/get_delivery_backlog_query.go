package queries

import (
	"errors"

	"fastfeet/internal/pkg/guard"
)

var (
	ErrGetDeliveryBacklogQueryIsNotConstructed = errors.New(
		"GetDeliveryBacklogQuery must be created via NewGetDeliveryBacklogQuery constructor",
	)
)

// GetDeliveryBacklogQuery counts the pending deliveries of every deliveryman.
// This is a parameterless query used by the backlog report job.
type GetDeliveryBacklogQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDeliveryBacklogQuery creates the query.
func NewGetDeliveryBacklogQuery() GetDeliveryBacklogQuery {
	return GetDeliveryBacklogQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryBacklogQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryBacklogQueryIsNotConstructed)
}

// GetDeliveryBacklogQueryResponse is the pending delivery count of one deliveryman.
type GetDeliveryBacklogQueryResponse struct {
	DeliverymanID int64
	Pending       int64
}
