package queries

import (
	"errors"
	"time"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/pkg/errs"
	"fastfeet/internal/pkg/guard"
)

var (
	ErrListDeliverymanDeliveriesQueryIsNotConstructed = errors.New(
		"ListDeliverymanDeliveriesQuery must be created via NewListDeliverymanDeliveriesQuery constructor",
	)
)

// ListDeliverymanDeliveriesQuery pages through the non-canceled deliveries of
// one deliveryman, filtered by completion status.
//
// Example:
//
//	query, _ := NewListDeliverymanDeliveriesQuery(7, delivery.ParseStatus("pending"), kernel.DefaultPagination())
//	page, err := handler.Handle(ctx, query)
//	if errs.IsNotFound(err) {
//	    // unknown deliveryman
//	}
type ListDeliverymanDeliveriesQuery struct {
	deliverymanID int64
	status        delivery.Status
	pagination    kernel.Pagination
	guard         guard.ConstructorGuard
}

// NewListDeliverymanDeliveriesQuery creates the query.
func NewListDeliverymanDeliveriesQuery(
	deliverymanID int64,
	status delivery.Status,
	pagination kernel.Pagination,
) (ListDeliverymanDeliveriesQuery, error) {
	var idErr error
	if deliverymanID <= 0 {
		idErr = errs.NewValueIsInvalidError("id")
	}

	if err := errors.Join(idErr, pagination.Validate()); err != nil {
		return ListDeliverymanDeliveriesQuery{}, err
	}

	return ListDeliverymanDeliveriesQuery{
		deliverymanID: deliverymanID,
		status:        status,
		pagination:    pagination,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDeliverymanDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrListDeliverymanDeliveriesQueryIsNotConstructed)
}

func (q ListDeliverymanDeliveriesQuery) DeliverymanID() int64 {
	return q.deliverymanID
}

func (q ListDeliverymanDeliveriesQuery) Status() delivery.Status {
	return q.status
}

func (q ListDeliverymanDeliveriesQuery) Pagination() kernel.Pagination {
	return q.pagination
}

// DeliveryRecipient is the recipient projection attached to a delivery.
type DeliveryRecipient struct {
	ID   int64
	Name string
}

// DeliverySummary is the listing projection of a delivery.
// Recipient is nil when the delivery has no recipient on record.
type DeliverySummary struct {
	ID         int64
	Product    string
	EndDate    *time.Time
	CanceledAt *time.Time
	Recipient  *DeliveryRecipient
}

// ListDeliverymanDeliveriesQueryResponse is one page of delivery summaries.
type ListDeliverymanDeliveriesQueryResponse = Page[DeliverySummary]
