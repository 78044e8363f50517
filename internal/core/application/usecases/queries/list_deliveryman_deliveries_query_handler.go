package queries

import (
	"context"
	"database/sql"
	"strconv"

	"fastfeet/internal/core/domain/model/delivery"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// ListDeliverymanDeliveriesQueryHandler serves a deliveryman's delivery list.
type ListDeliverymanDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewListDeliverymanDeliveriesQueryHandler creates a handler backed by db.
func NewListDeliverymanDeliveriesQueryHandler(db *gorm.DB) ListDeliverymanDeliveriesQueryHandler {
	return ListDeliverymanDeliveriesQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the deliveryman does not exist.
// Otherwise it returns the deliveries with canceled_at unset whose end_date
// is set (Done) or unset (Pending), ordered by id.
func (h ListDeliverymanDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListDeliverymanDeliveriesQuery,
) (ListDeliverymanDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListDeliverymanDeliveriesQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	deliverymanID := query.DeliverymanID()
	pagination := query.Pagination()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM deliverymen WHERE id = ?)`, deliverymanID).
		Scan(&exists).Error; err != nil {
		return ListDeliverymanDeliveriesQueryResponse{}, err
	}
	if !exists {
		return ListDeliverymanDeliveriesQueryResponse{},
			errs.NewObjectNotFoundError("deliveryman", strconv.FormatInt(deliverymanID, 10))
	}

	filter := `d.deliveryman_id = ? AND d.canceled_at IS NULL AND ` + endDateClause(query.Status())

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM deliveries d WHERE `+filter, deliverymanID).
		Scan(&total).Error; err != nil {
		return ListDeliverymanDeliveriesQueryResponse{}, err
	}

	docs := make([]DeliverySummary, 0, pagination.Limit())
	if total == 0 {
		return newPage(docs, total, pagination), nil
	}

	rows, err := db.Raw(`
		SELECT
			d.id,
			d.product,
			d.end_date,
			d.canceled_at,
			r.id,
			r.name
		FROM deliveries d
		LEFT JOIN recipients r ON r.id = d.recipient_id
		WHERE `+filter+`
		ORDER BY d.id
		LIMIT ? OFFSET ?
	`, deliverymanID, pagination.Limit(), pagination.Offset()).Rows()
	if err != nil {
		return ListDeliverymanDeliveriesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item                DeliverySummary
			endDate, canceledAt sql.NullTime
			recipientID         sql.NullInt64
			recipientName       sql.NullString
		)

		if err = rows.Scan(
			&item.ID,
			&item.Product,
			&endDate,
			&canceledAt,
			&recipientID,
			&recipientName,
		); err != nil {
			return ListDeliverymanDeliveriesQueryResponse{}, err
		}

		item.EndDate = nullableTime(endDate)
		item.CanceledAt = nullableTime(canceledAt)
		if recipientID.Valid {
			item.Recipient = &DeliveryRecipient{
				ID:   recipientID.Int64,
				Name: recipientName.String,
			}
		}
		docs = append(docs, item)
	}

	if err = rows.Err(); err != nil {
		return ListDeliverymanDeliveriesQueryResponse{}, err
	}

	return newPage(docs, total, pagination), nil
}

func endDateClause(status delivery.Status) string {
	if status.IsDone() {
		return "d.end_date IS NOT NULL"
	}
	return "d.end_date IS NULL"
}
