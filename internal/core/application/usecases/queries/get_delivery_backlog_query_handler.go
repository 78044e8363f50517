package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDeliveryBacklogQueryHandler aggregates pending deliveries per deliveryman.
type GetDeliveryBacklogQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryBacklogQueryHandler creates a handler backed by db.
func NewGetDeliveryBacklogQueryHandler(db *gorm.DB) GetDeliveryBacklogQueryHandler {
	return GetDeliveryBacklogQueryHandler{db: db}
}

// Handle returns one entry per deliveryman with at least one delivery that is
// neither finished nor canceled, ordered by deliveryman id.
func (h GetDeliveryBacklogQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryBacklogQuery,
) ([]GetDeliveryBacklogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	backlog := make([]GetDeliveryBacklogQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			deliveryman_id,
			COUNT(*)
		FROM deliveries
		WHERE end_date IS NULL AND canceled_at IS NULL
		GROUP BY deliveryman_id
		ORDER BY deliveryman_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entry GetDeliveryBacklogQueryResponse
		if err = rows.Scan(&entry.DeliverymanID, &entry.Pending); err != nil {
			return nil, err
		}
		backlog = append(backlog, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return backlog, nil
}
