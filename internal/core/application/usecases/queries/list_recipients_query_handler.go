package queries

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// ListRecipientsQueryHandler serves paginated, name-filtered recipient listings.
type ListRecipientsQueryHandler struct {
	db *gorm.DB
}

// NewListRecipientsQueryHandler creates a handler backed by db.
func NewListRecipientsQueryHandler(db *gorm.DB) ListRecipientsQueryHandler {
	return ListRecipientsQueryHandler{db: db}
}

// Handle returns the requested page. Ties on updated_at are broken by id so
// pages never overlap.
func (h ListRecipientsQueryHandler) Handle(
	ctx context.Context,
	query ListRecipientsQuery,
) (ListRecipientsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListRecipientsQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	pattern := containsPattern(query.Name())
	pagination := query.Pagination()

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM recipients WHERE name ILIKE ?`, pattern).Scan(&total).Error; err != nil {
		return ListRecipientsQueryResponse{}, err
	}

	docs := make([]RecipientSummary, 0, pagination.Limit())
	if total == 0 {
		return newPage(docs, total, pagination), nil
	}

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			address,
			street,
			number,
			city,
			state
		FROM recipients
		WHERE name ILIKE ?
		ORDER BY updated_at DESC, id DESC
		LIMIT ? OFFSET ?
	`, pattern, pagination.Limit(), pagination.Offset()).Rows()
	if err != nil {
		return ListRecipientsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item            RecipientSummary
			address, number sql.NullString
		)

		if err = rows.Scan(
			&item.ID,
			&item.Name,
			&address,
			&item.Street,
			&number,
			&item.City,
			&item.State,
		); err != nil {
			return ListRecipientsQueryResponse{}, err
		}

		item.Address = nullableString(address)
		item.Number = nullableString(number)
		docs = append(docs, item)
	}

	if err = rows.Err(); err != nil {
		return ListRecipientsQueryResponse{}, err
	}

	return newPage(docs, total, pagination), nil
}
