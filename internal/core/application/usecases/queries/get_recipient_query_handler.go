package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"

	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRecipientQueryHandler reads a single recipient, going through the
// recipient cache first.
type GetRecipientQueryHandler struct {
	db    *gorm.DB
	cache ports.RecipientCache
}

// NewGetRecipientQueryHandler creates a handler backed by db and cache.
func NewGetRecipientQueryHandler(db *gorm.DB, cache ports.RecipientCache) GetRecipientQueryHandler {
	return GetRecipientQueryHandler{db: db, cache: cache}
}

// Handle returns the recipient or errs.ObjectNotFoundError.
func (h GetRecipientQueryHandler) Handle(
	ctx context.Context,
	query GetRecipientQuery,
) (GetRecipientQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRecipientQueryResponse{}, err
	}

	key := ports.RecipientCacheKey(query.ID())
	if payload, ok := h.cache.Get(ctx, key); ok {
		var cached GetRecipientQueryResponse
		if err := json.Unmarshal(payload, &cached); err == nil {
			return cached, nil
		}
		h.cache.Invalidate(ctx, key)
	}

	version, fillable := h.cache.Version(ctx, key)

	var (
		resp                        GetRecipientQueryResponse
		address, number, complement sql.NullString
	)

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			street,
			number,
			complement,
			state,
			city,
			cep,
			created_at,
			updated_at
		FROM recipients
		WHERE id = ?
	`, query.ID()).Row().Scan(
		&resp.ID,
		&resp.Name,
		&address,
		&resp.Street,
		&number,
		&complement,
		&resp.State,
		&resp.City,
		&resp.CEP,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetRecipientQueryResponse{}, errs.NewObjectNotFoundError("recipient", strconv.FormatInt(query.ID(), 10))
	}
	if err != nil {
		return GetRecipientQueryResponse{}, err
	}

	resp.Address = nullableString(address)
	resp.Number = nullableString(number)
	resp.Complement = nullableString(complement)

	if !fillable {
		return resp, nil
	}
	if payload, marshalErr := json.Marshal(resp); marshalErr == nil {
		h.cache.SetIfVersion(ctx, key, version, payload)
	}

	return resp, nil
}
