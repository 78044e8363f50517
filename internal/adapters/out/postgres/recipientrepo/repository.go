package recipientrepo

import (
	"context"
	"errors"
	"strconv"

	"fastfeet/internal/core/domain/model/recipient"
	"fastfeet/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRecipientRepository implements ports.RecipientRepository using GORM.
type GormRecipientRepository struct {
	db *gorm.DB
}

// NewGormRecipientRepository creates a new GORM recipient repository.
func NewGormRecipientRepository(db *gorm.DB) *GormRecipientRepository {
	return &GormRecipientRepository{db: db}
}

// Add inserts a new recipient and returns it with the assigned id and timestamps.
func (r *GormRecipientRepository) Add(ctx context.Context, aggregate *recipient.Recipient) (*recipient.Recipient, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	return toDomain(dto)
}

// Update writes every mutable column of an existing recipient.
func (r *GormRecipientRepository) Update(ctx context.Context, aggregate *recipient.Recipient) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !aggregate.IsPersisted() {
		return errs.NewValueIsInvalidError("id")
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&dto).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(aggregate.ID())
	}

	return nil
}

// Get retrieves a recipient by id.
func (r *GormRecipientRepository) Get(ctx context.Context, id int64) (*recipient.Recipient, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a recipient with SELECT ... FOR UPDATE.
func (r *GormRecipientRepository) GetForUpdate(ctx context.Context, id int64) (*recipient.Recipient, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// Delete removes a recipient by id.
func (r *GormRecipientRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&RecipientDTO{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return notFound(id)
	}

	return nil
}

func (r *GormRecipientRepository) get(db *gorm.DB, id int64) (*recipient.Recipient, error) {
	var dto RecipientDTO
	if err := db.First(&dto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound(id)
		}
		return nil, err
	}

	return toDomain(dto)
}

func notFound(id int64) error {
	return errs.NewObjectNotFoundError("recipient", strconv.FormatInt(id, 10))
}
