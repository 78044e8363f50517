// Package recipientrepo provides data transfer objects and mapping functions for recipient persistence.
// This package implements the repository pattern for the recipient aggregate, handling
// the conversion between domain entities and database rows.
package recipientrepo

import (
	"time"

	"fastfeet/internal/core/domain/model/kernel"
	"fastfeet/internal/core/domain/model/recipient"
)

// RecipientDTO represents the database structure of the recipients table.
type RecipientDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Address    *string   `gorm:"type:varchar(255)"`
	Street     string    `gorm:"type:varchar(255);not null"`
	Number     *string   `gorm:"type:varchar(255)"`
	Complement *string   `gorm:"type:varchar(255)"`
	State      string    `gorm:"type:varchar(255);not null"`
	City       string    `gorm:"type:varchar(255);not null"`
	CEP        string    `gorm:"column:cep;type:varchar(255);not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null;index"`
}

// TableName overrides GORM's default "recipient_dtos".
func (RecipientDTO) TableName() string {
	return "recipients"
}

func fromDomain(aggregate *recipient.Recipient) RecipientDTO {
	address := aggregate.Address()

	return RecipientDTO{
		ID:         aggregate.ID(),
		Name:       aggregate.Name(),
		Address:    address.Line(),
		Street:     address.Street(),
		Number:     address.Number(),
		Complement: address.Complement(),
		State:      address.State(),
		City:       address.City(),
		CEP:        address.CEP(),
		CreatedAt:  aggregate.CreatedAt(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}
}

// toDomain rebuilds the aggregate with RestoreRecipient, so rows that violate
// the domain rules surface as errors instead of half-valid aggregates.
func toDomain(dto RecipientDTO) (*recipient.Recipient, error) {
	address, err := kernel.NewAddress(kernel.AddressFields{
		Line:       dto.Address,
		Street:     dto.Street,
		Number:     dto.Number,
		Complement: dto.Complement,
		City:       dto.City,
		State:      dto.State,
		CEP:        dto.CEP,
	})
	if err != nil {
		return nil, err
	}

	return recipient.RestoreRecipient(dto.ID, dto.Name, address, dto.CreatedAt, dto.UpdatedAt)
}
