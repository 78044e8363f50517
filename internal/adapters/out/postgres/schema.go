package postgres

import (
	"time"

	"fastfeet/internal/adapters/out/postgres/recipientrepo"

	"gorm.io/gorm"
)

// DeliverymanDTO maps the deliverymen table. The service only reads it to
// check that a deliveryman exists.
type DeliverymanDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (DeliverymanDTO) TableName() string {
	return "deliverymen"
}

// DeliveryDTO maps the deliveries table.
// A null EndDate means the delivery is still pending.
type DeliveryDTO struct {
	ID            int64                       `gorm:"primaryKey;autoIncrement"`
	Product       string                      `gorm:"type:varchar(255);not null"`
	DeliverymanID int64                       `gorm:"not null;index"`
	Deliveryman   DeliverymanDTO              `gorm:"foreignKey:DeliverymanID;constraint:OnDelete:CASCADE"`
	RecipientID   *int64                      `gorm:"index"`
	Recipient     *recipientrepo.RecipientDTO `gorm:"foreignKey:RecipientID;constraint:OnDelete:SET NULL"`
	StartDate     *time.Time
	EndDate       *time.Time
	CanceledAt    *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// Migrate creates or updates every table the service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&recipientrepo.RecipientDTO{},
		&DeliverymanDTO{},
		&DeliveryDTO{},
	)
}
