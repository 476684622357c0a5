package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentModel mirrors the 'payments' table.
type PaymentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	Method      string    `gorm:"type:varchar(20);not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'completed'"`
	PaymentDate time.Time `gorm:"not null;index"`
	Notes       string    `gorm:"type:text"`
	CreatedAt   time.Time

	Invoice *InvoiceModel `gorm:"foreignKey:InvoiceID"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}
