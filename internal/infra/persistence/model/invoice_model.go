package model

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceModel mirrors the 'invoices' table.
type InvoiceModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceNumber string    `gorm:"type:varchar(32);unique;not null"`
	ProviderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PurchaserID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Subtotal      float64   `gorm:"type:numeric(14,2);not null"`
	Tax           float64   `gorm:"type:numeric(14,2);not null;default:0"`
	Total         float64   `gorm:"type:numeric(14,2);not null"`
	Currency      string    `gorm:"type:varchar(8);not null"`
	Status        string    `gorm:"type:varchar(20);not null;index;default:'pending'"`
	IssuedDate    time.Time `gorm:"not null"`
	DueDate       time.Time `gorm:"not null"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Provider  *UserModel         `gorm:"foreignKey:ProviderID"`
	Purchaser *UserModel         `gorm:"foreignKey:PurchaserID"`
	Items     []InvoiceItemModel `gorm:"foreignKey:InvoiceID"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceModel) TableName() string {
	return "invoices"
}

// InvoiceItemModel mirrors the 'invoice_items' table. Items are only ever
// written together with their invoice.
type InvoiceItemModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	InvoiceID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Description string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null"`
	UnitPrice   float64   `gorm:"type:numeric(14,2);not null"`
	Total       float64   `gorm:"type:numeric(14,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}
