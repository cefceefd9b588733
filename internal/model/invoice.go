package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice (facture) is a payment request issued once a purchase order is
// received. One invoice per quote.
// Statut: "pending_payment" | "paid" | "refused"
type Invoice struct {
	ID        uint            `gorm:"primaryKey"`
	QuoteID   uint            `gorm:"column:devis_id;uniqueIndex;not null"`
	Amount    decimal.Decimal `gorm:"column:montant;type:decimal(12,2);not null"`
	Status    string          `gorm:"column:statut;type:varchar(20);not null;default:'pending_payment'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Invoice) TableName() string { return "factures" }
