package model

import "time"

// PurchaseOrder (bon de commande) is the client's formal commitment to a
// confirmed quote. The unique index on QuoteID makes the one-order-per-quote
// rule hold even when two creations race.
// Statut: "pending" | "received"
type PurchaseOrder struct {
	ID        uint   `gorm:"primaryKey"`
	QuoteID   uint   `gorm:"column:devis_id;uniqueIndex;not null"`
	Status    string `gorm:"column:statut;type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PurchaseOrder) TableName() string { return "bon_commandes" }
