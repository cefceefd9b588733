package model

import "time"

// Delivery (livraison) is the fulfillment record created automatically, in
// the same transaction, when its invoice is paid.
// Statut: "pending_delivery" | "delivered"
type Delivery struct {
	ID        uint   `gorm:"primaryKey"`
	InvoiceID uint   `gorm:"column:facture_id;uniqueIndex;not null"`
	Status    string `gorm:"column:statut;type:varchar(20);not null;default:'pending_delivery'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Delivery) TableName() string { return "livraisons" }
