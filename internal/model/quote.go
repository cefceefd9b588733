package model

import "time"

// Quote (devis) proposes a product/quantity sale to a client, pending the
// client's confirmation.
// Statut: "pending" | "confirmed" | "cancelled"
type Quote struct {
	ID        uint   `gorm:"primaryKey"`
	ClientID  uint   `gorm:"column:client_id;index;not null"`
	ProductID uint   `gorm:"column:produit_id;index;not null"`
	Quantity  int    `gorm:"column:quantite;not null"`
	Status    string `gorm:"column:statut;type:varchar(20);not null;default:'pending'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Quote) TableName() string { return "devis" }
