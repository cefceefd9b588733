package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. No business rules beyond a non-negative price.
type Product struct {
	ID        uint            `gorm:"primaryKey"`
	Name      string          `gorm:"column:nom;index;not null"`
	Price     decimal.Decimal `gorm:"column:prix;type:decimal(12,2);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string { return "produits" }
