package dto

import "github.com/shopspring/decimal"

type CreateProductRequest struct {
	Name  string          `json:"name"  validate:"required,min=1,max=120"`
	Price decimal.Decimal `json:"price" validate:"min=0"`
}

type UpdateProductRequest struct {
	Name  *string          `json:"name"  validate:"omitempty,min=1,max=120"`
	Price *decimal.Decimal `json:"price"`
}

type ProductResponse struct {
	ID    uint            `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
