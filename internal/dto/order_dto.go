package dto

import "github.com/shopspring/decimal"

// ─── Quotes ──────────────────────────────────────────────────────────────────

type CreateQuoteRequest struct {
	ClientID  uint `json:"client_id"  validate:"required,min=1"`
	ProductID uint `json:"product_id" validate:"required,min=1"`
	Quantity  int  `json:"quantity"   validate:"required,min=1"`
}

type UpdateQuoteRequest struct {
	ProductID *uint `json:"product_id" validate:"omitempty,min=1"`
	Quantity  *int  `json:"quantity"   validate:"omitempty,min=1"`
}

// QuoteResponse resolves the client and product names for display. A deleted
// referent shows the placeholder name instead of breaking the listing.
type QuoteResponse struct {
	ID          uint   `json:"id"`
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ─── Purchase orders ─────────────────────────────────────────────────────────

type CreatePurchaseOrderRequest struct {
	QuoteID uint `json:"quote_id" validate:"required,min=1"`
}

type PurchaseOrderResponse struct {
	ID        uint   `json:"id"`
	QuoteID   uint   `json:"quote_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ─── Invoices ────────────────────────────────────────────────────────────────

type CreateInvoiceRequest struct {
	QuoteID uint            `json:"quote_id" validate:"required,min=1"`
	Amount  decimal.Decimal `json:"amount"   validate:"min=0"`
}

type InvoiceResponse struct {
	ID        uint            `json:"id"`
	QuoteID   uint            `json:"quote_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

// ─── Deliveries ──────────────────────────────────────────────────────────────

type DeliveryResponse struct {
	ID        uint   `json:"id"`
	InvoiceID uint   `json:"invoice_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
