package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteTransitions(t *testing.T) {
	assert.True(t, QuoteCanTransition(QuotePending, QuoteConfirmed))
	assert.True(t, QuoteCanTransition(QuotePending, QuoteCancelled))

	// Confirmed and cancelled are terminal.
	assert.False(t, QuoteCanTransition(QuoteConfirmed, QuoteCancelled))
	assert.False(t, QuoteCanTransition(QuoteConfirmed, QuotePending))
	assert.False(t, QuoteCanTransition(QuoteCancelled, QuoteConfirmed))
	assert.False(t, QuoteCanTransition(QuotePending, QuotePending))
}

func TestOrderTransitions(t *testing.T) {
	assert.True(t, OrderCanTransition(OrderPending, OrderReceived))
	assert.False(t, OrderCanTransition(OrderReceived, OrderPending))
	assert.False(t, OrderCanTransition(OrderReceived, OrderReceived))
}

func TestInvoiceTransitions(t *testing.T) {
	assert.True(t, InvoiceCanTransition(InvoicePendingPayment, InvoicePaid))
	assert.True(t, InvoiceCanTransition(InvoicePendingPayment, InvoiceRefused))
	assert.False(t, InvoiceCanTransition(InvoicePaid, InvoiceRefused))
	assert.False(t, InvoiceCanTransition(InvoiceRefused, InvoicePaid))
}

func TestDeliveryTransitions(t *testing.T) {
	assert.True(t, DeliveryCanTransition(DeliveryPending, DeliveryDelivered))
	assert.False(t, DeliveryCanTransition(DeliveryDelivered, DeliveryPending))
}

func TestUnknownStatusNeverTransitions(t *testing.T) {
	assert.False(t, QuoteCanTransition("draft", QuoteConfirmed))
	assert.False(t, InvoiceCanTransition(InvoicePendingPayment, "archived"))
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleSales))
	assert.True(t, ValidRole(RoleClient))
	assert.True(t, ValidRole(RoleDelivery))
	assert.False(t, ValidRole("admin"))
	assert.False(t, ValidRole(""))
}
