package model

// Status values for each pipeline entity. The pipeline is strictly linear:
// quote → purchase order → invoice → delivery, each entity advancing through
// its own small set of states.
const (
	QuotePending   = "pending"
	QuoteConfirmed = "confirmed"
	QuoteCancelled = "cancelled"

	OrderPending  = "pending"
	OrderReceived = "received"

	InvoicePendingPayment = "pending_payment"
	InvoicePaid           = "paid"
	InvoiceRefused        = "refused"

	DeliveryPending   = "pending_delivery"
	DeliveryDelivered = "delivered"
)

// quoteTransitions maps a quote status to the statuses it may move to.
// Confirmed and Cancelled are terminal.
var quoteTransitions = map[string][]string{
	QuotePending: {QuoteConfirmed, QuoteCancelled},
}

var orderTransitions = map[string][]string{
	OrderPending: {OrderReceived},
}

var invoiceTransitions = map[string][]string{
	InvoicePendingPayment: {InvoicePaid, InvoiceRefused},
}

var deliveryTransitions = map[string][]string{
	DeliveryPending: {DeliveryDelivered},
}

func allowed(table map[string][]string, from, to string) bool {
	for _, s := range table[from] {
		if s == to {
			return true
		}
	}
	return false
}

// QuoteCanTransition reports whether a quote may move from → to.
func QuoteCanTransition(from, to string) bool { return allowed(quoteTransitions, from, to) }

// OrderCanTransition reports whether a purchase order may move from → to.
func OrderCanTransition(from, to string) bool { return allowed(orderTransitions, from, to) }

// InvoiceCanTransition reports whether an invoice may move from → to.
func InvoiceCanTransition(from, to string) bool { return allowed(invoiceTransitions, from, to) }

// DeliveryCanTransition reports whether a delivery may move from → to.
func DeliveryCanTransition(from, to string) bool { return allowed(deliveryTransitions, from, to) }
