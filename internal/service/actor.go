package service

import (
	"fmt"

	"github.com/amalfamous/QuickCRM/internal/model"
)

// Actor is the request-scoped identity passed into every engine call. The
// engine never reads ambient session state; handlers build an Actor from the
// verified JWT claims on each request.
type Actor struct {
	UserID uint
	Role   string
	Email  string
	// ClientID is set for client-role actors and scopes their quote/order
	// operations to their own rows.
	ClientID *uint
}

// Capability names one engine operation for authorization purposes.
type Capability string

const (
	CapManageProducts  Capability = "products.manage"
	CapManageClients   Capability = "clients.manage"
	CapManageQuotes    Capability = "quotes.manage" // create/edit/cancel/delete
	CapConfirmQuote    Capability = "quotes.confirm"
	CapCreateOrder     Capability = "orders.create"
	CapReceiveOrder    Capability = "orders.receive"
	CapCreateInvoice   Capability = "invoices.create"
	CapSettleInvoice   Capability = "invoices.settle" // pay / refuse
	CapConfirmDelivery Capability = "deliveries.confirm"
)

// capabilities is the one authorization table for the whole engine: one row
// per role, independent of how the HTTP routes are grouped.
var capabilities = map[string]map[Capability]bool{
	model.RoleSales: {
		CapManageProducts: true,
		CapManageClients:  true,
		CapManageQuotes:   true,
		CapReceiveOrder:   true,
		CapCreateInvoice:  true,
		CapSettleInvoice:  true,
	},
	model.RoleClient: {
		CapConfirmQuote: true,
		CapCreateOrder:  true,
	},
	model.RoleDelivery: {
		CapConfirmDelivery: true,
	},
}

// Authorize rejects the call when the actor's role lacks the capability.
func Authorize(actor Actor, op Capability) error {
	if capabilities[actor.Role][op] {
		return nil
	}
	return fmt.Errorf("%w: rôle %q, opération %q", ErrForbidden, actor.Role, op)
}

// ownsClient reports whether a client-role actor acts on its own client row.
func (a Actor) ownsClient(clientID uint) bool {
	return a.ClientID != nil && *a.ClientID == clientID
}
