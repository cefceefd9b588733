package service

import "errors"

// Domain error taxonomy. Every failed mutation aborts with no partial write
// and wraps one of these sentinels so handlers can map them to HTTP codes
// with errors.Is. Notification failures are deliberately absent: they are
// logged and swallowed, never propagated.
var (
	// ErrNotFound — reference to a deleted or nonexistent row.
	ErrNotFound = errors.New("ressource introuvable")

	// ErrValidation — malformed input (negative price/quantity, missing reference).
	ErrValidation = errors.New("entrée invalide")

	// ErrPrecondition — transition attempted from the wrong source status, or a
	// cross-entity precondition is unmet.
	ErrPrecondition = errors.New("précondition non satisfaite")

	// ErrDuplicateIdentity — username or email already registered.
	ErrDuplicateIdentity = errors.New("identifiant déjà utilisé")

	// ErrDuplicateOrder — a purchase order already exists for the quote.
	ErrDuplicateOrder = errors.New("bon de commande déjà existant pour ce devis")

	// ErrDuplicateInvoice — an invoice already exists for the quote.
	ErrDuplicateInvoice = errors.New("facture déjà existante pour ce devis")

	// ErrInvalidCredentials — login failure.
	ErrInvalidCredentials = errors.New("identifiants invalides")

	// ErrForbidden — the actor's role (or client identity) does not allow the
	// operation. Checked at the engine boundary, independent of the router.
	ErrForbidden = errors.New("opération non autorisée pour ce rôle")
)
