package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/model"
	"github.com/amalfamous/QuickCRM/internal/repository"

	"gorm.io/gorm"
)

// missingReferent is shown in place of a name whose row was deleted while a
// quote still pointed at it. Readers must never fail on a dangling reference.
const missingReferent = "(référence supprimée)"

// OrderService is the order lifecycle engine: it owns the quote → purchase
// order → invoice → delivery pipeline and every transition guard between the
// four entities. All mutations take the request-scoped Actor and pass the
// capability check before touching any row.
type OrderService interface {
	CreateQuote(ctx context.Context, actor Actor, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error)
	GetQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error)
	ListQuotes(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error)
	UpdateQuote(ctx context.Context, actor Actor, id uint, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error)
	DeleteQuote(ctx context.Context, actor Actor, id uint) error
	ConfirmQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error)
	CancelQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error)

	CreatePurchaseOrder(ctx context.Context, actor Actor, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
	ListPurchaseOrders(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error)
	ReceivePurchaseOrder(ctx context.Context, actor Actor, id uint) (*dto.PurchaseOrderResponse, error)

	CreateInvoice(ctx context.Context, actor Actor, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, actor Actor) ([]dto.InvoiceResponse, error)
	PayInvoice(ctx context.Context, actor Actor, id uint) (*dto.InvoiceResponse, error)
	RefuseInvoice(ctx context.Context, actor Actor, id uint) (*dto.InvoiceResponse, error)

	ListDeliveries(ctx context.Context, actor Actor) ([]dto.DeliveryResponse, error)
	ConfirmDelivery(ctx context.Context, actor Actor, id uint) (*dto.DeliveryResponse, error)

	// Eligibility queries for the UI's option lists.
	QuotesEligibleForOrder(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error)
	QuotesEligibleForInvoice(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error)
	InvoicesEligibleForDelivery(ctx context.Context, actor Actor) ([]dto.InvoiceResponse, error)
}

type orderService struct {
	quoteRepo    repository.QuoteRepository
	orderRepo    repository.PurchaseOrderRepository
	invoiceRepo  repository.InvoiceRepository
	deliveryRepo repository.DeliveryRepository
	productRepo  repository.ProductRepository
	clientRepo   repository.ClientRepository
	notifier     Notifier
}

func NewOrderService(
	quoteRepo repository.QuoteRepository,
	orderRepo repository.PurchaseOrderRepository,
	invoiceRepo repository.InvoiceRepository,
	deliveryRepo repository.DeliveryRepository,
	productRepo repository.ProductRepository,
	clientRepo repository.ClientRepository,
	notifier Notifier,
) OrderService {
	return &orderService{
		quoteRepo:    quoteRepo,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
		productRepo:  productRepo,
		clientRepo:   clientRepo,
		notifier:     notifier,
	}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// ── Quotes ───────────────────────────────────────────────────────────────────

func (s *orderService) CreateQuote(ctx context.Context, actor Actor, req dto.CreateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := Authorize(actor, CapManageQuotes); err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantité %d", ErrValidation, req.Quantity)
	}
	if _, err := s.clientRepo.FindByID(ctx, req.ClientID); err != nil {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, req.ClientID)
	}
	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, fmt.Errorf("%w: produit %d", ErrNotFound, req.ProductID)
	}
	q := &model.Quote{
		ClientID:  req.ClientID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Status:    model.QuotePending,
	}
	if err := s.quoteRepo.Create(ctx, q); err != nil {
		return nil, err
	}
	return s.quoteToResponse(ctx, q), nil
}

func (s *orderService) GetQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error) {
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, id)
	}
	if actor.Role == model.RoleClient && !actor.ownsClient(q.ClientID) {
		return nil, fmt.Errorf("%w: devis %d n'appartient pas à ce client", ErrForbidden, id)
	}
	return s.quoteToResponse(ctx, q), nil
}

// ListQuotes returns every quote for staff roles and only the actor's own
// quotes for client-role actors.
func (s *orderService) ListQuotes(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error) {
	var (
		quotes []model.Quote
		err    error
	)
	if actor.Role == model.RoleClient {
		if actor.ClientID == nil {
			return []dto.QuoteResponse{}, nil
		}
		quotes, err = s.quoteRepo.ListByClient(ctx, *actor.ClientID)
	} else {
		quotes, err = s.quoteRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s.quotesToResponses(ctx, quotes), nil
}

// UpdateQuote lets sales adjust product/quantity while the quote is still
// pending. Confirmed or cancelled quotes are immutable.
func (s *orderService) UpdateQuote(ctx context.Context, actor Actor, id uint, req dto.UpdateQuoteRequest) (*dto.QuoteResponse, error) {
	if err := Authorize(actor, CapManageQuotes); err != nil {
		return nil, err
	}
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, id)
	}
	if q.Status != model.QuotePending {
		return nil, fmt.Errorf("%w: devis %d au statut %q, modification impossible", ErrPrecondition, id, q.Status)
	}
	if req.ProductID != nil {
		if _, err := s.productRepo.FindByID(ctx, *req.ProductID); err != nil {
			return nil, fmt.Errorf("%w: produit %d", ErrNotFound, *req.ProductID)
		}
		q.ProductID = *req.ProductID
	}
	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantité %d", ErrValidation, *req.Quantity)
		}
		q.Quantity = *req.Quantity
	}
	if err := s.quoteRepo.Update(ctx, q); err != nil {
		return nil, err
	}
	return s.quoteToResponse(ctx, q), nil
}

// DeleteQuote removes a quote that has not entered the order pipeline yet.
func (s *orderService) DeleteQuote(ctx context.Context, actor Actor, id uint) error {
	if err := Authorize(actor, CapManageQuotes); err != nil {
		return err
	}
	if _, err := s.quoteRepo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("%w: devis %d", ErrNotFound, id)
	}
	if _, err := s.orderRepo.FindByQuoteID(ctx, id); err == nil {
		return fmt.Errorf("%w: devis %d déjà engagé par un bon de commande", ErrPrecondition, id)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.quoteRepo.Delete(ctx, id)
}

// ConfirmQuote is the client accepting the proposal. Confirming anything but
// a pending quote is rejected, including a second confirmation.
func (s *orderService) ConfirmQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error) {
	if err := Authorize(actor, CapConfirmQuote); err != nil {
		return nil, err
	}
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, id)
	}
	if !actor.ownsClient(q.ClientID) {
		return nil, fmt.Errorf("%w: devis %d n'appartient pas à ce client", ErrForbidden, id)
	}
	rows, err := s.quoteRepo.UpdateStatusGuarded(ctx, id, model.QuotePending, model.QuoteConfirmed)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: devis %d au statut %q, confirmation impossible", ErrPrecondition, id, q.Status)
	}
	q.Status = model.QuoteConfirmed

	notify(s.notifier, s.clientEmail(ctx, q.ClientID),
		fmt.Sprintf("Devis n°%d confirmé", q.ID),
		fmt.Sprintf("<p>Votre devis n°%d a été confirmé. Vous pouvez maintenant émettre le bon de commande.</p>", q.ID))
	return s.quoteToResponse(ctx, q), nil
}

func (s *orderService) CancelQuote(ctx context.Context, actor Actor, id uint) (*dto.QuoteResponse, error) {
	if err := Authorize(actor, CapManageQuotes); err != nil {
		return nil, err
	}
	q, err := s.quoteRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, id)
	}
	rows, err := s.quoteRepo.UpdateStatusGuarded(ctx, id, model.QuotePending, model.QuoteCancelled)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: devis %d au statut %q, annulation impossible", ErrPrecondition, id, q.Status)
	}
	q.Status = model.QuoteCancelled
	return s.quoteToResponse(ctx, q), nil
}

// ── Purchase orders ──────────────────────────────────────────────────────────

// CreatePurchaseOrder turns a confirmed quote into the client's commitment.
// Two racing creations are resolved by the unique index on devis_id: exactly
// one wins, the loser gets ErrDuplicateOrder.
func (s *orderService) CreatePurchaseOrder(ctx context.Context, actor Actor, req dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	if err := Authorize(actor, CapCreateOrder); err != nil {
		return nil, err
	}
	q, err := s.quoteRepo.FindByID(ctx, req.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, req.QuoteID)
	}
	if !actor.ownsClient(q.ClientID) {
		return nil, fmt.Errorf("%w: devis %d n'appartient pas à ce client", ErrForbidden, req.QuoteID)
	}
	if q.Status != model.QuoteConfirmed {
		return nil, fmt.Errorf("%w: devis %d au statut %q, bon de commande impossible", ErrPrecondition, req.QuoteID, q.Status)
	}
	if _, err := s.orderRepo.FindByQuoteID(ctx, req.QuoteID); err == nil {
		return nil, fmt.Errorf("%w: devis %d", ErrDuplicateOrder, req.QuoteID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	po := &model.PurchaseOrder{QuoteID: req.QuoteID, Status: model.OrderPending}
	if err := s.orderRepo.Create(ctx, po); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: devis %d", ErrDuplicateOrder, req.QuoteID)
		}
		return nil, err
	}
	return orderToResponse(po), nil
}

func (s *orderService) ListPurchaseOrders(ctx context.Context, actor Actor) ([]dto.PurchaseOrderResponse, error) {
	var (
		orders []model.PurchaseOrder
		err    error
	)
	if actor.Role == model.RoleClient {
		if actor.ClientID == nil {
			return []dto.PurchaseOrderResponse{}, nil
		}
		orders, err = s.orderRepo.ListByClient(ctx, *actor.ClientID)
	} else {
		orders, err = s.orderRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PurchaseOrderResponse, len(orders))
	for i, po := range orders {
		resp[i] = *orderToResponse(&po)
	}
	return resp, nil
}

func (s *orderService) ReceivePurchaseOrder(ctx context.Context, actor Actor, id uint) (*dto.PurchaseOrderResponse, error) {
	if err := Authorize(actor, CapReceiveOrder); err != nil {
		return nil, err
	}
	po, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: bon de commande %d", ErrNotFound, id)
	}
	rows, err := s.orderRepo.UpdateStatusGuarded(ctx, id, model.OrderPending, model.OrderReceived)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: bon de commande %d au statut %q", ErrPrecondition, id, po.Status)
	}
	po.Status = model.OrderReceived
	return orderToResponse(po), nil
}

// ── Invoices ─────────────────────────────────────────────────────────────────

// CreateInvoice requires a confirmed quote whose purchase order has been
// received, and at most one invoice per quote.
func (s *orderService) CreateInvoice(ctx context.Context, actor Actor, req dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := Authorize(actor, CapCreateInvoice); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: montant négatif", ErrValidation)
	}
	q, err := s.quoteRepo.FindByID(ctx, req.QuoteID)
	if err != nil {
		return nil, fmt.Errorf("%w: devis %d", ErrNotFound, req.QuoteID)
	}
	if q.Status != model.QuoteConfirmed {
		return nil, fmt.Errorf("%w: devis %d au statut %q, facturation impossible", ErrPrecondition, req.QuoteID, q.Status)
	}
	po, err := s.orderRepo.FindByQuoteID(ctx, req.QuoteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: devis %d sans bon de commande", ErrPrecondition, req.QuoteID)
	} else if err != nil {
		return nil, err
	}
	if po.Status != model.OrderReceived {
		return nil, fmt.Errorf("%w: bon de commande %d au statut %q, facturation impossible", ErrPrecondition, po.ID, po.Status)
	}
	if _, err := s.invoiceRepo.FindByQuoteID(ctx, req.QuoteID); err == nil {
		return nil, fmt.Errorf("%w: devis %d", ErrDuplicateInvoice, req.QuoteID)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv := &model.Invoice{QuoteID: req.QuoteID, Amount: req.Amount, Status: model.InvoicePendingPayment}
	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: devis %d", ErrDuplicateInvoice, req.QuoteID)
		}
		return nil, err
	}

	notify(s.notifier, s.clientEmail(ctx, q.ClientID),
		fmt.Sprintf("Facture n°%d émise", inv.ID),
		fmt.Sprintf("<p>Une facture de %s € a été émise pour votre devis n°%d.</p>", inv.Amount.StringFixed(2), q.ID))
	return invoiceToResponse(inv), nil
}

func (s *orderService) ListInvoices(ctx context.Context, actor Actor) ([]dto.InvoiceResponse, error) {
	var (
		invoices []model.Invoice
		err      error
	)
	if actor.Role == model.RoleClient {
		if actor.ClientID == nil {
			return []dto.InvoiceResponse{}, nil
		}
		invoices, err = s.invoiceRepo.ListByClient(ctx, *actor.ClientID)
	} else {
		invoices, err = s.invoiceRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = *invoiceToResponse(&inv)
	}
	return resp, nil
}

// PayInvoice flips the invoice to paid and creates its delivery row in one
// transaction. The guarded UPDATE makes a second pay — concurrent or not —
// fail with ErrPrecondition instead of creating a second delivery; if the
// delivery insert fails, the whole transaction rolls back and the invoice is
// not left paid.
func (s *orderService) PayInvoice(ctx context.Context, actor Actor, id uint) (*dto.InvoiceResponse, error) {
	if err := Authorize(actor, CapSettleInvoice); err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: facture %d", ErrNotFound, id)
	}

	txErr := runTx(ctx, s.invoiceRepo.DB(), func(tx *gorm.DB) error {
		rows, err := s.invoiceRepo.UpdateStatusGuardedTx(ctx, tx, id, model.InvoicePendingPayment, model.InvoicePaid)
		if err != nil {
			return err
		}
		if rows == 0 {
			return fmt.Errorf("%w: facture %d au statut %q, paiement impossible", ErrPrecondition, id, inv.Status)
		}
		return s.deliveryRepo.CreateTx(ctx, tx, &model.Delivery{
			InvoiceID: id,
			Status:    model.DeliveryPending,
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	inv.Status = model.InvoicePaid

	notify(s.notifier, s.invoiceClientEmail(ctx, inv),
		fmt.Sprintf("Facture n°%d payée", inv.ID),
		fmt.Sprintf("<p>Le paiement de la facture n°%d a été enregistré. La livraison est planifiée.</p>", inv.ID))
	return invoiceToResponse(inv), nil
}

func (s *orderService) RefuseInvoice(ctx context.Context, actor Actor, id uint) (*dto.InvoiceResponse, error) {
	if err := Authorize(actor, CapSettleInvoice); err != nil {
		return nil, err
	}
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: facture %d", ErrNotFound, id)
	}
	rows, err := s.invoiceRepo.UpdateStatusGuarded(ctx, id, model.InvoicePendingPayment, model.InvoiceRefused)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: facture %d au statut %q, refus impossible", ErrPrecondition, id, inv.Status)
	}
	inv.Status = model.InvoiceRefused
	return invoiceToResponse(inv), nil
}

// ── Deliveries ───────────────────────────────────────────────────────────────

func (s *orderService) ListDeliveries(ctx context.Context, actor Actor) ([]dto.DeliveryResponse, error) {
	deliveries, err := s.deliveryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.DeliveryResponse, len(deliveries))
	for i, d := range deliveries {
		resp[i] = *deliveryToResponse(&d)
	}
	return resp, nil
}

func (s *orderService) ConfirmDelivery(ctx context.Context, actor Actor, id uint) (*dto.DeliveryResponse, error) {
	if err := Authorize(actor, CapConfirmDelivery); err != nil {
		return nil, err
	}
	d, err := s.deliveryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: livraison %d", ErrNotFound, id)
	}
	rows, err := s.deliveryRepo.UpdateStatusGuarded(ctx, id, model.DeliveryPending, model.DeliveryDelivered)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, fmt.Errorf("%w: livraison %d au statut %q", ErrPrecondition, id, d.Status)
	}
	d.Status = model.DeliveryDelivered

	if inv, err := s.invoiceRepo.FindByID(ctx, d.InvoiceID); err == nil {
		notify(s.notifier, s.invoiceClientEmail(ctx, inv),
			fmt.Sprintf("Commande livrée (facture n°%d)", inv.ID),
			fmt.Sprintf("<p>Votre commande liée à la facture n°%d a été livrée.</p>", inv.ID))
	}
	return deliveryToResponse(d), nil
}

// ── Eligibility queries ──────────────────────────────────────────────────────

func (s *orderService) QuotesEligibleForOrder(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error) {
	var clientID *uint
	if actor.Role == model.RoleClient {
		if actor.ClientID == nil {
			return []dto.QuoteResponse{}, nil
		}
		clientID = actor.ClientID
	}
	quotes, err := s.quoteRepo.EligibleForOrder(ctx, clientID)
	if err != nil {
		return nil, err
	}
	return s.quotesToResponses(ctx, quotes), nil
}

func (s *orderService) QuotesEligibleForInvoice(ctx context.Context, actor Actor) ([]dto.QuoteResponse, error) {
	quotes, err := s.quoteRepo.EligibleForInvoice(ctx)
	if err != nil {
		return nil, err
	}
	return s.quotesToResponses(ctx, quotes), nil
}

func (s *orderService) InvoicesEligibleForDelivery(ctx context.Context, actor Actor) ([]dto.InvoiceResponse, error) {
	invoices, err := s.invoiceRepo.EligibleForDelivery(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = *invoiceToResponse(&inv)
	}
	return resp, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

// clientEmail resolves a client's address for notifications; empty when the
// client row is gone (the notification is simply skipped).
func (s *orderService) clientEmail(ctx context.Context, clientID uint) string {
	c, err := s.clientRepo.FindByID(ctx, clientID)
	if err != nil {
		return ""
	}
	return c.Email
}

func (s *orderService) invoiceClientEmail(ctx context.Context, inv *model.Invoice) string {
	q, err := s.quoteRepo.FindByID(ctx, inv.QuoteID)
	if err != nil {
		return ""
	}
	return s.clientEmail(ctx, q.ClientID)
}

func (s *orderService) quoteToResponse(ctx context.Context, q *model.Quote) *dto.QuoteResponse {
	clientName := missingReferent
	if c, err := s.clientRepo.FindByID(ctx, q.ClientID); err == nil {
		clientName = c.Name
	}
	productName := missingReferent
	if p, err := s.productRepo.FindByID(ctx, q.ProductID); err == nil {
		productName = p.Name
	}
	return &dto.QuoteResponse{
		ID:          q.ID,
		ClientID:    q.ClientID,
		ClientName:  clientName,
		ProductID:   q.ProductID,
		ProductName: productName,
		Quantity:    q.Quantity,
		Status:      q.Status,
		CreatedAt:   q.CreatedAt.Format(time.RFC3339),
	}
}

func (s *orderService) quotesToResponses(ctx context.Context, quotes []model.Quote) []dto.QuoteResponse {
	resp := make([]dto.QuoteResponse, len(quotes))
	for i, q := range quotes {
		resp[i] = *s.quoteToResponse(ctx, &q)
	}
	return resp
}

func orderToResponse(po *model.PurchaseOrder) *dto.PurchaseOrderResponse {
	return &dto.PurchaseOrderResponse{
		ID:        po.ID,
		QuoteID:   po.QuoteID,
		Status:    po.Status,
		CreatedAt: po.CreatedAt.Format(time.RFC3339),
	}
}

func invoiceToResponse(inv *model.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:        inv.ID,
		QuoteID:   inv.QuoteID,
		Amount:    inv.Amount,
		Status:    inv.Status,
		CreatedAt: inv.CreatedAt.Format(time.RFC3339),
	}
}

func deliveryToResponse(d *model.Delivery) *dto.DeliveryResponse {
	return &dto.DeliveryResponse{
		ID:        d.ID,
		InvoiceID: d.InvoiceID,
		Status:    d.Status,
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
}
