package service_test

// Lifecycle tests for the quote → purchase order → invoice → delivery
// pipeline, run against an in-memory SQLite database so the unique indexes
// and guarded updates behave exactly as in production.

import (
	"context"
	"sync"
	"testing"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/infra"
	"github.com/amalfamous/QuickCRM/internal/model"
	"github.com/amalfamous/QuickCRM/internal/repository"
	"github.com/amalfamous/QuickCRM/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// recordingNotifier captures outgoing notifications instead of sending them.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []string // "to|subject"
}

func (n *recordingNotifier) Send(to, subject, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, to+"|"+subject)
	return nil
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testEnv struct {
	db       *gorm.DB
	orders   service.OrderService
	products service.ProductService
	clients  service.ClientService
	notifier *recordingNotifier

	quoteRepo    repository.QuoteRepository
	orderRepo    repository.PurchaseOrderRepository
	invoiceRepo  repository.InvoiceRepository
	deliveryRepo repository.DeliveryRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, infra.RunMigrations(db))

	quoteRepo := repository.NewQuoteRepository(db)
	orderRepo := repository.NewPurchaseOrderRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	deliveryRepo := repository.NewDeliveryRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)

	notifier := &recordingNotifier{}
	return &testEnv{
		db:           db,
		orders:       service.NewOrderService(quoteRepo, orderRepo, invoiceRepo, deliveryRepo, productRepo, clientRepo, notifier),
		products:     service.NewProductService(productRepo, quoteRepo),
		clients:      service.NewClientService(clientRepo, quoteRepo),
		notifier:     notifier,
		quoteRepo:    quoteRepo,
		orderRepo:    orderRepo,
		invoiceRepo:  invoiceRepo,
		deliveryRepo: deliveryRepo,
	}
}

func salesActor() service.Actor {
	return service.Actor{UserID: 1, Role: model.RoleSales, Email: "vendeur@quickcrm.local"}
}

func clientActor(clientID uint) service.Actor {
	return service.Actor{UserID: 2, Role: model.RoleClient, Email: "client@exemple.fr", ClientID: &clientID}
}

func deliveryActor() service.Actor {
	return service.Actor{UserID: 3, Role: model.RoleDelivery, Email: "livreur@quickcrm.local"}
}

// seedCatalog inserts one client and one product and returns their ids.
func seedCatalog(t *testing.T, env *testEnv) (clientID, productID uint) {
	t.Helper()
	ctx := context.Background()
	cl, err := env.clients.Create(ctx, salesActor(), dto.CreateClientRequest{
		Name: "Dupont SARL", Email: "contact@dupont.fr",
	})
	require.NoError(t, err)
	p, err := env.products.Create(ctx, salesActor(), dto.CreateProductRequest{
		Name: "Imprimante laser", Price: decimal.NewFromInt(249),
	})
	require.NoError(t, err)
	return cl.ID, p.ID
}

// seedQuote creates a pending quote for the seeded client/product.
func seedQuote(t *testing.T, env *testEnv, clientID, productID uint) uint {
	t.Helper()
	q, err := env.orders.CreateQuote(context.Background(), salesActor(), dto.CreateQuoteRequest{
		ClientID: clientID, ProductID: productID, Quantity: 3,
	})
	require.NoError(t, err)
	require.Equal(t, model.QuotePending, q.Status)
	return q.ID
}

func TestFullPipelineHappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	// Client confirms the quote.
	q, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)
	assert.Equal(t, model.QuoteConfirmed, q.Status)

	// Client emits the purchase order.
	po, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, po.Status)

	// Sales marks it received and invoices.
	po, err = env.orders.ReceivePurchaseOrder(ctx, salesActor(), po.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderReceived, po.Status)

	inv, err := env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{
		QuoteID: quoteID, Amount: decimal.NewFromInt(747),
	})
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePendingPayment, inv.Status)

	// Payment schedules the delivery in the same transaction.
	inv, err = env.orders.PayInvoice(ctx, salesActor(), inv.ID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoicePaid, inv.Status)

	d, err := env.deliveryRepo.FindByInvoiceID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryPending, d.Status)

	// Delivery staff confirms.
	dr, err := env.orders.ConfirmDelivery(ctx, deliveryActor(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, model.DeliveryDelivered, dr.Status)

	// Confirmation, invoice, payment and delivery each notified the client.
	assert.Equal(t, 4, env.notifier.count())
}

func TestConfirmQuoteOnlyFromPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	// Second confirmation is a precondition violation, not a no-op.
	_, err = env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	assert.ErrorIs(t, err, service.ErrPrecondition)

	// Cancelling a confirmed quote is also rejected.
	_, err = env.orders.CancelQuote(ctx, salesActor(), quoteID)
	assert.ErrorIs(t, err, service.ErrPrecondition)
}

func TestConfirmQuoteOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	// A different client cannot confirm someone else's quote.
	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID+99), quoteID)
	assert.ErrorIs(t, err, service.ErrForbidden)

	// Nor can sales: confirmation is the client's capability.
	_, err = env.orders.ConfirmQuote(ctx, salesActor(), quoteID)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestUpdateQuoteOnlyWhilePending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	qty := 10
	q, err := env.orders.UpdateQuote(ctx, salesActor(), quoteID, dto.UpdateQuoteRequest{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, 10, q.Quantity)

	_, err = env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	_, err = env.orders.UpdateQuote(ctx, salesActor(), quoteID, dto.UpdateQuoteRequest{Quantity: &qty})
	assert.ErrorIs(t, err, service.ErrPrecondition)
}

func TestCreateQuoteValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)

	_, err := env.orders.CreateQuote(ctx, salesActor(), dto.CreateQuoteRequest{
		ClientID: clientID, ProductID: productID, Quantity: 0,
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = env.orders.CreateQuote(ctx, salesActor(), dto.CreateQuoteRequest{
		ClientID: clientID + 99, ProductID: productID, Quantity: 1,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = env.orders.CreateQuote(ctx, salesActor(), dto.CreateQuoteRequest{
		ClientID: clientID, ProductID: productID + 99, Quantity: 1,
	})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestPurchaseOrderRequiresConfirmedQuote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	assert.ErrorIs(t, err, service.ErrPrecondition)
}

func TestPurchaseOrderUniquePerQuote(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	_, err = env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)

	_, err = env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	assert.ErrorIs(t, err, service.ErrDuplicateOrder)

	orders, err := env.orderRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestConcurrentPurchaseOrderCreationSingleWinner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	// Two racing creations: whatever the interleaving, exactly one wins and
	// the loser gets the duplicate error, backed by the unique index when
	// both slip past the pre-flight check.
	errs := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var ok, dup int
	for err := range errs {
		if err == nil {
			ok++
		} else {
			assert.ErrorIs(t, err, service.ErrDuplicateOrder)
			dup++
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, dup)

	orders, err := env.orderRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestPurchaseOrderUniqueIndexBacksPrecheck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	// Insert directly through the repository, as a racing request that
	// slipped past the service pre-check would.
	require.NoError(t, env.orderRepo.Create(ctx, &model.PurchaseOrder{QuoteID: quoteID, Status: model.OrderPending}))
	err := env.orderRepo.Create(ctx, &model.PurchaseOrder{QuoteID: quoteID, Status: model.OrderPending})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestInvoiceUniqueIndexBacksPrecheck(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	amount := decimal.NewFromInt(100)
	require.NoError(t, env.invoiceRepo.Create(ctx, &model.Invoice{
		QuoteID: quoteID, Amount: amount, Status: model.InvoicePendingPayment,
	}))
	err := env.invoiceRepo.Create(ctx, &model.Invoice{
		QuoteID: quoteID, Amount: amount, Status: model.InvoicePendingPayment,
	})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestInvoiceRequiresReceivedOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)
	amount := decimal.NewFromInt(100)

	// Pending quote: no invoice.
	_, err := env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{QuoteID: quoteID, Amount: amount})
	assert.ErrorIs(t, err, service.ErrPrecondition)

	_, err = env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	// Confirmed but no purchase order yet.
	_, err = env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{QuoteID: quoteID, Amount: amount})
	assert.ErrorIs(t, err, service.ErrPrecondition)

	po, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)

	// Order exists but still pending.
	_, err = env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{QuoteID: quoteID, Amount: amount})
	assert.ErrorIs(t, err, service.ErrPrecondition)

	_, err = env.orders.ReceivePurchaseOrder(ctx, salesActor(), po.ID)
	require.NoError(t, err)

	_, err = env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{QuoteID: quoteID, Amount: amount})
	require.NoError(t, err)

	// One invoice per quote.
	_, err = env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{QuoteID: quoteID, Amount: amount})
	assert.ErrorIs(t, err, service.ErrDuplicateInvoice)
}

// runPipelineToInvoice drives a fresh quote up to a pending-payment invoice.
func runPipelineToInvoice(t *testing.T, env *testEnv) (clientID uint, invoiceID uint) {
	t.Helper()
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)
	po, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)
	_, err = env.orders.ReceivePurchaseOrder(ctx, salesActor(), po.ID)
	require.NoError(t, err)
	inv, err := env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{
		QuoteID: quoteID, Amount: decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	return clientID, inv.ID
}

func TestPayInvoiceCreatesExactlyOneDelivery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, invoiceID := runPipelineToInvoice(t, env)

	_, err := env.orders.PayInvoice(ctx, salesActor(), invoiceID)
	require.NoError(t, err)

	// A second payment fails on the guarded update and must not create a
	// second delivery row.
	_, err = env.orders.PayInvoice(ctx, salesActor(), invoiceID)
	assert.ErrorIs(t, err, service.ErrPrecondition)

	deliveries, err := env.deliveryRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}

func TestRefuseInvoiceTerminal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, invoiceID := runPipelineToInvoice(t, env)

	inv, err := env.orders.RefuseInvoice(ctx, salesActor(), invoiceID)
	require.NoError(t, err)
	assert.Equal(t, model.InvoiceRefused, inv.Status)

	// A refused invoice can no longer be paid, and no delivery appears.
	_, err = env.orders.PayInvoice(ctx, salesActor(), invoiceID)
	assert.ErrorIs(t, err, service.ErrPrecondition)

	deliveries, err := env.deliveryRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, deliveries)
}

func TestConfirmDeliveryOnlyOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	_, invoiceID := runPipelineToInvoice(t, env)
	_, err := env.orders.PayInvoice(ctx, salesActor(), invoiceID)
	require.NoError(t, err)

	d, err := env.deliveryRepo.FindByInvoiceID(ctx, invoiceID)
	require.NoError(t, err)

	_, err = env.orders.ConfirmDelivery(ctx, deliveryActor(), d.ID)
	require.NoError(t, err)
	_, err = env.orders.ConfirmDelivery(ctx, deliveryActor(), d.ID)
	assert.ErrorIs(t, err, service.ErrPrecondition)

	// Sales cannot confirm deliveries.
	_, err = env.orders.ConfirmDelivery(ctx, salesActor(), d.ID)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestDeleteQuoteBlockedByPurchaseOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	_, err := env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)
	_, err = env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)

	err = env.orders.DeleteQuote(ctx, salesActor(), quoteID)
	assert.ErrorIs(t, err, service.ErrPrecondition)
}

func TestDeleteReferencedCatalogEntriesBlocked(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	seedQuote(t, env, clientID, productID)

	err := env.products.Delete(ctx, salesActor(), productID)
	assert.ErrorIs(t, err, service.ErrPrecondition)
	err = env.clients.Delete(ctx, salesActor(), clientID)
	assert.ErrorIs(t, err, service.ErrPrecondition)

	// Unreferenced entries delete fine.
	p, err := env.products.Create(ctx, salesActor(), dto.CreateProductRequest{
		Name: "Câble HDMI", Price: decimal.NewFromInt(9),
	})
	require.NoError(t, err)
	assert.NoError(t, env.products.Delete(ctx, salesActor(), p.ID))
}

func TestDanglingReferenceShowsPlaceholder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	// Simulate a historical dangling reference by removing the product row
	// directly, bypassing the service guard.
	require.NoError(t, env.db.Exec("DELETE FROM produits WHERE id = ?", productID).Error)

	q, err := env.orders.GetQuote(ctx, salesActor(), quoteID)
	require.NoError(t, err)
	assert.Equal(t, "(référence supprimée)", q.ProductName)
	assert.Equal(t, "Dupont SARL", q.ClientName)
}

func TestClientScopedListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)

	other, err := env.clients.Create(ctx, salesActor(), dto.CreateClientRequest{
		Name: "Martin SA", Email: "contact@martin.fr",
	})
	require.NoError(t, err)

	seedQuote(t, env, clientID, productID)
	_, err = env.orders.CreateQuote(ctx, salesActor(), dto.CreateQuoteRequest{
		ClientID: other.ID, ProductID: productID, Quantity: 1,
	})
	require.NoError(t, err)

	// Sales sees everything, each client only its own quotes.
	all, err := env.orders.ListQuotes(ctx, salesActor())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := env.orders.ListQuotes(ctx, clientActor(clientID))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, clientID, mine[0].ClientID)

	// A client cannot read another client's quote directly either.
	_, err = env.orders.GetQuote(ctx, clientActor(clientID), all[1].ID)
	assert.ErrorIs(t, err, service.ErrForbidden)
}

func TestEligibilityQueries(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	clientID, productID := seedCatalog(t, env)
	quoteID := seedQuote(t, env, clientID, productID)

	// Pending quote is not eligible for anything yet.
	eligible, err := env.orders.QuotesEligibleForOrder(ctx, clientActor(clientID))
	require.NoError(t, err)
	assert.Empty(t, eligible)

	_, err = env.orders.ConfirmQuote(ctx, clientActor(clientID), quoteID)
	require.NoError(t, err)

	eligible, err = env.orders.QuotesEligibleForOrder(ctx, clientActor(clientID))
	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, quoteID, eligible[0].ID)

	po, err := env.orders.CreatePurchaseOrder(ctx, clientActor(clientID), dto.CreatePurchaseOrderRequest{QuoteID: quoteID})
	require.NoError(t, err)

	// Ordered: no longer order-eligible, not yet invoice-eligible.
	eligible, err = env.orders.QuotesEligibleForOrder(ctx, clientActor(clientID))
	require.NoError(t, err)
	assert.Empty(t, eligible)
	eligible, err = env.orders.QuotesEligibleForInvoice(ctx, salesActor())
	require.NoError(t, err)
	assert.Empty(t, eligible)

	_, err = env.orders.ReceivePurchaseOrder(ctx, salesActor(), po.ID)
	require.NoError(t, err)

	eligible, err = env.orders.QuotesEligibleForInvoice(ctx, salesActor())
	require.NoError(t, err)
	require.Len(t, eligible, 1)

	inv, err := env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{
		QuoteID: quoteID, Amount: decimal.NewFromInt(747),
	})
	require.NoError(t, err)

	eligible, err = env.orders.QuotesEligibleForInvoice(ctx, salesActor())
	require.NoError(t, err)
	assert.Empty(t, eligible)

	invoices, err := env.orders.InvoicesEligibleForDelivery(ctx, salesActor())
	require.NoError(t, err)
	assert.Empty(t, invoices)

	_, err = env.orders.PayInvoice(ctx, salesActor(), inv.ID)
	require.NoError(t, err)

	invoices, err = env.orders.InvoicesEligibleForDelivery(ctx, salesActor())
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	d, err := env.deliveryRepo.FindByInvoiceID(ctx, inv.ID)
	require.NoError(t, err)
	_, err = env.orders.ConfirmDelivery(ctx, deliveryActor(), d.ID)
	require.NoError(t, err)

	invoices, err = env.orders.InvoicesEligibleForDelivery(ctx, salesActor())
	require.NoError(t, err)
	assert.Empty(t, invoices)
}

func TestNegativeAmountRejected(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.products.Create(ctx, salesActor(), dto.CreateProductRequest{
		Name: "Gratuit", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = env.orders.CreateInvoice(ctx, salesActor(), dto.CreateInvoiceRequest{
		QuoteID: 1, Amount: decimal.NewFromInt(-10),
	})
	assert.ErrorIs(t, err, service.ErrValidation)
}
