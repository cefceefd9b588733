package repository

import (
	"context"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/gorm"
)

type InvoiceRepository interface {
	Create(ctx context.Context, inv *model.Invoice) error
	FindByID(ctx context.Context, id uint) (*model.Invoice, error)
	FindByQuoteID(ctx context.Context, quoteID uint) (*model.Invoice, error)
	List(ctx context.Context) ([]model.Invoice, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.Invoice, error)
	UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error)
	// UpdateStatusGuardedTx is the in-transaction variant used by the
	// pay → create-delivery atomic pair.
	UpdateStatusGuardedTx(ctx context.Context, tx *gorm.DB, id uint, from, to string) (int64, error)
	EligibleForDelivery(ctx context.Context) ([]model.Invoice, error)
	DB() *gorm.DB
}

type invoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepository(db *gorm.DB) InvoiceRepository { return &invoiceRepo{db: db} }

func (r *invoiceRepo) DB() *gorm.DB { return r.db }

func (r *invoiceRepo) Create(ctx context.Context, inv *model.Invoice) error {
	return r.db.WithContext(ctx).Create(inv).Error
}

func (r *invoiceRepo) FindByID(ctx context.Context, id uint) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).First(&inv, id).Error
	return &inv, err
}

func (r *invoiceRepo) FindByQuoteID(ctx context.Context, quoteID uint) (*model.Invoice, error) {
	var inv model.Invoice
	err := r.db.WithContext(ctx).Where("devis_id = ?", quoteID).First(&inv).Error
	return &inv, err
}

func (r *invoiceRepo) List(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).Order("id").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) ListByClient(ctx context.Context, clientID uint) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("devis_id IN (SELECT id FROM devis WHERE client_id = ?)", clientID).
		Order("id").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepo) UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error) {
	return r.UpdateStatusGuardedTx(ctx, r.db, id, from, to)
}

func (r *invoiceRepo) UpdateStatusGuardedTx(ctx context.Context, tx *gorm.DB, id uint, from, to string) (int64, error) {
	res := tx.WithContext(ctx).Model(&model.Invoice{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	return res.RowsAffected, res.Error
}

// EligibleForDelivery returns paid invoices whose delivery has not been
// confirmed yet.
func (r *invoiceRepo) EligibleForDelivery(ctx context.Context) ([]model.Invoice, error) {
	var invoices []model.Invoice
	err := r.db.WithContext(ctx).
		Where("statut = ?", model.InvoicePaid).
		Where("id NOT IN (SELECT facture_id FROM livraisons WHERE statut = ?)", model.DeliveryDelivered).
		Order("id").Find(&invoices).Error
	return invoices, err
}
