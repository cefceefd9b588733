package repository

import (
	"context"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/gorm"
)

type QuoteRepository interface {
	Create(ctx context.Context, q *model.Quote) error
	FindByID(ctx context.Context, id uint) (*model.Quote, error)
	List(ctx context.Context) ([]model.Quote, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.Quote, error)
	Update(ctx context.Context, q *model.Quote) error
	Delete(ctx context.Context, id uint) error
	// UpdateStatusGuarded flips statut only when the row still holds the
	// expected source status. The returned count is 0 when the guard failed.
	UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error)
	CountByClient(ctx context.Context, clientID uint) (int64, error)
	CountByProduct(ctx context.Context, productID uint) (int64, error)
	EligibleForOrder(ctx context.Context, clientID *uint) ([]model.Quote, error)
	EligibleForInvoice(ctx context.Context) ([]model.Quote, error)
	DB() *gorm.DB
}

type quoteRepo struct{ db *gorm.DB }

func NewQuoteRepository(db *gorm.DB) QuoteRepository { return &quoteRepo{db: db} }

func (r *quoteRepo) DB() *gorm.DB { return r.db }

func (r *quoteRepo) Create(ctx context.Context, q *model.Quote) error {
	return r.db.WithContext(ctx).Create(q).Error
}

func (r *quoteRepo) FindByID(ctx context.Context, id uint) (*model.Quote, error) {
	var q model.Quote
	err := r.db.WithContext(ctx).First(&q, id).Error
	return &q, err
}

func (r *quoteRepo) List(ctx context.Context) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).Order("id").Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) ListByClient(ctx context.Context, clientID uint) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).Where("client_id = ?", clientID).Order("id").Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepo) Update(ctx context.Context, q *model.Quote) error {
	return r.db.WithContext(ctx).Save(q).Error
}

func (r *quoteRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Quote{}, id).Error
}

func (r *quoteRepo) UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Quote{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	return res.RowsAffected, res.Error
}

func (r *quoteRepo) CountByClient(ctx context.Context, clientID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Quote{}).Where("client_id = ?", clientID).Count(&n).Error
	return n, err
}

func (r *quoteRepo) CountByProduct(ctx context.Context, productID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Quote{}).Where("produit_id = ?", productID).Count(&n).Error
	return n, err
}

// EligibleForOrder returns confirmed quotes with no purchase order yet,
// optionally restricted to one client (the caller's own id for client-role
// actors).
func (r *quoteRepo) EligibleForOrder(ctx context.Context, clientID *uint) ([]model.Quote, error) {
	q := r.db.WithContext(ctx).
		Where("statut = ?", model.QuoteConfirmed).
		Where("id NOT IN (SELECT devis_id FROM bon_commandes)")
	if clientID != nil {
		q = q.Where("client_id = ?", *clientID)
	}
	var quotes []model.Quote
	err := q.Order("id").Find(&quotes).Error
	return quotes, err
}

// EligibleForInvoice returns confirmed quotes whose purchase order has been
// received and which have not been invoiced yet.
func (r *quoteRepo) EligibleForInvoice(ctx context.Context) ([]model.Quote, error) {
	var quotes []model.Quote
	err := r.db.WithContext(ctx).
		Where("statut = ?", model.QuoteConfirmed).
		Where("id IN (SELECT devis_id FROM bon_commandes WHERE statut = ?)", model.OrderReceived).
		Where("id NOT IN (SELECT devis_id FROM factures)").
		Order("id").Find(&quotes).Error
	return quotes, err
}
