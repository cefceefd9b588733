package repository

import (
	"context"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/gorm"
)

type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	FindByQuoteID(ctx context.Context, quoteID uint) (*model.PurchaseOrder, error)
	List(ctx context.Context) ([]model.PurchaseOrder, error)
	ListByClient(ctx context.Context, clientID uint) ([]model.PurchaseOrder, error)
	UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error)
}

type purchaseOrderRepo struct{ db *gorm.DB }

func NewPurchaseOrderRepository(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepo) FindByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).First(&po, id).Error
	return &po, err
}

func (r *purchaseOrderRepo) FindByQuoteID(ctx context.Context, quoteID uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).Where("devis_id = ?", quoteID).First(&po).Error
	return &po, err
}

func (r *purchaseOrderRepo) List(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).Order("id").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) ListByClient(ctx context.Context, clientID uint) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).
		Where("devis_id IN (SELECT id FROM devis WHERE client_id = ?)", clientID).
		Order("id").Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepo) UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	return res.RowsAffected, res.Error
}
