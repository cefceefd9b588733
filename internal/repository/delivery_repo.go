package repository

import (
	"context"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/gorm"
)

type DeliveryRepository interface {
	CreateTx(ctx context.Context, tx *gorm.DB, d *model.Delivery) error
	FindByID(ctx context.Context, id uint) (*model.Delivery, error)
	FindByInvoiceID(ctx context.Context, invoiceID uint) (*model.Delivery, error)
	List(ctx context.Context) ([]model.Delivery, error)
	UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error)
}

type deliveryRepo struct{ db *gorm.DB }

func NewDeliveryRepository(db *gorm.DB) DeliveryRepository { return &deliveryRepo{db: db} }

func (r *deliveryRepo) CreateTx(ctx context.Context, tx *gorm.DB, d *model.Delivery) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(d).Error
}

func (r *deliveryRepo) FindByID(ctx context.Context, id uint) (*model.Delivery, error) {
	var d model.Delivery
	err := r.db.WithContext(ctx).First(&d, id).Error
	return &d, err
}

func (r *deliveryRepo) FindByInvoiceID(ctx context.Context, invoiceID uint) (*model.Delivery, error) {
	var d model.Delivery
	err := r.db.WithContext(ctx).Where("facture_id = ?", invoiceID).First(&d).Error
	return &d, err
}

func (r *deliveryRepo) List(ctx context.Context) ([]model.Delivery, error) {
	var deliveries []model.Delivery
	err := r.db.WithContext(ctx).Order("id").Find(&deliveries).Error
	return deliveries, err
}

func (r *deliveryRepo) UpdateStatusGuarded(ctx context.Context, id uint, from, to string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Delivery{}).
		Where("id = ? AND statut = ?", id, from).
		Update("statut", to)
	return res.RowsAffected, res.Error
}
