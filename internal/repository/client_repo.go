package repository

import (
	"context"

	"github.com/amalfamous/QuickCRM/internal/model"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(ctx context.Context, tx *gorm.DB, c *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	Update(ctx context.Context, c *model.Client) error
	Delete(ctx context.Context, id uint) error
}

type clientRepo struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) ClientRepository { return &clientRepo{db: db} }

func (r *clientRepo) Create(ctx context.Context, tx *gorm.DB, c *model.Client) error {
	if tx == nil {
		tx = r.db
	}
	return tx.WithContext(ctx).Create(c).Error
}

func (r *clientRepo) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clientRepo) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	var c model.Client
	err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&c).Error
	return &c, err
}

func (r *clientRepo) List(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	err := r.db.WithContext(ctx).Order("id").Find(&clients).Error
	return clients, err
}

func (r *clientRepo) Update(ctx context.Context, c *model.Client) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clientRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Client{}, id).Error
}
