package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/amalfamous/QuickCRM/internal/dto"
	"github.com/amalfamous/QuickCRM/internal/model"
	"github.com/amalfamous/QuickCRM/internal/repository"

	"gorm.io/gorm"
)

type ProductService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateProductRequest) (*dto.ProductResponse, error)
	Get(ctx context.Context, id uint) (*dto.ProductResponse, error)
	List(ctx context.Context) ([]dto.ProductResponse, error)
	Update(ctx context.Context, actor Actor, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type productService struct {
	repo      repository.ProductRepository
	quoteRepo repository.QuoteRepository
}

func NewProductService(repo repository.ProductRepository, quoteRepo repository.QuoteRepository) ProductService {
	return &productService{repo: repo, quoteRepo: quoteRepo}
}

func (s *productService) Create(ctx context.Context, actor Actor, req dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := Authorize(actor, CapManageProducts); err != nil {
		return nil, err
	}
	if req.Price.IsNegative() {
		return nil, fmt.Errorf("%w: prix négatif", ErrValidation)
	}
	p := &model.Product{Name: req.Name, Price: req.Price}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

func (s *productService) Get(ctx context.Context, id uint) (*dto.ProductResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produit %d", ErrNotFound, id)
	}
	return productToResponse(p), nil
}

func (s *productService) List(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ProductResponse, len(products))
	for i, p := range products {
		resp[i] = *productToResponse(&p)
	}
	return resp, nil
}

func (s *productService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := Authorize(actor, CapManageProducts); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: produit %d", ErrNotFound, id)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, fmt.Errorf("%w: prix négatif", ErrValidation)
		}
		p.Price = *req.Price
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return productToResponse(p), nil
}

// Delete refuses to remove a product still referenced by a quote, so the
// pipeline never gains new dangling references.
func (s *productService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := Authorize(actor, CapManageProducts); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: produit %d", ErrNotFound, id)
	} else if err != nil {
		return err
	}
	n, err := s.quoteRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: produit %d référencé par %d devis", ErrPrecondition, id, n)
	}
	return s.repo.Delete(ctx, id)
}

func productToResponse(p *model.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price}
}
