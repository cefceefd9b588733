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

type ClientService interface {
	Create(ctx context.Context, actor Actor, req dto.CreateClientRequest) (*dto.ClientResponse, error)
	Get(ctx context.Context, id uint) (*dto.ClientResponse, error)
	List(ctx context.Context) ([]dto.ClientResponse, error)
	Update(ctx context.Context, actor Actor, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error)
	Delete(ctx context.Context, actor Actor, id uint) error
}

type clientService struct {
	repo      repository.ClientRepository
	quoteRepo repository.QuoteRepository
}

func NewClientService(repo repository.ClientRepository, quoteRepo repository.QuoteRepository) ClientService {
	return &clientService{repo: repo, quoteRepo: quoteRepo}
}

func (s *clientService) Create(ctx context.Context, actor Actor, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := Authorize(actor, CapManageClients); err != nil {
		return nil, err
	}
	c := &model.Client{Name: req.Name, Email: req.Email}
	if err := s.repo.Create(ctx, nil, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

func (s *clientService) Get(ctx context.Context, id uint) (*dto.ClientResponse, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	return clientToResponse(c), nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientResponse, error) {
	clients, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.ClientResponse, len(clients))
	for i, c := range clients {
		resp[i] = *clientToResponse(&c)
	}
	return resp, nil
}

func (s *clientService) Update(ctx context.Context, actor Actor, id uint, req dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	if err := Authorize(actor, CapManageClients); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: client %d", ErrNotFound, id)
	}
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return clientToResponse(c), nil
}

// Delete refuses to remove a client still referenced by a quote.
func (s *clientService) Delete(ctx context.Context, actor Actor, id uint) error {
	if err := Authorize(actor, CapManageClients); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: client %d", ErrNotFound, id)
	} else if err != nil {
		return err
	}
	n, err := s.quoteRepo.CountByClient(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("%w: client %d référencé par %d devis", ErrPrecondition, id, n)
	}
	return s.repo.Delete(ctx, id)
}

func clientToResponse(c *model.Client) *dto.ClientResponse {
	return &dto.ClientResponse{ID: c.ID, Name: c.Name, Email: c.Email}
}
