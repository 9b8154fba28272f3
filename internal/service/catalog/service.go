package catalog

import (
	"context"

	"pasteleria-mil-sabores/internal/domain"
)

// Service exposes read-only catalog lookups. The cart snapshots product data
// at add time; nothing reads live product data afterwards.
type Service struct {
	repo productRepo
}

type productRepo interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

func New(repo productRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}
