package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
)

// SiteService handles site CRUD. Thin by design: the only rule is subdomain
// uniqueness, which the store enforces.
type SiteService interface {
	Create(ctx context.Context, req *domain.CreateSiteRequest) (*domain.Site, error)
	Get(ctx context.Context, id string) (*domain.Site, error)
	List(ctx context.Context) ([]*domain.Site, error)
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

type siteService struct {
	sites repository.SiteRepository
}

// NewSiteService creates a new SiteService
func NewSiteService(sites repository.SiteRepository) SiteService {
	return &siteService{sites: sites}
}

func (s *siteService) Create(ctx context.Context, req *domain.CreateSiteRequest) (*domain.Site, error) {
	site := &domain.Site{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Subdomain:  req.Subdomain,
		OwnerEmail: req.OwnerEmail,
		Active:     true,
	}
	if err := s.sites.Create(ctx, site); err != nil {
		return nil, err
	}
	return site, nil
}

func (s *siteService) Get(ctx context.Context, id string) (*domain.Site, error) {
	return s.sites.FindByID(ctx, id)
}

func (s *siteService) List(ctx context.Context) ([]*domain.Site, error) {
	return s.sites.List(ctx)
}

func (s *siteService) SetActive(ctx context.Context, id string, active bool) error {
	return s.sites.SetActive(ctx, id, active)
}

func (s *siteService) Delete(ctx context.Context, id string) error {
	return s.sites.Delete(ctx, id)
}
