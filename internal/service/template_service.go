package service

import (
	"context"

	"github.com/draftmark/draftmark-backend/internal/domain"
	"github.com/draftmark/draftmark-backend/internal/repository"
)

// TemplateService handles template CRUD; a duplicate name is a conflict.
type TemplateService interface {
	Create(ctx context.Context, tmpl *domain.Template) (*domain.Template, error)
	Get(ctx context.Context, name string) (*domain.Template, error)
	List(ctx context.Context) ([]*domain.Template, error)
	Delete(ctx context.Context, name string) error
}

type templateService struct {
	templates repository.TemplateRepository
}

// NewTemplateService creates a new TemplateService
func NewTemplateService(templates repository.TemplateRepository) TemplateService {
	return &templateService{templates: templates}
}

func (s *templateService) Create(ctx context.Context, tmpl *domain.Template) (*domain.Template, error) {
	if err := s.templates.Create(ctx, tmpl); err != nil {
		return nil, err
	}
	return tmpl, nil
}

func (s *templateService) Get(ctx context.Context, name string) (*domain.Template, error) {
	return s.templates.FindByName(ctx, name)
}

func (s *templateService) List(ctx context.Context) ([]*domain.Template, error) {
	return s.templates.List(ctx)
}

func (s *templateService) Delete(ctx context.Context, name string) error {
	return s.templates.Delete(ctx, name)
}
