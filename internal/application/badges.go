package application

import (
	"context"
	"fmt"
	"strings"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.BadgeTemplateUseCase = (*BadgeTemplateService)(nil)

// BadgeTemplateService manages the tenant's badge templates. The tenant is
// taken from the caller's scope slug.
type BadgeTemplateService struct {
	gateway output.BadgeTemplateGateway
}

func NewBadgeTemplateService(gateway output.BadgeTemplateGateway) *BadgeTemplateService {
	return &BadgeTemplateService{gateway: gateway}
}

func tenantSlug(ctx context.Context) (string, error) {
	slug := domain.ScopeFromContext(ctx).TenantSlug
	if slug == "" {
		return "", domain.ErrMissingTenant
	}
	return slug, nil
}

func validateBadgeTemplate(t entities.BadgeTemplate) error {
	if strings.TrimSpace(t.Name) == "" {
		return fmt.Errorf("badge template name is required: %w", domain.ErrValidation)
	}
	return nil
}

func (s *BadgeTemplateService) List(ctx context.Context) ([]entities.BadgeTemplate, error) {
	slug, err := tenantSlug(ctx)
	if err != nil {
		return nil, err
	}
	return s.gateway.ListBadgeTemplates(ctx, slug)
}

func (s *BadgeTemplateService) Create(ctx context.Context, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	slug, err := tenantSlug(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateBadgeTemplate(t); err != nil {
		return nil, err
	}
	return s.gateway.CreateBadgeTemplate(ctx, slug, t)
}

func (s *BadgeTemplateService) Update(ctx context.Context, id int, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	slug, err := tenantSlug(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateBadgeTemplate(t); err != nil {
		return nil, err
	}
	return s.gateway.UpdateBadgeTemplate(ctx, slug, id, t)
}

func (s *BadgeTemplateService) Delete(ctx context.Context, id int) error {
	slug, err := tenantSlug(ctx)
	if err != nil {
		return err
	}
	return s.gateway.DeleteBadgeTemplate(ctx, slug, id)
}
