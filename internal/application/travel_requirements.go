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

var _ input.TravelRequirementUseCase = (*TravelRequirementService)(nil)

type TravelRequirementService struct {
	gateway output.TravelRequirementGateway
}

func NewTravelRequirementService(gateway output.TravelRequirementGateway) *TravelRequirementService {
	return &TravelRequirementService{gateway: gateway}
}

// tenantID resolves the numeric tenant id the requirements endpoints expect.
// The slug wins because X-Tenant-ID may carry the slug as well.
func (s *TravelRequirementService) tenantID(ctx context.Context) (string, error) {
	scope := domain.ScopeFromContext(ctx)
	if scope.TenantSlug != "" {
		t, err := s.gateway.GetTenantBySlug(ctx, scope.TenantSlug)
		if err != nil {
			return "", fmt.Errorf("resolve tenant: %w", err)
		}
		return t.ID.String(), nil
	}
	if scope.TenantID == "" {
		return "", domain.ErrMissingTenant
	}
	return scope.TenantID, nil
}

func (s *TravelRequirementService) List(ctx context.Context) ([]entities.TravelRequirement, error) {
	id, err := s.tenantID(ctx)
	if err != nil {
		return nil, err
	}
	return s.gateway.ListTravelRequirements(ctx, id)
}

// ApplyTravelRequirement overlays the non-nil fields of in onto base.
func ApplyTravelRequirement(base entities.TravelRequirement, in input.TravelRequirementInput) entities.TravelRequirement {
	if in.VisaRequired != nil {
		base.VisaRequired = *in.VisaRequired
	}
	if in.ETARequired != nil {
		base.ETARequired = *in.ETARequired
	}
	if in.PassportRequired != nil {
		base.PassportRequired = *in.PassportRequired
	}
	if in.FlightTicketRequired != nil {
		base.FlightTicketRequired = *in.FlightTicketRequired
	}
	if in.AdditionalRequirements != nil {
		base.AdditionalRequirements = in.AdditionalRequirements
	}
	if base.AdditionalRequirements == nil {
		base.AdditionalRequirements = []entities.AdditionalRequirement{}
	}
	return base
}

// Upsert updates the country's row when one exists and creates it from the
// defaults otherwise.
func (s *TravelRequirementService) Upsert(ctx context.Context, country string, in input.TravelRequirementInput) (*entities.TravelRequirement, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, fmt.Errorf("country is required: %w", domain.ErrValidation)
	}
	for _, r := range in.AdditionalRequirements {
		if strings.TrimSpace(r.Name) == "" {
			return nil, domain.ErrRequirementNameMissing
		}
	}

	id, err := s.tenantID(ctx)
	if err != nil {
		return nil, err
	}
	existing, err := s.gateway.ListTravelRequirements(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, r := range existing {
		if strings.EqualFold(r.Country, country) {
			updated := ApplyTravelRequirement(r, in)
			return s.gateway.UpdateTravelRequirement(ctx, id, r.Country, updated)
		}
	}
	created := ApplyTravelRequirement(entities.DefaultTravelRequirement(country), in)
	return s.gateway.CreateTravelRequirement(ctx, id, created)
}
