package application

import (
	"context"
	"fmt"
	"maps"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.CertificateUseCase = (*CertificateService)(nil)

type CertificateService struct {
	gateway output.CertificateGateway
	events  output.ParticipantGateway
}

func NewCertificateService(gateway output.CertificateGateway, events output.ParticipantGateway) *CertificateService {
	return &CertificateService{gateway: gateway, events: events}
}

// EventTemplateVariables are the placeholders filled from the event record.
// Dates are passed through as the backend sent them.
func EventTemplateVariables(e entities.Event) map[string]string {
	return map[string]string{
		"eventTitle":    e.Title,
		"eventLocation": e.Location,
		"startDate":     e.StartDate,
		"endDate":       e.EndDate,
	}
}

// fillVariables copies the user's variables and then sets the event
// placeholders, which always reflect the event record.
func (s *CertificateService) fillVariables(ctx context.Context, eventID int, vars map[string]string) (map[string]string, error) {
	event, err := s.events.GetEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %d for template variables: %w", eventID, err)
	}
	out := maps.Clone(vars)
	if out == nil {
		out = make(map[string]string, 4)
	}
	maps.Copy(out, EventTemplateVariables(*event))
	return out, nil
}

func (s *CertificateService) prepareCertificate(ctx context.Context, eventID int, c entities.EventCertificate) (entities.EventCertificate, error) {
	if c.CertificateTemplateID.Int() <= 0 {
		return c, fmt.Errorf("certificate template is required: %w", domain.ErrValidation)
	}
	vars, err := s.fillVariables(ctx, eventID, c.TemplateVariables)
	if err != nil {
		return c, err
	}
	c.TemplateVariables = vars
	c.EventID = eventID
	return c, nil
}

func (s *CertificateService) prepareBadge(ctx context.Context, eventID int, b entities.EventBadge) (entities.EventBadge, error) {
	if b.BadgeTemplateID.Int() <= 0 {
		return b, fmt.Errorf("badge template is required: %w", domain.ErrValidation)
	}
	vars, err := s.fillVariables(ctx, eventID, b.TemplateVariables)
	if err != nil {
		return b, err
	}
	b.TemplateVariables = vars
	b.EventID = eventID
	return b, nil
}

func (s *CertificateService) Templates(ctx context.Context) ([]entities.CertificateTemplate, error) {
	return s.gateway.ListCertificateTemplates(ctx)
}

func (s *CertificateService) List(ctx context.Context, eventID int) ([]entities.EventCertificate, error) {
	return s.gateway.ListEventCertificates(ctx, eventID)
}

func (s *CertificateService) Create(ctx context.Context, eventID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	filled, err := s.prepareCertificate(ctx, eventID, c)
	if err != nil {
		return nil, err
	}
	return s.gateway.CreateEventCertificate(ctx, eventID, filled)
}

func (s *CertificateService) Update(ctx context.Context, eventID, certificateID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	filled, err := s.prepareCertificate(ctx, eventID, c)
	if err != nil {
		return nil, err
	}
	return s.gateway.UpdateEventCertificate(ctx, eventID, certificateID, filled)
}

func (s *CertificateService) Delete(ctx context.Context, eventID, certificateID int) error {
	return s.gateway.DeleteEventCertificate(ctx, eventID, certificateID)
}

func (s *CertificateService) Badges(ctx context.Context, eventID int) ([]entities.EventBadge, error) {
	return s.gateway.ListEventBadges(ctx, eventID)
}

func (s *CertificateService) CreateBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error) {
	filled, err := s.prepareBadge(ctx, eventID, b)
	if err != nil {
		return nil, err
	}
	return s.gateway.CreateEventBadge(ctx, eventID, filled)
}

func (s *CertificateService) UpdateBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error) {
	filled, err := s.prepareBadge(ctx, eventID, b)
	if err != nil {
		return nil, err
	}
	return s.gateway.UpdateEventBadge(ctx, eventID, badgeID, filled)
}

func (s *CertificateService) DeleteBadge(ctx context.Context, eventID, badgeID int) error {
	return s.gateway.DeleteEventBadge(ctx, eventID, badgeID)
}
