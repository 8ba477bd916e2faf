package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/domain/entities"
)

func escape(s string) string {
	return url.PathEscape(s)
}

func (c *Client) ListBadgeTemplates(ctx context.Context, tenantSlug string) ([]entities.BadgeTemplate, error) {
	var out []entities.BadgeTemplate
	if err := c.get(ctx, at("/tenants/%s/badge-templates", escape(tenantSlug)), &out); err != nil {
		return nil, fmt.Errorf("list badge templates: %w", err)
	}
	return out, nil
}

func (c *Client) CreateBadgeTemplate(ctx context.Context, tenantSlug string, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	var out entities.BadgeTemplate
	if err := c.post(ctx, at("/tenants/%s/badge-templates", escape(tenantSlug)), t, &out); err != nil {
		return nil, fmt.Errorf("create badge template: %w", err)
	}
	return &out, nil
}

func (c *Client) UpdateBadgeTemplate(ctx context.Context, tenantSlug string, id int, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	var out entities.BadgeTemplate
	if err := c.put(ctx, at("/tenants/%s/badge-templates/%d", escape(tenantSlug), id), t, &out); err != nil {
		return nil, fmt.Errorf("update badge template %d: %w", id, err)
	}
	return &out, nil
}

func (c *Client) DeleteBadgeTemplate(ctx context.Context, tenantSlug string, id int) error {
	if err := c.delete(ctx, at("/tenants/%s/badge-templates/%d", escape(tenantSlug), id)); err != nil {
		return fmt.Errorf("delete badge template %d: %w", id, err)
	}
	return nil
}

func (c *Client) ListCertificateTemplates(ctx context.Context) ([]entities.CertificateTemplate, error) {
	var out []entities.CertificateTemplate
	if err := c.get(ctx, at("/certificate-templates"), &out); err != nil {
		return nil, fmt.Errorf("list certificate templates: %w", err)
	}
	return out, nil
}

func (c *Client) ListEventCertificates(ctx context.Context, eventID int) ([]entities.EventCertificate, error) {
	var out []entities.EventCertificate
	if err := c.get(ctx, at("/events/%d/certificates", eventID), &out); err != nil {
		return nil, fmt.Errorf("list certificates for event %d: %w", eventID, err)
	}
	return out, nil
}

func (c *Client) CreateEventCertificate(ctx context.Context, eventID int, cert entities.EventCertificate) (*entities.EventCertificate, error) {
	var out entities.EventCertificate
	if err := c.post(ctx, at("/events/%d/certificates", eventID), cert, &out); err != nil {
		return nil, fmt.Errorf("create certificate for event %d: %w", eventID, err)
	}
	return &out, nil
}

func (c *Client) UpdateEventCertificate(ctx context.Context, eventID, certificateID int, cert entities.EventCertificate) (*entities.EventCertificate, error) {
	var out entities.EventCertificate
	if err := c.put(ctx, at("/events/%d/certificates/%d", eventID, certificateID), cert, &out); err != nil {
		return nil, fmt.Errorf("update certificate %d: %w", certificateID, err)
	}
	return &out, nil
}

func (c *Client) DeleteEventCertificate(ctx context.Context, eventID, certificateID int) error {
	if err := c.delete(ctx, at("/events/%d/certificates/%d", eventID, certificateID)); err != nil {
		return fmt.Errorf("delete certificate %d: %w", certificateID, err)
	}
	return nil
}

func (c *Client) ListEventBadges(ctx context.Context, eventID int) ([]entities.EventBadge, error) {
	var out []entities.EventBadge
	if err := c.get(ctx, at("/events/%d/badges", eventID), &out); err != nil {
		return nil, fmt.Errorf("list badges for event %d: %w", eventID, err)
	}
	return out, nil
}

func (c *Client) CreateEventBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error) {
	var out entities.EventBadge
	if err := c.post(ctx, at("/events/%d/badges", eventID), b, &out); err != nil {
		return nil, fmt.Errorf("create badge for event %d: %w", eventID, err)
	}
	return &out, nil
}

func (c *Client) UpdateEventBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error) {
	var out entities.EventBadge
	if err := c.put(ctx, at("/events/%d/badges/%d", eventID, badgeID), b, &out); err != nil {
		return nil, fmt.Errorf("update badge %d: %w", badgeID, err)
	}
	return &out, nil
}

func (c *Client) DeleteEventBadge(ctx context.Context, eventID, badgeID int) error {
	if err := c.delete(ctx, at("/events/%d/badges/%d", eventID, badgeID)); err != nil {
		return fmt.Errorf("delete badge %d: %w", badgeID, err)
	}
	return nil
}

func (c *Client) GetTenantBySlug(ctx context.Context, slug string) (*entities.Tenant, error) {
	var out entities.Tenant
	if err := c.get(ctx, at("/tenants/slug/%s", escape(slug)), &out); err != nil {
		return nil, fmt.Errorf("get tenant %q: %w", slug, err)
	}
	return &out, nil
}

func (c *Client) ListTravelRequirements(ctx context.Context, tenantID string) ([]entities.TravelRequirement, error) {
	var out []entities.TravelRequirement
	if err := c.get(ctx, at("/country-travel-requirements/tenant/%s", escape(tenantID)), &out); err != nil {
		return nil, fmt.Errorf("list travel requirements: %w", err)
	}
	return out, nil
}

func (c *Client) CreateTravelRequirement(ctx context.Context, tenantID string, r entities.TravelRequirement) (*entities.TravelRequirement, error) {
	var out entities.TravelRequirement
	if err := c.post(ctx, at("/country-travel-requirements/tenant/%s", escape(tenantID)), r, &out); err != nil {
		return nil, fmt.Errorf("create travel requirement for %s: %w", r.Country, err)
	}
	return &out, nil
}

func (c *Client) UpdateTravelRequirement(ctx context.Context, tenantID, country string, r entities.TravelRequirement) (*entities.TravelRequirement, error) {
	var out entities.TravelRequirement
	if err := c.put(ctx, at("/country-travel-requirements/tenant/%s/country/%s", escape(tenantID), escape(country)), r, &out); err != nil {
		return nil, fmt.Errorf("update travel requirement for %s: %w", country, err)
	}
	return &out, nil
}
