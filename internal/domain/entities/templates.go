package entities

import "eventdesk/pkg/apijson"

type BadgeTemplate struct {
	ID              int    `json:"id,omitempty"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	TemplateContent string `json:"template_content,omitempty"`
	TemplateDesign  string `json:"template_design,omitempty"`
	LogoURL         string `json:"logo_url,omitempty"`
	BackgroundURL   string `json:"background_url,omitempty"`
	AvatarURL       string `json:"avatar_url,omitempty"`
	IsActive        bool   `json:"is_active"`
	BadgeSize       string `json:"badge_size,omitempty"`
	Orientation     string `json:"orientation,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	WebsiteURL      string `json:"website_url,omitempty"`
	QREnabled       bool   `json:"qr_enabled"`
}

type CertificateTemplate struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	TemplateContent string `json:"template_content,omitempty"`
}

// EventCertificate links a certificate template to an event.
type EventCertificate struct {
	ID                    int               `json:"id,omitempty"`
	EventID               int               `json:"event_id,omitempty"`
	CertificateTemplateID apijson.FlexInt   `json:"certificate_template_id"`
	TemplateVariables     map[string]string `json:"template_variables"`
	IsPublished           bool              `json:"is_published"`
	CreatedAt             string            `json:"created_at,omitempty"`
}

// EventBadge links a badge template to an event.
type EventBadge struct {
	ID                int               `json:"id,omitempty"`
	EventID           int               `json:"event_id,omitempty"`
	BadgeTemplateID   apijson.FlexInt   `json:"badge_template_id"`
	TemplateVariables map[string]string `json:"template_variables"`
	CreatedAt         string            `json:"created_at,omitempty"`
}
