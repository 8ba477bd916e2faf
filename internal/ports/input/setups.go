package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type BadgeTemplateUseCase interface {
	List(ctx context.Context) ([]entities.BadgeTemplate, error)
	Create(ctx context.Context, t entities.BadgeTemplate) (*entities.BadgeTemplate, error)
	Update(ctx context.Context, id int, t entities.BadgeTemplate) (*entities.BadgeTemplate, error)
	Delete(ctx context.Context, id int) error
}

type CertificateUseCase interface {
	Templates(ctx context.Context) ([]entities.CertificateTemplate, error)
	List(ctx context.Context, eventID int) ([]entities.EventCertificate, error)
	Create(ctx context.Context, eventID int, c entities.EventCertificate) (*entities.EventCertificate, error)
	Update(ctx context.Context, eventID, certificateID int, c entities.EventCertificate) (*entities.EventCertificate, error)
	Delete(ctx context.Context, eventID, certificateID int) error
	Badges(ctx context.Context, eventID int) ([]entities.EventBadge, error)
	CreateBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error)
	UpdateBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error)
	DeleteBadge(ctx context.Context, eventID, badgeID int) error
}

// TravelRequirementInput is a partial update; nil fields keep their current
// (or default) value.
type TravelRequirementInput struct {
	VisaRequired           *bool                            `json:"visa_required,omitempty"`
	ETARequired            *bool                            `json:"eta_required,omitempty"`
	PassportRequired       *bool                            `json:"passport_required,omitempty"`
	FlightTicketRequired   *bool                            `json:"flight_ticket_required,omitempty"`
	AdditionalRequirements []entities.AdditionalRequirement `json:"additional_requirements,omitempty"`
}

type TravelRequirementUseCase interface {
	List(ctx context.Context) ([]entities.TravelRequirement, error)
	Upsert(ctx context.Context, country string, in TravelRequirementInput) (*entities.TravelRequirement, error)
}

type VendorPage struct {
	Items      []entities.VendorAccommodation `json:"items"`
	Total      int                            `json:"total"`
	Page       int                            `json:"page"`
	PageSize   int                            `json:"page_size"`
	TotalPages int                            `json:"total_pages"`
}

type VendorHotelUseCase interface {
	Search(ctx context.Context, query string, page, pageSize int) (*VendorPage, error)
	Create(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error)
	Update(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error)
	Delete(ctx context.Context, id int) error
}
