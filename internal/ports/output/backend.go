package output

import (
	"context"

	"eventdesk/internal/domain/entities"
)

// The gateways below are implemented by the backend REST client. Tenant and
// credentials travel in ctx (see domain.ContextWithScope).

type ParticipantGateway interface {
	GetParticipant(ctx context.Context, participantID int) (*entities.Participant, error)
	GetEvent(ctx context.Context, eventID int) (*entities.Event, error)
	GetParticipantAccommodation(ctx context.Context, participantID int) ([]entities.AccommodationAllocation, error)
	ListTransportBookings(ctx context.Context, participantID int) ([]entities.TransportBooking, error)
	ListFlightItineraries(ctx context.Context, participantID int) ([]entities.FlightItinerary, error)
	GetChecklistProgress(ctx context.Context, participantID int) (*entities.ChecklistProgress, error)
}

type VoucherGateway interface {
	ListParticipantAllocations(ctx context.Context, participantID, eventID int) ([]entities.VoucherAllocation, error)
	GetVoucherSummary(ctx context.Context, participantID int) (*entities.VoucherSummary, error)
	RedeemVoucher(ctx context.Context, allocationID, quantity int) error
	ReassignVoucher(ctx context.Context, allocationID, quantity int) error
}

type AccommodationGateway interface {
	ListEventAllocations(ctx context.Context, eventID int) ([]entities.AccommodationAllocation, error)
	CheckInAllocation(ctx context.Context, allocationID int) error
	DeleteAllocation(ctx context.Context, allocationID int) error
	CountPendingAllocations(ctx context.Context, tenantSlug string) (int, error)
}

type VendorGateway interface {
	ListVendorAccommodations(ctx context.Context) ([]entities.VendorAccommodation, error)
	CreateVendorAccommodation(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error)
	UpdateVendorAccommodation(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error)
	DeleteVendorAccommodation(ctx context.Context, id int) error
}

type RegistrationGateway interface {
	GetPublicEvent(ctx context.Context, eventID int) (*entities.Event, error)
	CheckEmailRegistration(ctx context.Context, email string, eventID int) (*entities.EmailCheckResult, error)
	PublicRegister(ctx context.Context, eventID int, form entities.RegistrationForm) error
}

type BadgeTemplateGateway interface {
	ListBadgeTemplates(ctx context.Context, tenantSlug string) ([]entities.BadgeTemplate, error)
	CreateBadgeTemplate(ctx context.Context, tenantSlug string, t entities.BadgeTemplate) (*entities.BadgeTemplate, error)
	UpdateBadgeTemplate(ctx context.Context, tenantSlug string, id int, t entities.BadgeTemplate) (*entities.BadgeTemplate, error)
	DeleteBadgeTemplate(ctx context.Context, tenantSlug string, id int) error
}

type CertificateGateway interface {
	ListCertificateTemplates(ctx context.Context) ([]entities.CertificateTemplate, error)
	ListEventCertificates(ctx context.Context, eventID int) ([]entities.EventCertificate, error)
	CreateEventCertificate(ctx context.Context, eventID int, c entities.EventCertificate) (*entities.EventCertificate, error)
	UpdateEventCertificate(ctx context.Context, eventID, certificateID int, c entities.EventCertificate) (*entities.EventCertificate, error)
	DeleteEventCertificate(ctx context.Context, eventID, certificateID int) error
	ListEventBadges(ctx context.Context, eventID int) ([]entities.EventBadge, error)
	CreateEventBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error)
	UpdateEventBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error)
	DeleteEventBadge(ctx context.Context, eventID, badgeID int) error
}

type TravelRequirementGateway interface {
	GetTenantBySlug(ctx context.Context, slug string) (*entities.Tenant, error)
	ListTravelRequirements(ctx context.Context, tenantID string) ([]entities.TravelRequirement, error)
	CreateTravelRequirement(ctx context.Context, tenantID string, r entities.TravelRequirement) (*entities.TravelRequirement, error)
	UpdateTravelRequirement(ctx context.Context, tenantID, country string, r entities.TravelRequirement) (*entities.TravelRequirement, error)
}

type ChatGateway interface {
	ListRooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error)
	ListRoomMessages(ctx context.Context, roomID int) ([]entities.Message, error)
	GetRoomStatus(ctx context.Context, roomID int) (*entities.RoomStatus, error)
	SendRoomMessage(ctx context.Context, m entities.NewRoomMessage) (*entities.Message, error)
	ListDirectMessages(ctx context.Context, withUser string) ([]entities.Message, error)
	SendDirectMessage(ctx context.Context, m entities.NewDirectMessage) (*entities.Message, error)
	MarkDirectMessageRead(ctx context.Context, messageID int) error
	ListConversations(ctx context.Context) ([]entities.Conversation, error)
}
