package application

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
)

// get returns args.Get(i) as T, or the zero T when the expectation returned nil.
func get[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}

// mockBackend implements every backend gateway.
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) GetParticipant(ctx context.Context, participantID int) (*entities.Participant, error) {
	args := m.Called(ctx, participantID)
	return get[*entities.Participant](args, 0), args.Error(1)
}

func (m *mockBackend) GetEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.Event](args, 0), args.Error(1)
}

func (m *mockBackend) GetParticipantAccommodation(ctx context.Context, participantID int) ([]entities.AccommodationAllocation, error) {
	args := m.Called(ctx, participantID)
	return get[[]entities.AccommodationAllocation](args, 0), args.Error(1)
}

func (m *mockBackend) ListTransportBookings(ctx context.Context, participantID int) ([]entities.TransportBooking, error) {
	args := m.Called(ctx, participantID)
	return get[[]entities.TransportBooking](args, 0), args.Error(1)
}

func (m *mockBackend) ListFlightItineraries(ctx context.Context, participantID int) ([]entities.FlightItinerary, error) {
	args := m.Called(ctx, participantID)
	return get[[]entities.FlightItinerary](args, 0), args.Error(1)
}

func (m *mockBackend) GetChecklistProgress(ctx context.Context, participantID int) (*entities.ChecklistProgress, error) {
	args := m.Called(ctx, participantID)
	return get[*entities.ChecklistProgress](args, 0), args.Error(1)
}

func (m *mockBackend) ListParticipantAllocations(ctx context.Context, participantID, eventID int) ([]entities.VoucherAllocation, error) {
	args := m.Called(ctx, participantID, eventID)
	return get[[]entities.VoucherAllocation](args, 0), args.Error(1)
}

func (m *mockBackend) GetVoucherSummary(ctx context.Context, participantID int) (*entities.VoucherSummary, error) {
	args := m.Called(ctx, participantID)
	return get[*entities.VoucherSummary](args, 0), args.Error(1)
}

func (m *mockBackend) RedeemVoucher(ctx context.Context, allocationID, quantity int) error {
	return m.Called(ctx, allocationID, quantity).Error(0)
}

func (m *mockBackend) ReassignVoucher(ctx context.Context, allocationID, quantity int) error {
	return m.Called(ctx, allocationID, quantity).Error(0)
}

func (m *mockBackend) ListEventAllocations(ctx context.Context, eventID int) ([]entities.AccommodationAllocation, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.AccommodationAllocation](args, 0), args.Error(1)
}

func (m *mockBackend) CheckInAllocation(ctx context.Context, allocationID int) error {
	return m.Called(ctx, allocationID).Error(0)
}

func (m *mockBackend) DeleteAllocation(ctx context.Context, allocationID int) error {
	return m.Called(ctx, allocationID).Error(0)
}

func (m *mockBackend) CountPendingAllocations(ctx context.Context, tenantSlug string) (int, error) {
	args := m.Called(ctx, tenantSlug)
	return args.Int(0), args.Error(1)
}

func (m *mockBackend) ListVendorAccommodations(ctx context.Context) ([]entities.VendorAccommodation, error) {
	args := m.Called(ctx)
	return get[[]entities.VendorAccommodation](args, 0), args.Error(1)
}

func (m *mockBackend) CreateVendorAccommodation(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	args := m.Called(ctx, v)
	return get[*entities.VendorAccommodation](args, 0), args.Error(1)
}

func (m *mockBackend) UpdateVendorAccommodation(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	args := m.Called(ctx, id, v)
	return get[*entities.VendorAccommodation](args, 0), args.Error(1)
}

func (m *mockBackend) DeleteVendorAccommodation(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBackend) GetPublicEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.Event](args, 0), args.Error(1)
}

func (m *mockBackend) CheckEmailRegistration(ctx context.Context, email string, eventID int) (*entities.EmailCheckResult, error) {
	args := m.Called(ctx, email, eventID)
	return get[*entities.EmailCheckResult](args, 0), args.Error(1)
}

func (m *mockBackend) PublicRegister(ctx context.Context, eventID int, form entities.RegistrationForm) error {
	return m.Called(ctx, eventID, form).Error(0)
}

func (m *mockBackend) ListBadgeTemplates(ctx context.Context, tenantSlug string) ([]entities.BadgeTemplate, error) {
	args := m.Called(ctx, tenantSlug)
	return get[[]entities.BadgeTemplate](args, 0), args.Error(1)
}

func (m *mockBackend) CreateBadgeTemplate(ctx context.Context, tenantSlug string, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	args := m.Called(ctx, tenantSlug, t)
	return get[*entities.BadgeTemplate](args, 0), args.Error(1)
}

func (m *mockBackend) UpdateBadgeTemplate(ctx context.Context, tenantSlug string, id int, t entities.BadgeTemplate) (*entities.BadgeTemplate, error) {
	args := m.Called(ctx, tenantSlug, id, t)
	return get[*entities.BadgeTemplate](args, 0), args.Error(1)
}

func (m *mockBackend) DeleteBadgeTemplate(ctx context.Context, tenantSlug string, id int) error {
	return m.Called(ctx, tenantSlug, id).Error(0)
}

func (m *mockBackend) ListCertificateTemplates(ctx context.Context) ([]entities.CertificateTemplate, error) {
	args := m.Called(ctx)
	return get[[]entities.CertificateTemplate](args, 0), args.Error(1)
}

func (m *mockBackend) ListEventCertificates(ctx context.Context, eventID int) ([]entities.EventCertificate, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockBackend) CreateEventCertificate(ctx context.Context, eventID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	args := m.Called(ctx, eventID, c)
	return get[*entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockBackend) UpdateEventCertificate(ctx context.Context, eventID, certificateID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	args := m.Called(ctx, eventID, certificateID, c)
	return get[*entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockBackend) DeleteEventCertificate(ctx context.Context, eventID, certificateID int) error {
	return m.Called(ctx, eventID, certificateID).Error(0)
}

func (m *mockBackend) ListEventBadges(ctx context.Context, eventID int) ([]entities.EventBadge, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockBackend) CreateEventBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error) {
	args := m.Called(ctx, eventID, b)
	return get[*entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockBackend) UpdateEventBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error) {
	args := m.Called(ctx, eventID, badgeID, b)
	return get[*entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockBackend) DeleteEventBadge(ctx context.Context, eventID, badgeID int) error {
	return m.Called(ctx, eventID, badgeID).Error(0)
}

func (m *mockBackend) GetTenantBySlug(ctx context.Context, slug string) (*entities.Tenant, error) {
	args := m.Called(ctx, slug)
	return get[*entities.Tenant](args, 0), args.Error(1)
}

func (m *mockBackend) ListTravelRequirements(ctx context.Context, tenantID string) ([]entities.TravelRequirement, error) {
	args := m.Called(ctx, tenantID)
	return get[[]entities.TravelRequirement](args, 0), args.Error(1)
}

func (m *mockBackend) CreateTravelRequirement(ctx context.Context, tenantID string, r entities.TravelRequirement) (*entities.TravelRequirement, error) {
	args := m.Called(ctx, tenantID, r)
	return get[*entities.TravelRequirement](args, 0), args.Error(1)
}

func (m *mockBackend) UpdateTravelRequirement(ctx context.Context, tenantID, country string, r entities.TravelRequirement) (*entities.TravelRequirement, error) {
	args := m.Called(ctx, tenantID, country, r)
	return get[*entities.TravelRequirement](args, 0), args.Error(1)
}

func (m *mockBackend) ListRooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.ChatRoom](args, 0), args.Error(1)
}

func (m *mockBackend) ListRoomMessages(ctx context.Context, roomID int) ([]entities.Message, error) {
	args := m.Called(ctx, roomID)
	return get[[]entities.Message](args, 0), args.Error(1)
}

func (m *mockBackend) GetRoomStatus(ctx context.Context, roomID int) (*entities.RoomStatus, error) {
	args := m.Called(ctx, roomID)
	return get[*entities.RoomStatus](args, 0), args.Error(1)
}

func (m *mockBackend) SendRoomMessage(ctx context.Context, msg entities.NewRoomMessage) (*entities.Message, error) {
	args := m.Called(ctx, msg)
	return get[*entities.Message](args, 0), args.Error(1)
}

func (m *mockBackend) ListDirectMessages(ctx context.Context, withUser string) ([]entities.Message, error) {
	args := m.Called(ctx, withUser)
	return get[[]entities.Message](args, 0), args.Error(1)
}

func (m *mockBackend) SendDirectMessage(ctx context.Context, msg entities.NewDirectMessage) (*entities.Message, error) {
	args := m.Called(ctx, msg)
	return get[*entities.Message](args, 0), args.Error(1)
}

func (m *mockBackend) MarkDirectMessageRead(ctx context.Context, messageID int) error {
	return m.Called(ctx, messageID).Error(0)
}

func (m *mockBackend) ListConversations(ctx context.Context) ([]entities.Conversation, error) {
	args := m.Called(ctx)
	return get[[]entities.Conversation](args, 0), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, key string) (*entities.ParticipantDetails, bool, error) {
	args := m.Called(ctx, key)
	return get[*entities.ParticipantDetails](args, 0), args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, key string, d *entities.ParticipantDetails, ttl time.Duration) error {
	return m.Called(ctx, key, d, ttl).Error(0)
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Record(ctx context.Context, mut *entities.VoucherMutation) error {
	return m.Called(ctx, mut).Error(0)
}

func (m *mockLedger) ListByParticipant(ctx context.Context, tenantID string, participantID, eventID int) ([]entities.VoucherMutation, error) {
	args := m.Called(ctx, tenantID, participantID, eventID)
	return get[[]entities.VoucherMutation](args, 0), args.Error(1)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) Invalidate(ctx context.Context, participantID, eventID int) error {
	return m.Called(ctx, participantID, eventID).Error(0)
}

// keyTranslator renders a key followed by its sorted data, e.g.
// "notice.voucher.redeemed.description Quantity=2".
type keyTranslator struct{}

func (keyTranslator) T(_, key string, data map[string]any) string {
	if len(data) == 0 {
		return key
	}
	parts := make([]string, 0, len(data))
	for k, v := range data {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(parts)
	return key + " " + strings.Join(parts, " ")
}

type recordingMetrics struct {
	mu         sync.Mutex
	slotFailed []string
	cacheHits  int
	cacheMiss  int
	polls      map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{polls: map[string]int{}}
}

func (r *recordingMetrics) DetailsSlotFailed(slot string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slotFailed = append(r.slotFailed, slot)
}

func (r *recordingMetrics) DetailsCache(hit bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if hit {
		r.cacheHits++
	} else {
		r.cacheMiss++
	}
}

func (r *recordingMetrics) ChatPolled(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.polls[result]++
}

func (r *recordingMetrics) pollCount(result string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.polls[result]
}

func scopedCtx() context.Context {
	return domain.ContextWithScope(context.Background(), domain.Scope{
		Token:      "token",
		TenantID:   "7",
		TenantSlug: "msf-oca",
		Locale:     "en",
		RequestID:  "req-1",
		Actor:      "desk@example.org",
	})
}
