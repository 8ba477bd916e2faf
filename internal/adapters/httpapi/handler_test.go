package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"eventdesk/internal/application"
	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
)

type keyT struct{}

func (keyT) T(_, key string, _ map[string]any) string { return key }

func get[T any](args mock.Arguments, i int) T {
	v, _ := args.Get(i).(T)
	return v
}

type mockDetails struct{ mock.Mock }

func (m *mockDetails) Load(ctx context.Context, participantID, eventID int) (*entities.ParticipantDetails, error) {
	args := m.Called(ctx, participantID, eventID)
	return get[*entities.ParticipantDetails](args, 0), args.Error(1)
}

func (m *mockDetails) Invalidate(ctx context.Context, participantID, eventID int) error {
	return m.Called(ctx, participantID, eventID).Error(0)
}

type mockVouchers struct{ mock.Mock }

func (m *mockVouchers) Redeem(ctx context.Context, req input.RedeemRequest) (*input.VoucherOutcome, error) {
	args := m.Called(ctx, req)
	return get[*input.VoucherOutcome](args, 0), args.Error(1)
}

func (m *mockVouchers) Edit(ctx context.Context, req input.EditVoucherRequest) (*input.VoucherOutcome, error) {
	args := m.Called(ctx, req)
	return get[*input.VoucherOutcome](args, 0), args.Error(1)
}

func (m *mockVouchers) History(ctx context.Context, participantID, eventID int) ([]entities.VoucherMutation, error) {
	args := m.Called(ctx, participantID, eventID)
	return get[[]entities.VoucherMutation](args, 0), args.Error(1)
}

type mockAllocations struct{ mock.Mock }

func (m *mockAllocations) List(ctx context.Context, eventID int, q input.AllocationQuery) (*input.AllocationPage, error) {
	args := m.Called(ctx, eventID, q)
	return get[*input.AllocationPage](args, 0), args.Error(1)
}

func (m *mockAllocations) Export(ctx context.Context, eventID int, q input.AllocationQuery, w io.Writer) error {
	args := m.Called(ctx, eventID, q, w)
	if args.Error(0) == nil {
		_, _ = io.WriteString(w, "Guest Name\nAmina\n")
	}
	return args.Error(0)
}

func (m *mockAllocations) CheckIn(ctx context.Context, allocationID int) error {
	return m.Called(ctx, allocationID).Error(0)
}

func (m *mockAllocations) Delete(ctx context.Context, allocationID int) error {
	return m.Called(ctx, allocationID).Error(0)
}

func (m *mockAllocations) BulkCheckIn(ctx context.Context, eventID int, allocationIDs []int) (*input.BulkResult, error) {
	args := m.Called(ctx, eventID, allocationIDs)
	return get[*input.BulkResult](args, 0), args.Error(1)
}

func (m *mockAllocations) PendingCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockRegistration struct{ mock.Mock }

func (m *mockRegistration) PublicEvent(ctx context.Context, eventID int) (*entities.Event, error) {
	args := m.Called(ctx, eventID)
	return get[*entities.Event](args, 0), args.Error(1)
}

func (m *mockRegistration) Validate(w input.Wizard) []string {
	return get[[]string](m.Called(w), 0)
}

func (m *mockRegistration) Next(ctx context.Context, eventID int, w input.Wizard) (input.Wizard, error) {
	args := m.Called(ctx, eventID, w)
	return get[input.Wizard](args, 0), args.Error(1)
}

func (m *mockRegistration) Submit(ctx context.Context, eventID int, form entities.RegistrationForm) (input.Notice, error) {
	args := m.Called(ctx, eventID, form)
	return get[input.Notice](args, 0), args.Error(1)
}

type mockChat struct{ mock.Mock }

func (m *mockChat) Rooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.ChatRoom](args, 0), args.Error(1)
}

func (m *mockChat) FetchRoom(ctx context.Context, roomID int) (*input.RoomSnapshot, error) {
	args := m.Called(ctx, roomID)
	return get[*input.RoomSnapshot](args, 0), args.Error(1)
}

func (m *mockChat) SendRoomMessage(ctx context.Context, roomID int, text string, replyTo *int) (*entities.Message, error) {
	args := m.Called(ctx, roomID, text, replyTo)
	return get[*entities.Message](args, 0), args.Error(1)
}

func (m *mockChat) DirectThread(ctx context.Context, withUser string) ([]entities.Message, error) {
	args := m.Called(ctx, withUser)
	return get[[]entities.Message](args, 0), args.Error(1)
}

func (m *mockChat) SendDirectMessage(ctx context.Context, recipient, text string) (*entities.Message, error) {
	args := m.Called(ctx, recipient, text)
	return get[*entities.Message](args, 0), args.Error(1)
}

func (m *mockChat) Conversations(ctx context.Context) ([]entities.Conversation, error) {
	args := m.Called(ctx)
	return get[[]entities.Conversation](args, 0), args.Error(1)
}

type mockVendors struct{ mock.Mock }

func (m *mockVendors) Search(ctx context.Context, query string, page, pageSize int) (*input.VendorPage, error) {
	args := m.Called(ctx, query, page, pageSize)
	return get[*input.VendorPage](args, 0), args.Error(1)
}

func (m *mockVendors) Create(ctx context.Context, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	args := m.Called(ctx, v)
	return get[*entities.VendorAccommodation](args, 0), args.Error(1)
}

func (m *mockVendors) Update(ctx context.Context, id int, v entities.VendorAccommodation) (*entities.VendorAccommodation, error) {
	args := m.Called(ctx, id, v)
	return get[*entities.VendorAccommodation](args, 0), args.Error(1)
}

func (m *mockVendors) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockCertificates struct{ mock.Mock }

func (m *mockCertificates) Templates(ctx context.Context) ([]entities.CertificateTemplate, error) {
	args := m.Called(ctx)
	return get[[]entities.CertificateTemplate](args, 0), args.Error(1)
}

func (m *mockCertificates) List(ctx context.Context, eventID int) ([]entities.EventCertificate, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockCertificates) Create(ctx context.Context, eventID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	args := m.Called(ctx, eventID, c)
	return get[*entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockCertificates) Update(ctx context.Context, eventID, certificateID int, c entities.EventCertificate) (*entities.EventCertificate, error) {
	args := m.Called(ctx, eventID, certificateID, c)
	return get[*entities.EventCertificate](args, 0), args.Error(1)
}

func (m *mockCertificates) Delete(ctx context.Context, eventID, certificateID int) error {
	return m.Called(ctx, eventID, certificateID).Error(0)
}

func (m *mockCertificates) Badges(ctx context.Context, eventID int) ([]entities.EventBadge, error) {
	args := m.Called(ctx, eventID)
	return get[[]entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockCertificates) CreateBadge(ctx context.Context, eventID int, b entities.EventBadge) (*entities.EventBadge, error) {
	args := m.Called(ctx, eventID, b)
	return get[*entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockCertificates) UpdateBadge(ctx context.Context, eventID, badgeID int, b entities.EventBadge) (*entities.EventBadge, error) {
	args := m.Called(ctx, eventID, badgeID, b)
	return get[*entities.EventBadge](args, 0), args.Error(1)
}

func (m *mockCertificates) DeleteBadge(ctx context.Context, eventID, badgeID int) error {
	return m.Called(ctx, eventID, badgeID).Error(0)
}

type fixture struct {
	details      *mockDetails
	vouchers     *mockVouchers
	allocations  *mockAllocations
	registration *mockRegistration
	chat         *mockChat
	vendors      *mockVendors
	certificates *mockCertificates
	handler      http.Handler
}

func newFixture(checks map[string]HealthCheck) *fixture {
	f := &fixture{
		details:      &mockDetails{},
		vouchers:     &mockVouchers{},
		allocations:  &mockAllocations{},
		registration: &mockRegistration{},
		chat:         &mockChat{},
		vendors:      &mockVendors{},
		certificates: &mockCertificates{},
	}
	h := NewHandler(UseCases{
		Details:      f.details,
		Vouchers:     f.vouchers,
		Allocations:  f.allocations,
		Registration: f.registration,
		Chat:         f.chat,
		Vendors:      f.vendors,
		Certificates: f.certificates,
	}, keyT{}, "en", time.UTC)
	f.handler = NewServer(h, checks).Handler()
	return f
}

func (f *fixture) do(method, target string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Authorization", "Bearer tok-1")
	req.Header.Set(HeaderTenantID, "7")
	req.Header.Set(HeaderTenantSlug, "msf-oca")
	req.Header.Set(HeaderUserEmail, "desk@example.org")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func hasScope(want domain.Scope) any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		got := domain.ScopeFromContext(ctx)
		return got.Token == want.Token && got.TenantID == want.TenantID &&
			got.TenantSlug == want.TenantSlug && got.Actor == want.Actor && got.RequestID != ""
	})
}

func TestParticipantDetails_ScopeFromHeaders(t *testing.T) {
	f := newFixture(nil)
	f.details.On("Load", hasScope(domain.Scope{Token: "tok-1", TenantID: "7", TenantSlug: "msf-oca", Actor: "desk@example.org"}), 42, 3).
		Return(&entities.ParticipantDetails{Participant: &entities.Participant{ID: 42}, Failed: []string{"transport"}}, nil)

	rec := f.do(http.MethodGet, "/events/3/participants/42/details", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	body := decodeBody[entities.ParticipantDetails](t, rec)
	assert.Equal(t, 42, body.Participant.ID)
	assert.Equal(t, []string{"transport"}, body.Failed)
	f.details.AssertExpectations(t)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"participant not found", fmt.Errorf("x: %w", domain.ErrParticipantNotFound), http.StatusNotFound, "participant_not_found"},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"upstream", fmt.Errorf("dial: %w", domain.ErrUpstreamUnavailable), http.StatusBadGateway, "upstream_unavailable"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(nil)
			f.details.On("Load", mock.Anything, 42, 3).Return(nil, tt.err)

			rec := f.do(http.MethodGet, "/events/3/participants/42/details", nil)

			assert.Equal(t, tt.status, rec.Code)
			body := decodeBody[errorBody](t, rec)
			assert.Equal(t, tt.code, body.Error)
			assert.Equal(t, "notice.error.title", body.Title)
		})
	}
}

func TestInvalidPathParam(t *testing.T) {
	f := newFixture(nil)

	rec := f.do(http.MethodGet, "/events/abc/participants/42/details", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "validation", decodeBody[errorBody](t, rec).Error)
	f.details.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedeemVouchers_PathWinsOverBody(t *testing.T) {
	f := newFixture(nil)
	f.vouchers.On("Redeem", mock.Anything, input.RedeemRequest{ParticipantID: 42, EventID: 3, Quantity: 2}).
		Return(&input.VoucherOutcome{Action: domain.VoucherActionRedeem, Delta: -2, Quantity: 2}, nil)

	rec := f.do(http.MethodPost, "/events/3/participants/42/vouchers/redeem",
		map[string]any{"participant_id": 99, "event_id": 99, "quantity": 2})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, -2, decodeBody[input.VoucherOutcome](t, rec).Delta)
}

func TestListAllocations_QueryParsing(t *testing.T) {
	f := newFixture(nil)
	want := input.AllocationQuery{
		Filter:   input.AllocationFilter{Search: "amina", Status: "booked", Gender: "all"},
		Sort:     input.SortState{Column: "guest_name", Direction: input.SortDesc},
		Page:     2,
		PageSize: 25,
	}
	f.allocations.On("List", mock.Anything, 3, want).Return(&input.AllocationPage{Page: 2}, nil)

	rec := f.do(http.MethodGet, "/events/3/allocations?search=amina&status=booked&gender=all&sort=guest_name&dir=desc&page=2&page_size=25", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	f.allocations.AssertExpectations(t)
}

func TestExportAllocations(t *testing.T) {
	f := newFixture(nil)
	f.allocations.On("Export", mock.Anything, 3, mock.Anything, mock.Anything).Return(nil)

	rec := f.do(http.MethodGet, "/events/3/allocations/export", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="`+application.ExportFilename(time.UTC)+`"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "Guest Name\nAmina\n", rec.Body.String())
}

func TestBulkCheckIn(t *testing.T) {
	f := newFixture(nil)
	f.allocations.On("BulkCheckIn", mock.Anything, 3, []int{1, 2}).
		Return(&input.BulkResult{Requested: 2, Eligible: 2, Succeeded: 1, Failed: []int{2}}, nil)

	rec := f.do(http.MethodPost, "/events/3/allocations/bulk-check-in", map[string]any{"allocation_ids": []int{1, 2}})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2}, decodeBody[input.BulkResult](t, rec).Failed)
}

func TestCheckInAndPending(t *testing.T) {
	f := newFixture(nil)
	f.allocations.On("CheckIn", mock.Anything, 12).Return(nil)
	f.allocations.On("PendingCount", mock.Anything).Return(4, nil)

	assert.Equal(t, http.StatusNoContent, f.do(http.MethodPost, "/allocations/12/check-in", nil).Code)

	rec := f.do(http.MethodGet, "/allocations/pending", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"count": 4}, decodeBody[map[string]int](t, rec))
}

func TestSubmitRegistration_MealNotice(t *testing.T) {
	f := newFixture(nil)
	notice := input.Notice{Title: "Missing Information", Description: "Please select at least one meal option", Variant: input.VariantDestructive}
	stepErr := &application.StepError{Step: input.StepTravel, Missing: []string{application.FieldDailyMeals}}
	f.registration.On("Submit", mock.Anything, 3, mock.Anything).Return(notice, stepErr)

	rec := f.do(http.MethodPost, "/public/events/3/registration/submit", entities.RegistrationForm{FirstName: "Amina"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, "meal_selection_required", body["error"])
	assert.Equal(t, "Please select at least one meal option", body["notice"].(map[string]any)["description"])
	assert.Equal(t, []any{"dailyMeals"}, body["missing"])
}

func TestNextRegistrationStep(t *testing.T) {
	f := newFixture(nil)
	in := input.Wizard{Step: input.StepContact, Form: entities.RegistrationForm{PersonalEmail: "a@example.org"}}
	f.registration.On("Next", mock.Anything, 3, in).
		Return(in, &application.RegistrationBlockedError{Message: "You are already registered"})

	rec := f.do(http.MethodPost, "/public/events/3/registration/next", in)

	require.Equal(t, http.StatusConflict, rec.Code)
	body := decodeBody[errorBody](t, rec)
	assert.Equal(t, "already_registered", body.Error)
	assert.Equal(t, "You are already registered", body.Description)
}

func TestValidateRegistrationStep(t *testing.T) {
	f := newFixture(nil)
	f.registration.On("Validate", mock.Anything).Return(nil)

	rec := f.do(http.MethodPost, "/public/events/3/registration/validate", input.Wizard{Step: input.StepPersonal})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `{"valid":true,"missing":[]}`, strings.TrimSpace(rec.Body.String()))
}

func TestChat(t *testing.T) {
	t.Run("read-only room", func(t *testing.T) {
		f := newFixture(nil)
		f.chat.On("SendRoomMessage", mock.Anything, 5, "hello", (*int)(nil)).Return(nil, domain.ErrChatReadOnly)

		rec := f.do(http.MethodPost, "/chat/rooms/5/messages", map[string]any{"message": "hello"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "chat_read_only", decodeBody[errorBody](t, rec).Error)
	})

	t.Run("poll carries sequence", func(t *testing.T) {
		f := newFixture(nil)
		f.chat.On("FetchRoom", mock.Anything, 5).Return(&input.RoomSnapshot{Seq: 9, RoomID: 5}, nil)

		rec := f.do(http.MethodGet, "/chat/rooms/5/messages", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(9), decodeBody[input.RoomSnapshot](t, rec).Seq)
	})

	t.Run("rooms require event id", func(t *testing.T) {
		f := newFixture(nil)
		rec := f.do(http.MethodGet, "/chat/rooms", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("direct thread", func(t *testing.T) {
		f := newFixture(nil)
		f.chat.On("DirectThread", mock.Anything, "peer@example.org").Return([]entities.Message{{ID: 1}}, nil)

		rec := f.do(http.MethodGet, "/chat/direct/peer@example.org", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeBody[[]entities.Message](t, rec), 1)
	})
}

func TestSearchVendorHotels(t *testing.T) {
	f := newFixture(nil)
	f.vendors.On("Search", mock.Anything, "nairobi", 2, 5).Return(&input.VendorPage{Page: 2, PageSize: 5}, nil)

	rec := f.do(http.MethodGet, "/setups/vendor-hotels?q=nairobi&page=2&page_size=5", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	f.vendors.AssertExpectations(t)
}

func TestCreateEventBadge_TemplateIDAsString(t *testing.T) {
	f := newFixture(nil)
	f.certificates.On("CreateBadge", mock.Anything, 3, mock.MatchedBy(func(b entities.EventBadge) bool {
		return b.BadgeTemplateID.Int() == 4 && b.TemplateVariables["role"] == "Facilitator"
	})).Return(&entities.EventBadge{ID: 9, BadgeTemplateID: 4}, nil)

	rec := f.do(http.MethodPost, "/events/3/badges", map[string]any{
		"badge_template_id":  "4",
		"template_variables": map[string]string{"role": "Facilitator"},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	assert.Equal(t, float64(4), body["badge_template_id"])
	f.certificates.AssertExpectations(t)
}

func TestCreateCertificate_TemplateIDAsString(t *testing.T) {
	f := newFixture(nil)
	f.certificates.On("Create", mock.Anything, 3, mock.MatchedBy(func(c entities.EventCertificate) bool {
		return c.CertificateTemplateID.Int() == 2
	})).Return(&entities.EventCertificate{ID: 8}, nil)

	rec := f.do(http.MethodPost, "/events/3/certificates", map[string]any{"certificate_template_id": "2"})

	require.Equal(t, http.StatusCreated, rec.Code)
	f.certificates.AssertExpectations(t)
}

func TestHealthz(t *testing.T) {
	f := newFixture(map[string]HealthCheck{
		"redis":    func(context.Context) error { return nil },
		"postgres": func(context.Context) error { return errors.New("connection refused") },
	})

	rec := f.do(http.MethodGet, "/healthz", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody[map[string]any](t, rec)
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "ok", checks["redis"])
	assert.Equal(t, "connection refused", checks["postgres"])
}

func TestMetricsEndpoint(t *testing.T) {
	f := newFixture(nil)
	rec := f.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("bearer  abc"))
	assert.Empty(t, bearerToken("Basic abc"))
	assert.Empty(t, bearerToken(""))
}
