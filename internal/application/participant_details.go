package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.ParticipantDetailsUseCase = (*ParticipantDetailsService)(nil)

// Slot names reported in ParticipantDetails.Failed.
const (
	SlotParticipant    = "participant"
	SlotEvent          = "event"
	SlotVouchers       = "vouchers"
	SlotVoucherSummary = "voucher_summary"
	SlotAccommodation  = "accommodation"
	SlotTransport      = "transport"
	SlotFlights        = "flights"
	SlotChecklist      = "checklist"
)

type ParticipantDetailsService struct {
	participants output.ParticipantGateway
	vouchers     output.VoucherGateway
	cache        output.DetailsCache
	metrics      output.Metrics
	ttl          time.Duration
	now          func() time.Time
}

// NewParticipantDetailsService wires the aggregator. cache may be nil to
// disable snapshot caching.
func NewParticipantDetailsService(
	participants output.ParticipantGateway,
	vouchers output.VoucherGateway,
	cache output.DetailsCache,
	metrics output.Metrics,
	ttl time.Duration,
) *ParticipantDetailsService {
	return &ParticipantDetailsService{
		participants: participants,
		vouchers:     vouchers,
		cache:        cache,
		metrics:      metrics,
		ttl:          ttl,
		now:          time.Now,
	}
}

// DetailsKey is the cache key of one participant's panel within a tenant.
func DetailsKey(tenantID string, eventID, participantID int) string {
	return fmt.Sprintf("%s:%d:%d", tenantID, eventID, participantID)
}

// Load returns the participant's merged details. Every slot is fetched
// concurrently and degrades on its own; only a missing participant fails the
// whole call.
//
// A cached snapshot is shared by every caller of the tenant, so a hit is only
// served after the backend accepted the caller's own participant read.
func (s *ParticipantDetailsService) Load(ctx context.Context, participantID, eventID int) (*entities.ParticipantDetails, error) {
	scope := domain.ScopeFromContext(ctx)
	if scope.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	key := DetailsKey(scope.TenantID, eventID, participantID)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			slog.Warn("details cache read failed", "key", key, "error", err)
		case ok:
			p, err := s.participants.GetParticipant(ctx, participantID)
			if err != nil {
				return nil, participantError(participantID, err)
			}
			s.metrics.DetailsCache(true)
			cached.Participant = p
			cached.FromCache = true
			return cached, nil
		default:
			s.metrics.DetailsCache(false)
		}
	}

	d := &entities.ParticipantDetails{
		Vouchers:      []entities.VoucherAllocation{},
		Accommodation: []entities.AccommodationAllocation{},
		Transport:     []entities.TransportBooking{},
		Flights:       []entities.FlightItinerary{},
	}

	var (
		mu             sync.Mutex
		participantErr error
	)
	fail := func(slot string, err error) {
		mu.Lock()
		d.Failed = append(d.Failed, slot)
		mu.Unlock()
		s.metrics.DetailsSlotFailed(slot)
		slog.Warn("participant details slot failed",
			"slot", slot, "participant_id", participantID, "event_id", eventID, "error", err)
	}

	var g errgroup.Group
	g.Go(func() error {
		p, err := s.participants.GetParticipant(ctx, participantID)
		if err != nil {
			participantErr = err
			fail(SlotParticipant, err)
			return nil
		}
		d.Participant = p
		return nil
	})
	g.Go(func() error {
		e, err := s.participants.GetEvent(ctx, eventID)
		if err != nil {
			fail(SlotEvent, err)
			return nil
		}
		d.Event = e
		return nil
	})
	g.Go(func() error {
		v, err := s.vouchers.ListParticipantAllocations(ctx, participantID, eventID)
		if err != nil {
			fail(SlotVouchers, err)
			return nil
		}
		d.Vouchers = entities.DrinkVouchers(v)
		return nil
	})
	g.Go(func() error {
		v, err := s.vouchers.GetVoucherSummary(ctx, participantID)
		if err != nil {
			fail(SlotVoucherSummary, err)
			return nil
		}
		d.VoucherSummary = v
		return nil
	})
	g.Go(func() error {
		a, err := s.participants.GetParticipantAccommodation(ctx, participantID)
		if err != nil {
			fail(SlotAccommodation, err)
			return nil
		}
		if a != nil {
			d.Accommodation = a
		}
		return nil
	})
	g.Go(func() error {
		t, err := s.participants.ListTransportBookings(ctx, participantID)
		if err != nil {
			fail(SlotTransport, err)
			return nil
		}
		if t != nil {
			d.Transport = t
		}
		return nil
	})
	g.Go(func() error {
		f, err := s.participants.ListFlightItineraries(ctx, participantID)
		if err != nil {
			fail(SlotFlights, err)
			return nil
		}
		if f != nil {
			d.Flights = f
		}
		return nil
	})
	g.Go(func() error {
		c, err := s.participants.GetChecklistProgress(ctx, participantID)
		if err != nil {
			fail(SlotChecklist, err)
			return nil
		}
		d.Checklist = c
		return nil
	})
	_ = g.Wait()

	if errors.Is(participantErr, domain.ErrNotFound) {
		return nil, participantError(participantID, participantErr)
	}

	sort.Strings(d.Failed)
	d.FetchedAt = s.now()

	if s.cache != nil && len(d.Failed) == 0 {
		if err := s.cache.Set(ctx, key, d, s.ttl); err != nil {
			slog.Warn("details cache write failed", "key", key, "error", err)
		}
	}
	return d, nil
}

func participantError(participantID int, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("participant %d: %w", participantID, domain.ErrParticipantNotFound)
	}
	return fmt.Errorf("participant %d: %w", participantID, err)
}

// Invalidate drops the cached snapshot so the next Load refetches.
func (s *ParticipantDetailsService) Invalidate(ctx context.Context, participantID, eventID int) error {
	if s.cache == nil {
		return nil
	}
	key := DetailsKey(domain.ScopeFromContext(ctx).TenantID, eventID, participantID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return fmt.Errorf("invalidate details: %w", err)
	}
	return nil
}
