package application

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.ChatUseCase = (*ChatService)(nil)

// Poll results reported to metrics.
const (
	PollOK      = "ok"
	PollError   = "error"
	PollStale   = "stale"
	PollSkipped = "skipped"
)

type ChatService struct {
	gateway output.ChatGateway
	metrics output.Metrics
	seq     atomic.Uint64
	now     func() time.Time
}

func NewChatService(gateway output.ChatGateway, metrics output.Metrics) *ChatService {
	return &ChatService{gateway: gateway, metrics: metrics, now: time.Now}
}

func (s *ChatService) Rooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error) {
	return s.gateway.ListRooms(ctx, eventID)
}

// roomStatus falls back to a writable room when the status endpoint fails;
// the backend still rejects a send the caller is not allowed to make.
func (s *ChatService) roomStatus(ctx context.Context, roomID int) entities.RoomStatus {
	status, err := s.gateway.GetRoomStatus(ctx, roomID)
	if err != nil {
		slog.Warn("chat room status unavailable", "room_id", roomID, "error", err)
		return entities.RoomStatus{CanSendMessages: true}
	}
	return *status
}

// FetchRoom polls a room once. The sequence number is taken before the
// request goes out so that responses can be ordered by when they were asked
// for, not when they arrived.
func (s *ChatService) FetchRoom(ctx context.Context, roomID int) (*input.RoomSnapshot, error) {
	seq := s.seq.Add(1)

	messages, err := s.gateway.ListRoomMessages(ctx, roomID)
	if err != nil {
		s.metrics.ChatPolled(PollError)
		return nil, fmt.Errorf("poll room %d: %w", roomID, err)
	}
	// The backend returns newest first.
	ordered := slices.Clone(messages)
	slices.Reverse(ordered)

	s.metrics.ChatPolled(PollOK)
	return &input.RoomSnapshot{
		Seq:       seq,
		RoomID:    roomID,
		Messages:  ordered,
		Status:    s.roomStatus(ctx, roomID),
		FetchedAt: s.now(),
	}, nil
}

func (s *ChatService) optimistic(m entities.Message, sent *entities.Message) *entities.Message {
	m.TempID = uuid.NewString()
	m.Pending = true
	m.CreatedAt = s.now().UTC().Format(time.RFC3339)
	if sent != nil {
		m.ID = sent.ID
		if sent.CreatedAt != "" {
			m.CreatedAt = sent.CreatedAt
		}
	}
	return &m
}

// SendRoomMessage posts to a room and returns the optimistic copy to show
// until the next poll brings back the stored message.
func (s *ChatService) SendRoomMessage(ctx context.Context, roomID int, text string, replyTo *int) (*entities.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	if status := s.roomStatus(ctx, roomID); !status.CanSendMessages {
		if status.Message != "" {
			return nil, fmt.Errorf("%s: %w", status.Message, domain.ErrChatReadOnly)
		}
		return nil, domain.ErrChatReadOnly
	}

	scope := domain.ScopeFromContext(ctx)
	sent, err := s.gateway.SendRoomMessage(ctx, entities.NewRoomMessage{
		ChatRoomID:       roomID,
		Message:          text,
		ReplyToMessageID: replyTo,
		TenantID:         scope.TenantID,
	})
	if err != nil {
		return nil, err
	}
	return s.optimistic(entities.Message{
		ChatRoomID:       roomID,
		SenderEmail:      scope.Actor,
		Message:          text,
		ReplyToMessageID: replyTo,
	}, sent), nil
}

// DirectThread returns the conversation with withUser and marks the unread
// messages addressed to the caller as read.
func (s *ChatService) DirectThread(ctx context.Context, withUser string) ([]entities.Message, error) {
	if strings.TrimSpace(withUser) == "" {
		return nil, fmt.Errorf("recipient is required: %w", domain.ErrValidation)
	}
	messages, err := s.gateway.ListDirectMessages(ctx, withUser)
	if err != nil {
		return nil, err
	}
	actor := domain.ScopeFromContext(ctx).Actor
	if actor == "" {
		return messages, nil
	}
	for i := range messages {
		m := &messages[i]
		if m.IsRead || !strings.EqualFold(m.RecipientEmail, actor) {
			continue
		}
		if err := s.gateway.MarkDirectMessageRead(ctx, m.ID); err != nil {
			slog.Warn("mark direct message read failed", "message_id", m.ID, "error", err)
			continue
		}
		m.IsRead = true
	}
	return messages, nil
}

func (s *ChatService) SendDirectMessage(ctx context.Context, recipient, text string) (*entities.Message, error) {
	recipient = strings.TrimSpace(recipient)
	text = strings.TrimSpace(text)
	if recipient == "" {
		return nil, fmt.Errorf("recipient is required: %w", domain.ErrValidation)
	}
	if text == "" {
		return nil, domain.ErrEmptyMessage
	}
	scope := domain.ScopeFromContext(ctx)
	sent, err := s.gateway.SendDirectMessage(ctx, entities.NewDirectMessage{
		RecipientEmail: recipient,
		Message:        text,
		TenantID:       scope.TenantID,
	})
	if err != nil {
		return nil, err
	}
	return s.optimistic(entities.Message{
		SenderEmail:    scope.Actor,
		RecipientEmail: recipient,
		Message:        text,
	}, sent), nil
}

func (s *ChatService) Conversations(ctx context.Context) ([]entities.Conversation, error) {
	return s.gateway.ListConversations(ctx)
}

// RoomFetcher polls one chat room.
type RoomFetcher interface {
	FetchRoom(ctx context.Context, roomID int) (*input.RoomSnapshot, error)
}

type pendingMessage struct {
	msg entities.Message
	// after is the last poll issued when the message was sent; any poll
	// issued later already sees the stored copy.
	after uint64
}

// Poller keeps a room snapshot fresh by polling on a fixed interval.
type Poller struct {
	fetcher  RoomFetcher
	metrics  output.Metrics
	roomID   int
	interval time.Duration
	onUpdate func(input.RoomSnapshot)

	issued   atomic.Uint64
	inFlight atomic.Bool

	mu      sync.Mutex
	applied uint64
	current input.RoomSnapshot
	pending []pendingMessage
}

// NewPoller builds a poller for roomID. onUpdate may be nil.
func NewPoller(fetcher RoomFetcher, metrics output.Metrics, roomID int, interval time.Duration, onUpdate func(input.RoomSnapshot)) *Poller {
	return &Poller{
		fetcher:  fetcher,
		metrics:  metrics,
		roomID:   roomID,
		interval: interval,
		onUpdate: onUpdate,
		current:  input.RoomSnapshot{RoomID: roomID},
	}
}

// Run polls immediately and then on every tick until ctx is cancelled.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *Poller) tick(ctx context.Context) {
	if !p.inFlight.CompareAndSwap(false, true) {
		p.metrics.ChatPolled(PollSkipped)
		return
	}
	defer p.inFlight.Store(false)
	if err := p.Refresh(ctx); err != nil {
		slog.Warn("chat poll failed", "room_id", p.roomID, "error", err)
	}
}

// Refresh polls once outside the ticker, e.g. right after a send.
func (p *Poller) Refresh(ctx context.Context) error {
	gen := p.issued.Add(1)
	snap, err := p.fetcher.FetchRoom(ctx, p.roomID)
	if err != nil {
		return err
	}
	p.apply(gen, *snap)
	return nil
}

// apply installs snap unless a poll issued after it was already applied.
func (p *Poller) apply(gen uint64, snap input.RoomSnapshot) bool {
	p.mu.Lock()
	if gen <= p.applied {
		p.mu.Unlock()
		p.metrics.ChatPolled(PollStale)
		return false
	}
	p.applied = gen

	kept := p.pending[:0]
	for _, pm := range p.pending {
		if pm.after >= gen {
			kept = append(kept, pm)
			snap.Messages = append(snap.Messages, pm.msg)
		}
	}
	p.pending = kept
	p.current = snap
	out := p.snapshotLocked()
	p.mu.Unlock()

	if p.onUpdate != nil {
		p.onUpdate(out)
	}
	return true
}

// AppendOptimistic shows m at the end of the room until a later poll returns
// the stored message.
func (p *Poller) AppendOptimistic(m entities.Message) {
	p.mu.Lock()
	p.pending = append(p.pending, pendingMessage{msg: m, after: p.issued.Load()})
	p.current.Messages = append(p.current.Messages, m)
	out := p.snapshotLocked()
	p.mu.Unlock()

	if p.onUpdate != nil {
		p.onUpdate(out)
	}
}

func (p *Poller) snapshotLocked() input.RoomSnapshot {
	out := p.current
	out.Messages = slices.Clone(p.current.Messages)
	return out
}

// Snapshot returns a copy of the latest applied state.
func (p *Poller) Snapshot() input.RoomSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}
