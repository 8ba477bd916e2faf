package input

import (
	"context"
	"time"

	"eventdesk/internal/domain/entities"
)

// RoomSnapshot is one poll of a chat room. Seq increases with every poll
// issued by the service; a consumer drops snapshots older than the last one
// it applied.
type RoomSnapshot struct {
	Seq       uint64              `json:"seq"`
	RoomID    int                 `json:"room_id"`
	Messages  []entities.Message  `json:"messages"`
	Status    entities.RoomStatus `json:"status"`
	FetchedAt time.Time           `json:"fetched_at"`
}

type ChatUseCase interface {
	Rooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error)
	FetchRoom(ctx context.Context, roomID int) (*RoomSnapshot, error)
	SendRoomMessage(ctx context.Context, roomID int, text string, replyTo *int) (*entities.Message, error)
	DirectThread(ctx context.Context, withUser string) ([]entities.Message, error)
	SendDirectMessage(ctx context.Context, recipient, text string) (*entities.Message, error)
	Conversations(ctx context.Context) ([]entities.Conversation, error)
}
