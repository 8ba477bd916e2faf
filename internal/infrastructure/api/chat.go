package api

import (
	"context"
	"fmt"
	"net/url"

	"eventdesk/internal/domain/entities"
)

func (c *Client) ListRooms(ctx context.Context, eventID int) ([]entities.ChatRoom, error) {
	var out []entities.ChatRoom
	if err := c.get(ctx, at("/chat/rooms/?event_id=%d", eventID), &out); err != nil {
		return nil, fmt.Errorf("list chat rooms: %w", err)
	}
	return out, nil
}

func (c *Client) ListRoomMessages(ctx context.Context, roomID int) ([]entities.Message, error) {
	var out []entities.Message
	if err := c.get(ctx, at("/chat/rooms/%d/messages", roomID), &out); err != nil {
		return nil, fmt.Errorf("list messages for room %d: %w", roomID, err)
	}
	return out, nil
}

func (c *Client) GetRoomStatus(ctx context.Context, roomID int) (*entities.RoomStatus, error) {
	var out entities.RoomStatus
	if err := c.get(ctx, at("/chat/rooms/%d/status", roomID), &out); err != nil {
		return nil, fmt.Errorf("get status for room %d: %w", roomID, err)
	}
	return &out, nil
}

func (c *Client) SendRoomMessage(ctx context.Context, m entities.NewRoomMessage) (*entities.Message, error) {
	var out entities.Message
	if err := c.post(ctx, at("/chat/messages/"), m, &out); err != nil {
		return nil, fmt.Errorf("send message to room %d: %w", m.ChatRoomID, err)
	}
	return &out, nil
}

func (c *Client) ListDirectMessages(ctx context.Context, withUser string) ([]entities.Message, error) {
	var out []entities.Message
	if err := c.get(ctx, at("/chat/direct-messages/?with_user=%s", url.QueryEscape(withUser)), &out); err != nil {
		return nil, fmt.Errorf("list direct messages: %w", err)
	}
	return out, nil
}

func (c *Client) SendDirectMessage(ctx context.Context, m entities.NewDirectMessage) (*entities.Message, error) {
	var out entities.Message
	if err := c.post(ctx, at("/chat/direct-messages/"), m, &out); err != nil {
		return nil, fmt.Errorf("send direct message: %w", err)
	}
	return &out, nil
}

func (c *Client) MarkDirectMessageRead(ctx context.Context, messageID int) error {
	if err := c.put(ctx, at("/chat/direct-messages/%d/read", messageID), nil, nil); err != nil {
		return fmt.Errorf("mark message %d read: %w", messageID, err)
	}
	return nil
}

func (c *Client) ListConversations(ctx context.Context) ([]entities.Conversation, error) {
	var out []entities.Conversation
	if err := c.get(ctx, at("/chat/conversations/"), &out); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return out, nil
}
