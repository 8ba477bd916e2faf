package entities

type ChatRoom struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	ChatType string `json:"chat_type,omitempty"`
	EventID  int    `json:"event_id,omitempty"`
	IsActive bool   `json:"is_active"`
}

// RoomStatus tells whether the caller may post in a room.
type RoomStatus struct {
	CanSendMessages bool   `json:"can_send_messages"`
	Message         string `json:"message,omitempty"`
}

// Message is a room or direct message. TempID and Pending are set on
// optimistic copies that have not yet come back from the backend.
type Message struct {
	ID               int    `json:"id"`
	ChatRoomID       int    `json:"chat_room_id,omitempty"`
	SenderEmail      string `json:"sender_email"`
	SenderName       string `json:"sender_name,omitempty"`
	RecipientEmail   string `json:"recipient_email,omitempty"`
	Message          string `json:"message"`
	ReplyToMessageID *int   `json:"reply_to_message_id,omitempty"`
	CreatedAt        string `json:"created_at"`
	IsRead           bool   `json:"is_read"`
	TempID           string `json:"temp_id,omitempty"`
	Pending          bool   `json:"pending,omitempty"`
}

type Conversation struct {
	OtherUserEmail  string `json:"other_user_email"`
	OtherUserName   string `json:"other_user_name,omitempty"`
	LastMessage     string `json:"last_message,omitempty"`
	LastMessageTime string `json:"last_message_time,omitempty"`
	UnreadCount     int    `json:"unread_count"`
}

type NewRoomMessage struct {
	ChatRoomID       int    `json:"chat_room_id"`
	Message          string `json:"message"`
	ReplyToMessageID *int   `json:"reply_to_message_id"`
	TenantID         string `json:"tenant_id"`
}

type NewDirectMessage struct {
	RecipientEmail string `json:"recipient_email"`
	Message        string `json:"message"`
	TenantID       string `json:"tenant_id"`
}
