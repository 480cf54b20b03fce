package models

import "time"

// Message is a single direct message inside a conversation.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	SenderID  string    `json:"sender_id"`
	CreatedAt time.Time `json:"created_at"`
	IsRead    bool      `json:"is_read"`
}

// Conversation is a direct-message thread with one other developer. The peer
// is a denormalized snapshot, same as post authors.
type Conversation struct {
	ID          string    `json:"id"`
	User        Author    `json:"user"`
	IsOnline    bool      `json:"is_online"`
	Messages    []Message `json:"messages"`
	LastMessage *Message  `json:"last_message,omitempty"`
	UnreadCount int       `json:"unread_count"`
}
