package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/seed"
	"devconnect/internal/storage"
)

// Messages owns the direct-message conversations. Same ownership and persist
// pattern as Content: one blob, full rewrite, swap after a successful write.
type Messages struct {
	storage       storage.Store
	identity      *Identity
	log           *observability.StoreLogger
	now           func() time.Time
	conversations []models.Conversation
	loaded        bool
}

// NewMessages creates the message store.
func NewMessages(store storage.Store, identity *Identity, logger *slog.Logger) *Messages {
	return &Messages{
		storage:  store,
		identity: identity,
		log:      observability.NewStoreLogger("messages", logger),
		now:      time.Now,
	}
}

// Load reads the persisted conversations, seeding demo threads when nothing
// has ever been written.
func (m *Messages) Load(ctx context.Context) error {
	if m.loaded {
		return nil
	}

	data, err := m.storage.Get(ctx, KeyMessages)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		currentID := ""
		if user := m.identity.CurrentUser(); user != nil {
			currentID = user.ID
		}
		demo := seed.DemoConversations(m.now(), currentID)
		if err := m.commit(ctx, "load", demo); err != nil {
			return err
		}
	case err != nil:
		m.log.LogError(ctx, "load", err)
		return err
	default:
		var conversations []models.Conversation
		if err := json.Unmarshal(data, &conversations); err != nil {
			m.log.LogError(ctx, "load", err)
			return err
		}
		m.conversations = conversations
	}

	m.loaded = true
	m.log.LogOp(ctx, "load", map[string]interface{}{"conversations": len(m.conversations)})
	return nil
}

// Conversations returns a copy of the conversation list.
func (m *Messages) Conversations() []models.Conversation {
	return cloneConversations(m.conversations)
}

// SendMessage appends a message from the session user to a conversation and
// updates its last-message pointer.
func (m *Messages) SendMessage(ctx context.Context, conversationID, content string) (*models.Message, error) {
	user := m.identity.CurrentUser()
	if user == nil {
		return nil, models.NewUnauthenticatedError("sign in to send messages")
	}
	idx := m.findConversation(conversationID)
	if idx < 0 {
		return nil, models.NewNotFoundError("conversation", conversationID)
	}

	message := models.Message{
		ID:        newID("message", m.now()),
		Content:   content,
		SenderID:  user.ID,
		CreatedAt: m.now(),
	}

	updated := cloneConversations(m.conversations)
	conv := &updated[idx]
	conv.Messages = append(conv.Messages, message)
	last := message
	conv.LastMessage = &last
	if err := m.commit(ctx, "send_message", updated); err != nil {
		return nil, err
	}
	m.log.LogOp(ctx, "send_message", map[string]interface{}{
		"conversation_id": conversationID,
		"message_id":      message.ID,
	})
	return &message, nil
}

// MarkRead clears the unread count and marks the peer's messages as read.
// Unknown conversation IDs are a no-op.
func (m *Messages) MarkRead(ctx context.Context, conversationID string) error {
	user := m.identity.CurrentUser()
	if user == nil {
		return nil
	}
	idx := m.findConversation(conversationID)
	if idx < 0 {
		return nil
	}

	updated := cloneConversations(m.conversations)
	conv := &updated[idx]
	conv.UnreadCount = 0
	for i := range conv.Messages {
		if conv.Messages[i].SenderID != user.ID {
			conv.Messages[i].IsRead = true
		}
	}
	return m.commit(ctx, "mark_read", updated)
}

func (m *Messages) findConversation(id string) int {
	for i := range m.conversations {
		if m.conversations[i].ID == id {
			return i
		}
	}
	return -1
}

func (m *Messages) commit(ctx context.Context, op string, updated []models.Conversation) error {
	data, err := json.Marshal(updated)
	if err != nil {
		return err
	}
	if err := m.storage.Put(ctx, KeyMessages, data); err != nil {
		m.log.LogError(ctx, op, err)
		return err
	}
	m.conversations = updated
	return nil
}

func cloneConversations(conversations []models.Conversation) []models.Conversation {
	cloned := make([]models.Conversation, len(conversations))
	copy(cloned, conversations)
	for i := range cloned {
		cloned[i].Messages = append([]models.Message{}, cloned[i].Messages...)
		if cloned[i].LastMessage != nil {
			last := *cloned[i].LastMessage
			cloned[i].LastMessage = &last
		}
	}
	return cloned
}
