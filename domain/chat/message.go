// Package chat provides the domain type for the per-tenant chat log.
package chat

import (
	"context"
	"time"

	"github.com/docforge/docforge/domain/repository"
	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

// Role values.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a tenant's chat log, tied to a document.
type Message struct {
	id         string
	orgID      string
	documentID string
	content    string
	role       Role
	createdAt  time.Time
}

// NewMessage creates a message with a fresh id.
func NewMessage(orgID, documentID string, role Role, content string) Message {
	return Message{
		id:         uuid.NewString(),
		orgID:      orgID,
		documentID: documentID,
		content:    content,
		role:       role,
	}
}

// ReconstructMessage recreates a message from persistence.
func ReconstructMessage(id, orgID, documentID, content string, role Role, createdAt time.Time) Message {
	return Message{
		id:         id,
		orgID:      orgID,
		documentID: documentID,
		content:    content,
		role:       role,
		createdAt:  createdAt,
	}
}

// ID returns the message identifier.
func (m Message) ID() string { return m.id }

// OrgID returns the owning tenant tag.
func (m Message) OrgID() string { return m.orgID }

// DocumentID returns the document the conversation is about.
func (m Message) DocumentID() string { return m.documentID }

// Content returns the message text.
func (m Message) Content() string { return m.content }

// Role returns the author role.
func (m Message) Role() Role { return m.role }

// CreatedAt returns the creation time.
func (m Message) CreatedAt() time.Time { return m.createdAt }

// MessageStore defines operations for persisting and retrieving chat messages.
type MessageStore interface {
	repository.Store[Message]
	DeleteBy(ctx context.Context, options ...repository.Option) error

	// History returns a tenant's messages, oldest first.
	History(ctx context.Context, orgID string, options ...repository.Option) ([]Message, error)

	// ListByDocument returns the messages about a document, oldest first.
	ListByDocument(ctx context.Context, documentID string) ([]Message, error)

	// ClearHistory deletes every message of a tenant and returns the count.
	ClearHistory(ctx context.Context, orgID string) (int64, error)
}
