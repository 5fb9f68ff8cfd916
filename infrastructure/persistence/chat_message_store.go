package persistence

import (
	"context"
	"fmt"

	"github.com/docforge/docforge/domain/chat"
	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ChatMessageStore implements chat.MessageStore using GORM.
type ChatMessageStore struct {
	database.Repository[chat.Message, ChatMessageModel]
}

// NewChatMessageStore creates a new ChatMessageStore.
func NewChatMessageStore(db database.Database) ChatMessageStore {
	return ChatMessageStore{
		Repository: database.NewRepository[chat.Message, ChatMessageModel](db, ChatMessageMapper{}, "chat message"),
	}
}

// Save stores a message. The referenced document must exist; the check and
// the write share a transaction, and on PostgreSQL the document row stays
// share-locked until commit so a concurrent delete waits for the insert.
func (s ChatMessageStore) Save(ctx context.Context, m chat.Message) (chat.Message, error) {
	postgres := s.Database().IsPostgres()
	return database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (chat.Message, error) {
		var ids []string
		if err := documentLookup(tx, postgres, m.DocumentID()).Pluck(repository.ColumnID, &ids).Error; err != nil {
			return chat.Message{}, fmt.Errorf("check document of chat message: %w", database.Classify(err))
		}
		if len(ids) == 0 {
			return chat.Message{}, fmt.Errorf("save chat message: document %q: %w", m.DocumentID(), database.ErrForeignKeyViolation)
		}
		return s.SaveTx(tx, m)
	})
}

// documentLookup selects a document by id, locking it FOR SHARE when lock is set.
func documentLookup(tx *gorm.DB, lock bool, id string) *gorm.DB {
	q := tx.Model(&DocumentModel{}).Where("id = ?", id).Limit(1)
	if lock {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthShare})
	}
	return q
}

// History returns a tenant's messages, oldest first.
func (s ChatMessageStore) History(ctx context.Context, orgID string, options ...repository.Option) ([]chat.Message, error) {
	opts := append([]repository.Option{repository.WithOrgID(orgID), repository.WithOldestFirst()}, options...)
	return s.Find(ctx, opts...)
}

// ListByDocument returns the messages about a document, oldest first.
func (s ChatMessageStore) ListByDocument(ctx context.Context, documentID string) ([]chat.Message, error) {
	return s.Find(ctx, repository.WithDocumentID(documentID), repository.WithOldestFirst())
}

// ClearHistory deletes every message of a tenant.
func (s ChatMessageStore) ClearHistory(ctx context.Context, orgID string) (int64, error) {
	result := database.ApplyConditions(s.DB(ctx), repository.WithOrgID(orgID)).Delete(&ChatMessageModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("clear chat history: %w", database.Classify(result.Error))
	}
	return result.RowsAffected, nil
}

// Delete removes a single message.
func (s ChatMessageStore) Delete(ctx context.Context, m chat.Message) error {
	return s.DeleteModel(ctx, m)
}
