package persistence

import (
	"context"
	"fmt"

	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/internal/database"
	"gorm.io/gorm"
)

// DocumentStore implements document.DocumentStore using GORM.
type DocumentStore struct {
	database.Repository[document.Document, DocumentModel]
}

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(db database.Database) DocumentStore {
	return DocumentStore{
		Repository: database.NewRepository[document.Document, DocumentModel](db, DocumentMapper{}, "document"),
	}
}

// Get returns the document with the given id.
func (s DocumentStore) Get(ctx context.Context, id string) (document.Document, error) {
	return s.FindOne(ctx, repository.WithID(id))
}

// ListByOrg returns a tenant's documents, newest first. An empty orgID lists
// documents stored without a tenant. Extra options are
// applied after the tenant filter and ordering.
func (s DocumentStore) ListByOrg(ctx context.Context, orgID string, options ...repository.Option) ([]document.Document, error) {
	opts := append([]repository.Option{repository.WithTenant(orgID), repository.WithNewestFirst()}, options...)
	return s.Find(ctx, opts...)
}

// SetStatus changes the status of a document and refreshes updated_at.
func (s DocumentStore) SetStatus(ctx context.Context, id string, status document.Status) error {
	result := s.DB(ctx).
		Model(&DocumentModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			repository.ColumnStatus:    string(status),
			repository.ColumnUpdatedAt: database.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("set document status: %w", database.Classify(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: document %s", database.ErrNotFound, id)
	}
	return nil
}

// Delete removes a document. Its variables are removed by the database
// cascade; its chat messages have no foreign key and are removed here in
// the same transaction.
func (s DocumentStore) Delete(ctx context.Context, d document.Document) error {
	return database.WithTransaction(ctx, s.Database(), func(tx *gorm.DB) error {
		if err := tx.Where("document_id = ?", d.ID()).Delete(&ChatMessageModel{}).Error; err != nil {
			return fmt.Errorf("delete chat messages of document: %w", database.Classify(err))
		}
		return s.DeleteModelTx(tx, d)
	})
}
