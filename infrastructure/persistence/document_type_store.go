package persistence

import (
	"context"

	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/internal/database"
)

// DocumentTypeStore implements document.TypeStore using GORM.
type DocumentTypeStore struct {
	database.Repository[document.Type, DocumentTypeModel]
}

// NewDocumentTypeStore creates a new DocumentTypeStore.
func NewDocumentTypeStore(db database.Database) DocumentTypeStore {
	return DocumentTypeStore{
		Repository: database.NewRepository[document.Type, DocumentTypeModel](db, DocumentTypeMapper{}, "document type"),
	}
}

// Get returns the document type with the given id.
func (s DocumentTypeStore) Get(ctx context.Context, id string) (document.Type, error) {
	return s.FindOne(ctx, repository.WithID(id))
}

// GetByName returns the document type with the given name.
func (s DocumentTypeStore) GetByName(ctx context.Context, name string) (document.Type, error) {
	return s.FindOne(ctx, repository.WithName(name))
}

// Delete removes a document type. Documents referencing it keep existing
// with their type reference cleared by the database.
func (s DocumentTypeStore) Delete(ctx context.Context, t document.Type) error {
	return s.DeleteModel(ctx, t)
}
