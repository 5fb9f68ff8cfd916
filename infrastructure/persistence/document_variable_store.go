package persistence

import (
	"context"
	"fmt"

	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/internal/database"
	"gorm.io/gorm"
)

// variableBatchSize bounds the rows per INSERT statement in SaveAll.
const variableBatchSize = 200

// DocumentVariableStore implements document.VariableStore using GORM.
type DocumentVariableStore struct {
	database.Repository[document.Variable, DocumentVariableModel]
}

// NewDocumentVariableStore creates a new DocumentVariableStore.
func NewDocumentVariableStore(db database.Database) DocumentVariableStore {
	return DocumentVariableStore{
		Repository: database.NewRepository[document.Variable, DocumentVariableModel](db, DocumentVariableMapper{}, "document variable"),
	}
}

// SaveAll inserts the variables in one transaction. Either all rows are
// stored or none are. ListByDocument returns them in the order given.
func (s DocumentVariableStore) SaveAll(ctx context.Context, variables []document.Variable) ([]document.Variable, error) {
	if len(variables) == 0 {
		return []document.Variable{}, nil
	}

	saved, err := database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) ([]document.Variable, error) {
		return s.CreateAllTx(tx, variables, variableBatchSize)
	})
	if err != nil {
		return nil, fmt.Errorf("save document variables: %w", err)
	}
	return saved, nil
}

// ListByDocument returns a document's variables in creation order.
func (s DocumentVariableStore) ListByDocument(ctx context.Context, documentID string) ([]document.Variable, error) {
	return s.Find(ctx,
		repository.WithDocumentID(documentID),
		repository.WithOldestFirst(),
	)
}

// UpdateValueByName sets the value of the named variables of a document.
func (s DocumentVariableStore) UpdateValueByName(ctx context.Context, documentID, name, value string) (int64, error) {
	result := s.DB(ctx).
		Model(&DocumentVariableModel{}).
		Where("document_id = ? AND name = ?", documentID, name).
		Updates(map[string]any{
			"value":                    value,
			repository.ColumnUpdatedAt: database.Now(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("update document variable value: %w", database.Classify(result.Error))
	}
	return result.RowsAffected, nil
}

// Delete removes a document variable.
func (s DocumentVariableStore) Delete(ctx context.Context, v document.Variable) error {
	return s.DeleteModel(ctx, v)
}
