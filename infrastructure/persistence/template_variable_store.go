package persistence

import (
	"context"

	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/internal/database"
)

// TemplateVariableStore implements template.VariableStore using GORM.
type TemplateVariableStore struct {
	database.Repository[template.Variable, TemplateVariableModel]
}

// NewTemplateVariableStore creates a new TemplateVariableStore.
func NewTemplateVariableStore(db database.Database) TemplateVariableStore {
	return TemplateVariableStore{
		Repository: database.NewRepository[template.Variable, TemplateVariableModel](db, TemplateVariableMapper{}, "template variable"),
	}
}

// ListByTemplate returns a template's variables in creation order.
func (s TemplateVariableStore) ListByTemplate(ctx context.Context, templateID string) ([]template.Variable, error) {
	return s.Find(ctx,
		repository.WithTemplateID(templateID),
		repository.WithOldestFirst(),
	)
}

// Delete removes a template variable.
func (s TemplateVariableStore) Delete(ctx context.Context, v template.Variable) error {
	return s.DeleteModel(ctx, v)
}
