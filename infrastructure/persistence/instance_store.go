package persistence

import (
	"context"

	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/internal/database"
)

// InstanceStore implements template.InstanceStore using GORM.
type InstanceStore struct {
	database.Repository[template.Instance, InstanceModel]
}

// NewInstanceStore creates a new InstanceStore.
func NewInstanceStore(db database.Database) InstanceStore {
	return InstanceStore{
		Repository: database.NewRepository[template.Instance, InstanceModel](db, InstanceMapper{}, "instance"),
	}
}

// Get returns the instance with the given id.
func (s InstanceStore) Get(ctx context.Context, id string) (template.Instance, error) {
	return s.FindOne(ctx, repository.WithID(id))
}

// ListByTemplate returns the instances drafted from a template, newest first.
func (s InstanceStore) ListByTemplate(ctx context.Context, templateID string) ([]template.Instance, error) {
	return s.Find(ctx, repository.WithTemplateID(templateID), repository.WithNewestFirst())
}

// Delete removes an instance.
func (s InstanceStore) Delete(ctx context.Context, i template.Instance) error {
	return s.DeleteModel(ctx, i)
}
