package persistence

import (
	"context"
	"fmt"

	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/internal/database"
	"gorm.io/gorm"
)

// TemplateStore implements template.TemplateStore using GORM.
type TemplateStore struct {
	database.Repository[template.Template, TemplateModel]
	variables database.Repository[template.Variable, TemplateVariableModel]
}

// NewTemplateStore creates a new TemplateStore.
func NewTemplateStore(db database.Database) TemplateStore {
	return TemplateStore{
		Repository: database.NewRepository[template.Template, TemplateModel](db, TemplateMapper{}, "template"),
		variables:  database.NewRepository[template.Variable, TemplateVariableModel](db, TemplateVariableMapper{}, "template variable"),
	}
}

// Get returns the template with the given id.
func (s TemplateStore) Get(ctx context.Context, id string) (template.Template, error) {
	return s.FindOne(ctx, repository.WithID(id))
}

// ListByOrg returns a tenant's templates, newest first. An empty orgID lists
// templates stored without a tenant.
func (s TemplateStore) ListByOrg(ctx context.Context, orgID string, options ...repository.Option) ([]template.Template, error) {
	opts := append([]repository.Option{repository.WithTenant(orgID), repository.WithNewestFirst()}, options...)
	return s.Find(ctx, opts...)
}

// SaveWithVariables stores the template and inserts the variables, attached
// to it, in one transaction. Variables keep the order given.
func (s TemplateStore) SaveWithVariables(
	ctx context.Context,
	t template.Template,
	variables []template.Variable,
) (template.Template, []template.Variable, error) {
	type result struct {
		template  template.Template
		variables []template.Variable
	}

	r, err := database.WithTransactionResult(ctx, s.Database(), func(tx *gorm.DB) (result, error) {
		saved, err := s.SaveTx(tx, t)
		if err != nil {
			return result{}, err
		}
		attached := make([]template.Variable, len(variables))
		for i, v := range variables {
			attached[i] = v.ForTemplate(saved.ID())
		}
		out, err := s.variables.CreateAllTx(tx, attached, variableBatchSize)
		if err != nil {
			return result{}, err
		}
		return result{template: saved, variables: out}, nil
	})
	if err != nil {
		return template.Template{}, nil, fmt.Errorf("save template with variables: %w", err)
	}
	return r.template, r.variables, nil
}

// Delete removes a template. Its variables and instances are removed by
// the database cascade.
func (s TemplateStore) Delete(ctx context.Context, t template.Template) error {
	return s.DeleteModel(ctx, t)
}
