package template

import (
	"context"

	"github.com/docforge/docforge/domain/repository"
)

// TemplateStore defines operations for persisting and retrieving templates.
type TemplateStore interface {
	repository.Store[Template]

	// Get returns the template with the given id.
	Get(ctx context.Context, id string) (Template, error)

	// ListByOrg returns a tenant's templates, newest first. An empty orgID
	// lists templates stored without a tenant.
	ListByOrg(ctx context.Context, orgID string, options ...repository.Option) ([]Template, error)

	// SaveWithVariables stores a template and its variables atomically.
	// Variables are attached to the template regardless of their template id.
	SaveWithVariables(ctx context.Context, t Template, variables []Variable) (Template, []Variable, error)
}

// VariableStore defines operations for persisting and retrieving template variables.
type VariableStore interface {
	repository.Store[Variable]
	DeleteBy(ctx context.Context, options ...repository.Option) error

	// ListByTemplate returns a template's variables in creation order.
	ListByTemplate(ctx context.Context, templateID string) ([]Variable, error)
}

// InstanceStore defines operations for persisting and retrieving instances.
type InstanceStore interface {
	repository.Store[Instance]

	// Get returns the instance with the given id.
	Get(ctx context.Context, id string) (Instance, error)

	// ListByTemplate returns the instances drafted from a template, newest first.
	ListByTemplate(ctx context.Context, templateID string) ([]Instance, error)
}
