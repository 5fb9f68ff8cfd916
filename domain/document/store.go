package document

import (
	"context"

	"github.com/docforge/docforge/domain/repository"
)

// DocumentStore defines operations for persisting and retrieving documents.
type DocumentStore interface {
	repository.Store[Document]
	DeleteBy(ctx context.Context, options ...repository.Option) error

	// Get returns the document with the given id.
	Get(ctx context.Context, id string) (Document, error)

	// ListByOrg returns a tenant's documents, newest first. An empty orgID
	// lists documents stored without a tenant.
	ListByOrg(ctx context.Context, orgID string, options ...repository.Option) ([]Document, error)

	// SetStatus changes only the status of a document.
	SetStatus(ctx context.Context, id string, status Status) error
}

// TypeStore defines operations for persisting and retrieving document types.
type TypeStore interface {
	repository.Store[Type]

	// Get returns the document type with the given id.
	Get(ctx context.Context, id string) (Type, error)

	// GetByName returns the document type with the given unique name.
	GetByName(ctx context.Context, name string) (Type, error)
}

// VariableStore defines operations for persisting and retrieving document variables.
type VariableStore interface {
	repository.Store[Variable]
	DeleteBy(ctx context.Context, options ...repository.Option) error

	// SaveAll inserts the variables in a single transaction.
	SaveAll(ctx context.Context, variables []Variable) ([]Variable, error)

	// ListByDocument returns a document's variables in creation order.
	ListByDocument(ctx context.Context, documentID string) ([]Variable, error)

	// UpdateValueByName sets the value of every variable with the given name
	// on a document and returns how many rows changed.
	UpdateValueByName(ctx context.Context, documentID, name, value string) (int64, error)
}
