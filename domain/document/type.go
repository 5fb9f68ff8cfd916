package document

import (
	"time"

	"github.com/google/uuid"
)

// EmptyFields is the field list a new document type starts with.
const EmptyFields = "[]"

// Type is a named category of documents. Names are unique.
type Type struct {
	id          string
	name        string
	category    string
	description string
	fields      string
	metadata    string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewType creates a document type with an empty field list.
func NewType(name string) Type {
	return Type{
		id:     uuid.NewString(),
		name:   name,
		fields: EmptyFields,
	}
}

// ReconstructType recreates a document type from persistence.
func ReconstructType(
	id, name, category, description, fields, metadata string,
	createdAt, updatedAt time.Time,
) Type {
	return Type{
		id:          id,
		name:        name,
		category:    category,
		description: description,
		fields:      fields,
		metadata:    metadata,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// ID returns the type identifier.
func (t Type) ID() string { return t.id }

// Name returns the unique type name.
func (t Type) Name() string { return t.name }

// Category returns the optional category.
func (t Type) Category() string { return t.category }

// Description returns the optional description.
func (t Type) Description() string { return t.description }

// Fields returns the serialized field definitions.
func (t Type) Fields() string { return t.fields }

// Metadata returns the serialized metadata blob.
func (t Type) Metadata() string { return t.metadata }

// CreatedAt returns the creation time.
func (t Type) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last modification time.
func (t Type) UpdatedAt() time.Time { return t.updatedAt }

// WithFields returns a copy with the given serialized field definitions.
func (t Type) WithFields(fields string) Type {
	t.fields = fields
	return t
}

// WithDetails returns a copy with category and description set.
func (t Type) WithDetails(category, description string) Type {
	t.category = category
	t.description = description
	return t
}

// WithMetadata returns a copy with the serialized metadata blob.
func (t Type) WithMetadata(metadata string) Type {
	t.metadata = metadata
	return t
}
