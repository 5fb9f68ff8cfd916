package document

import (
	"time"

	"github.com/google/uuid"
)

// Variable is a named value extracted from a document. It is deleted along
// with its document.
type Variable struct {
	id            string
	documentID    string
	name          string
	value         string
	confidence    float64
	hasConfidence bool
	editable      bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewVariable creates an editable variable without a confidence score.
func NewVariable(documentID, name, value string) Variable {
	return Variable{
		id:         uuid.NewString(),
		documentID: documentID,
		name:       name,
		value:      value,
		editable:   true,
	}
}

// ReconstructVariable recreates a variable from persistence. A nil
// confidence means none was recorded.
func ReconstructVariable(
	id, documentID, name, value string,
	confidence *float64,
	editable bool,
	createdAt, updatedAt time.Time,
) Variable {
	v := Variable{
		id:         id,
		documentID: documentID,
		name:       name,
		value:      value,
		editable:   editable,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
	if confidence != nil {
		v.confidence = *confidence
		v.hasConfidence = true
	}
	return v
}

// ID returns the variable identifier.
func (v Variable) ID() string { return v.id }

// DocumentID returns the owning document id.
func (v Variable) DocumentID() string { return v.documentID }

// Name returns the variable name.
func (v Variable) Name() string { return v.name }

// Value returns the variable value.
func (v Variable) Value() string { return v.value }

// Confidence returns the extraction confidence and whether one is recorded.
func (v Variable) Confidence() (float64, bool) { return v.confidence, v.hasConfidence }

// Editable reports whether users may change the value.
func (v Variable) Editable() bool { return v.editable }

// CreatedAt returns the creation time.
func (v Variable) CreatedAt() time.Time { return v.createdAt }

// UpdatedAt returns the last modification time.
func (v Variable) UpdatedAt() time.Time { return v.updatedAt }

// WithValue returns a copy with a new value.
func (v Variable) WithValue(value string) Variable {
	v.value = value
	return v
}

// WithConfidence returns a copy with the given confidence score.
func (v Variable) WithConfidence(c float64) Variable {
	v.confidence = c
	v.hasConfidence = true
	return v
}

// WithEditable returns a copy with the editable flag set.
func (v Variable) WithEditable(editable bool) Variable {
	v.editable = editable
	return v
}
