// Package document provides domain types for uploaded documents, the
// variables extracted from them, and the catalogue of document types.
package document

import (
	"time"

	"github.com/google/uuid"
)

// Status is the processing state of a document. The column is free text;
// these are the values the application writes.
type Status string

// Status values.
const (
	StatusUploaded      Status = "uploaded"
	StatusProcessing    Status = "processing"
	StatusCompleted     Status = "completed"
	StatusFailed        Status = "failed"
	StatusDraft         Status = "draft"
	StatusReviewPending Status = "review_pending"
	StatusApproved      Status = "approved"
)

// Document is an uploaded file owned by a tenant. It optionally references a
// Type; when that type is deleted the reference is cleared, the document stays.
type Document struct {
	id        string
	orgID     string
	status    Status
	insights  string
	fullText  string
	filePath  string
	metadata  string
	typeName  string
	typeID    string
	createdAt time.Time
	updatedAt time.Time
}

// NewDocument creates a document in the uploaded state with a fresh id.
func NewDocument(orgID, filePath string) Document {
	return Document{
		id:       uuid.NewString(),
		orgID:    orgID,
		status:   StatusUploaded,
		filePath: filePath,
	}
}

// ReconstructDocument recreates a document from persistence.
func ReconstructDocument(
	id string,
	orgID string,
	status Status,
	insights string,
	fullText string,
	filePath string,
	metadata string,
	typeName string,
	typeID string,
	createdAt time.Time,
	updatedAt time.Time,
) Document {
	return Document{
		id:        id,
		orgID:     orgID,
		status:    status,
		insights:  insights,
		fullText:  fullText,
		filePath:  filePath,
		metadata:  metadata,
		typeName:  typeName,
		typeID:    typeID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the document identifier.
func (d Document) ID() string { return d.id }

// OrgID returns the owning tenant tag.
func (d Document) OrgID() string { return d.orgID }

// Status returns the processing status.
func (d Document) Status() Status { return d.status }

// Insights returns the serialized analysis result, if any.
func (d Document) Insights() string { return d.insights }

// FullText returns the extracted text.
func (d Document) FullText() string { return d.fullText }

// FilePath returns where the uploaded file is stored.
func (d Document) FilePath() string { return d.filePath }

// Metadata returns the serialized metadata blob.
func (d Document) Metadata() string { return d.metadata }

// TypeName returns the free-text type label stored on the document.
func (d Document) TypeName() string { return d.typeName }

// TypeID returns the referenced document type id, or "" when unset.
func (d Document) TypeID() string { return d.typeID }

// HasType reports whether the document references a document type.
func (d Document) HasType() bool { return d.typeID != "" }

// CreatedAt returns the creation time.
func (d Document) CreatedAt() time.Time { return d.createdAt }

// UpdatedAt returns the last modification time.
func (d Document) UpdatedAt() time.Time { return d.updatedAt }

// WithStatus returns a copy with the given status.
func (d Document) WithStatus(status Status) Document {
	d.status = status
	return d
}

// WithType returns a copy referencing the given document type.
func (d Document) WithType(t Type) Document {
	d.typeID = t.ID()
	d.typeName = t.Name()
	return d
}

// WithTypeID returns a copy referencing a document type by id only.
// An empty id clears the reference.
func (d Document) WithTypeID(id string) Document {
	d.typeID = id
	return d
}

// WithTypeName returns a copy with the free-text type label.
func (d Document) WithTypeName(name string) Document {
	d.typeName = name
	return d
}

// WithAnalysis returns a copy carrying extraction output.
func (d Document) WithAnalysis(fullText, insights, metadata string) Document {
	d.fullText = fullText
	d.insights = insights
	d.metadata = metadata
	return d
}
