// Package template provides domain types for markdown templates, their
// fillable variables, and the instances drafted from them.
package template

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyBody is returned when a template has no markdown body.
var ErrEmptyBody = errors.New("template body is required")

// Template is a markdown document with placeholders, owned by a tenant.
// Deleting a template deletes its variables and instances.
type Template struct {
	id                 string
	orgID              string
	title              string
	fileDescription    string
	jurisdiction       string
	originalDocumentID string
	docType            string
	similarityTags     []string
	bodyMD             string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTemplate creates a template. The body must not be empty.
func NewTemplate(orgID, title, bodyMD string) (Template, error) {
	if bodyMD == "" {
		return Template{}, ErrEmptyBody
	}
	return Template{
		id:     uuid.NewString(),
		orgID:  orgID,
		title:  title,
		bodyMD: bodyMD,
	}, nil
}

// ReconstructTemplate recreates a template from persistence.
func ReconstructTemplate(
	id string,
	orgID string,
	title string,
	fileDescription string,
	jurisdiction string,
	originalDocumentID string,
	docType string,
	similarityTags []string,
	bodyMD string,
	createdAt time.Time,
	updatedAt time.Time,
) Template {
	return Template{
		id:                 id,
		orgID:              orgID,
		title:              title,
		fileDescription:    fileDescription,
		jurisdiction:       jurisdiction,
		originalDocumentID: originalDocumentID,
		docType:            docType,
		similarityTags:     slices.Clone(similarityTags),
		bodyMD:             bodyMD,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}
}

// ID returns the template identifier.
func (t Template) ID() string { return t.id }

// OrgID returns the owning tenant tag.
func (t Template) OrgID() string { return t.orgID }

// Title returns the template title.
func (t Template) Title() string { return t.title }

// FileDescription returns the description of the file the template produces.
func (t Template) FileDescription() string { return t.fileDescription }

// Jurisdiction returns the legal jurisdiction, if any.
func (t Template) Jurisdiction() string { return t.jurisdiction }

// OriginalDocumentID returns the id of the document the template came from.
// It is an unenforced reference.
func (t Template) OriginalDocumentID() string { return t.originalDocumentID }

// DocType returns the free-text document type label.
func (t Template) DocType() string { return t.docType }

// SimilarityTags returns a copy of the ordered tags, duplicates included.
func (t Template) SimilarityTags() []string { return slices.Clone(t.similarityTags) }

// BodyMD returns the markdown body.
func (t Template) BodyMD() string { return t.bodyMD }

// CreatedAt returns the creation time.
func (t Template) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last modification time.
func (t Template) UpdatedAt() time.Time { return t.updatedAt }

// WithDescription returns a copy with descriptive fields set.
func (t Template) WithDescription(fileDescription, jurisdiction, docType string) Template {
	t.fileDescription = fileDescription
	t.jurisdiction = jurisdiction
	t.docType = docType
	return t
}

// WithOriginalDocumentID returns a copy linked to its source document.
func (t Template) WithOriginalDocumentID(id string) Template {
	t.originalDocumentID = id
	return t
}

// WithSimilarityTags returns a copy with the given tags, kept in order.
func (t Template) WithSimilarityTags(tags ...string) Template {
	t.similarityTags = slices.Clone(tags)
	return t
}

// WithBody returns a copy with a new markdown body.
func (t Template) WithBody(bodyMD string) (Template, error) {
	if bodyMD == "" {
		return t, ErrEmptyBody
	}
	t.bodyMD = bodyMD
	return t, nil
}
