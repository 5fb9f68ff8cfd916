package persistence

import (
	"github.com/docforge/docforge/domain/chat"
	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/internal/database"
)

// Nullable text columns map to "" in the domain. Writing "" stores NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func boolPtr(b bool) *bool {
	return &b
}

// derefBool treats a missing value as the column default, true.
func derefBool(b *bool) bool {
	if b == nil {
		return true
	}
	return *b
}

// DocumentTypeMapper maps between domain document.Type and DocumentTypeModel.
type DocumentTypeMapper struct{}

// ToDomain converts a DocumentTypeModel to a domain Type.
func (m DocumentTypeMapper) ToDomain(e DocumentTypeModel) document.Type {
	return document.ReconstructType(
		e.ID,
		e.Name,
		deref(e.Category),
		deref(e.Description),
		deref(e.Fields),
		deref(e.Metadata),
		e.CreatedAt.Time,
		e.UpdatedAt.Time,
	)
}

// ToModel converts a domain Type to a DocumentTypeModel.
func (m DocumentTypeMapper) ToModel(t document.Type) DocumentTypeModel {
	return DocumentTypeModel{
		ID:          t.ID(),
		Name:        t.Name(),
		Category:    nullable(t.Category()),
		Description: nullable(t.Description()),
		Fields:      nullable(t.Fields()),
		Metadata:    nullable(t.Metadata()),
		CreatedAt:   database.NewTimestamp(t.CreatedAt()),
		UpdatedAt:   database.NewTimestamp(t.UpdatedAt()),
	}
}

// DocumentMapper maps between domain document.Document and DocumentModel.
type DocumentMapper struct{}

// ToDomain converts a DocumentModel to a domain Document.
func (m DocumentMapper) ToDomain(e DocumentModel) document.Document {
	return document.ReconstructDocument(
		e.ID,
		deref(e.OrgID),
		document.Status(e.Status),
		deref(e.Insights),
		deref(e.FullText),
		deref(e.FilePath),
		deref(e.Metadata),
		deref(e.TypeName),
		deref(e.DocumentTypeID),
		e.CreatedAt.Time,
		e.UpdatedAt.Time,
	)
}

// ToModel converts a domain Document to a DocumentModel.
func (m DocumentMapper) ToModel(d document.Document) DocumentModel {
	return DocumentModel{
		ID:             d.ID(),
		OrgID:          nullable(d.OrgID()),
		Status:         string(d.Status()),
		Insights:       nullable(d.Insights()),
		FullText:       nullable(d.FullText()),
		FilePath:       nullable(d.FilePath()),
		Metadata:       nullable(d.Metadata()),
		TypeName:       nullable(d.TypeName()),
		DocumentTypeID: nullable(d.TypeID()),
		CreatedAt:      database.NewTimestamp(d.CreatedAt()),
		UpdatedAt:      database.NewTimestamp(d.UpdatedAt()),
	}
}

// DocumentVariableMapper maps between domain document.Variable and DocumentVariableModel.
type DocumentVariableMapper struct{}

// ToDomain converts a DocumentVariableModel to a domain Variable.
func (m DocumentVariableMapper) ToDomain(e DocumentVariableModel) document.Variable {
	return document.ReconstructVariable(
		e.ID,
		e.DocumentID,
		e.Name,
		deref(e.Value),
		e.Confidence,
		derefBool(e.Editable),
		e.CreatedAt.Time,
		e.UpdatedAt.Time,
	)
}

// ToModel converts a domain Variable to a DocumentVariableModel.
func (m DocumentVariableMapper) ToModel(v document.Variable) DocumentVariableModel {
	var confidence *float64
	if c, ok := v.Confidence(); ok {
		confidence = &c
	}
	return DocumentVariableModel{
		ID:         v.ID(),
		DocumentID: v.DocumentID(),
		Name:       v.Name(),
		Value:      nullable(v.Value()),
		Confidence: confidence,
		Editable:   boolPtr(v.Editable()),
		CreatedAt:  database.NewTimestamp(v.CreatedAt()),
		UpdatedAt:  database.NewTimestamp(v.UpdatedAt()),
	}
}

// TemplateMapper maps between domain template.Template and TemplateModel.
type TemplateMapper struct{}

// ToDomain converts a TemplateModel to a domain Template.
func (m TemplateMapper) ToDomain(e TemplateModel) template.Template {
	return template.ReconstructTemplate(
		e.ID,
		deref(e.OrgID),
		e.Title,
		deref(e.FileDescription),
		deref(e.Jurisdiction),
		deref(e.OriginalDocumentID),
		deref(e.DocType),
		e.SimilarityTags,
		e.BodyMD,
		e.CreatedAt.Time,
		e.UpdatedAt.Time,
	)
}

// ToModel converts a domain Template to a TemplateModel.
func (m TemplateMapper) ToModel(t template.Template) TemplateModel {
	return TemplateModel{
		ID:                 t.ID(),
		OrgID:              nullable(t.OrgID()),
		Title:              t.Title(),
		FileDescription:    nullable(t.FileDescription()),
		Jurisdiction:       nullable(t.Jurisdiction()),
		OriginalDocumentID: nullable(t.OriginalDocumentID()),
		DocType:            nullable(t.DocType()),
		SimilarityTags:     t.SimilarityTags(),
		BodyMD:             t.BodyMD(),
		CreatedAt:          database.NewTimestamp(t.CreatedAt()),
		UpdatedAt:          database.NewTimestamp(t.UpdatedAt()),
	}
}

// TemplateVariableMapper maps between domain template.Variable and TemplateVariableModel.
type TemplateVariableMapper struct{}

// ToDomain converts a TemplateVariableModel to a domain Variable.
func (m TemplateVariableMapper) ToDomain(e TemplateVariableModel) template.Variable {
	return template.ReconstructVariable(
		e.ID,
		e.TemplateID,
		e.Key,
		e.Label,
		deref(e.Description),
		deref(e.Example),
		derefBool(e.Required),
		e.Enum,
		deref(e.Regex),
		template.VariableType(e.Type),
		e.CreatedAt.Time,
	)
}

// ToModel converts a domain Variable to a TemplateVariableModel.
func (m TemplateVariableMapper) ToModel(v template.Variable) TemplateVariableModel {
	return TemplateVariableModel{
		ID:          v.ID(),
		Key:         v.Key(),
		Label:       v.Label(),
		Description: nullable(v.Description()),
		Example:     nullable(v.Example()),
		Required:    boolPtr(v.Required()),
		TemplateID:  v.TemplateID(),
		Enum:        v.Enum(),
		Regex:       nullable(v.Regex()),
		Type:        string(v.Type()),
		CreatedAt:   database.NewTimestamp(v.CreatedAt()),
	}
}

// InstanceMapper maps between domain template.Instance and InstanceModel.
type InstanceMapper struct{}

// ToDomain converts an InstanceModel to a domain Instance.
func (m InstanceMapper) ToDomain(e InstanceModel) template.Instance {
	return template.ReconstructInstance(
		e.ID,
		e.OrgID,
		e.TemplateID,
		e.UserQuery,
		e.AnswersJSON,
		e.DraftMD,
		e.CreatedAt.Time,
	)
}

// ToModel converts a domain Instance to an InstanceModel.
func (m InstanceMapper) ToModel(i template.Instance) InstanceModel {
	return InstanceModel{
		ID:          i.ID(),
		OrgID:       i.OrgID(),
		TemplateID:  i.TemplateID(),
		UserQuery:   i.UserQuery(),
		AnswersJSON: i.AnswersJSON(),
		DraftMD:     i.DraftMD(),
		CreatedAt:   database.NewTimestamp(i.CreatedAt()),
	}
}

// ChatMessageMapper maps between domain chat.Message and ChatMessageModel.
type ChatMessageMapper struct{}

// ToDomain converts a ChatMessageModel to a domain Message.
func (m ChatMessageMapper) ToDomain(e ChatMessageModel) chat.Message {
	return chat.ReconstructMessage(
		e.ID,
		e.OrgID,
		e.DocumentID,
		e.Content,
		chat.Role(e.Role),
		e.CreatedAt.Time,
	)
}

// ToModel converts a domain Message to a ChatMessageModel.
func (m ChatMessageMapper) ToModel(msg chat.Message) ChatMessageModel {
	return ChatMessageModel{
		ID:         msg.ID(),
		OrgID:      msg.OrgID(),
		DocumentID: msg.DocumentID(),
		Content:    msg.Content(),
		Role:       string(msg.Role()),
		CreatedAt:  database.NewTimestamp(msg.CreatedAt()),
	}
}
