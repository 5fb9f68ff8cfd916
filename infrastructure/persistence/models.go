package persistence

import (
	"github.com/docforge/docforge/internal/database"
)

// Column and table names follow the legacy SQL migrations
// so existing databases can be adopted in place. Foreign keys are
// declared as belongs-to associations on the child so that both SQLite and
// PostgreSQL get them inline in CREATE TABLE.

// DocumentTypeModel represents a document type in the database.
type DocumentTypeModel struct {
	ID          string             `gorm:"column:id;primaryKey"`
	Name        string             `gorm:"column:name;not null;uniqueIndex:document_types_name_key"`
	Category    *string            `gorm:"column:category"`
	Description *string            `gorm:"column:description"`
	Fields      *string            `gorm:"column:fields"`
	Metadata    *string            `gorm:"column:metadata"`
	CreatedAt   database.Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt   database.Timestamp `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (DocumentTypeModel) TableName() string {
	return "document_types"
}

// Touch sets the write timestamps.
func (m *DocumentTypeModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// DocumentModel represents an uploaded document in the database.
type DocumentModel struct {
	ID             string             `gorm:"column:id;primaryKey"`
	OrgID          *string            `gorm:"column:orgId"`
	Status         string             `gorm:"column:status;not null"`
	Insights       *string            `gorm:"column:insights"`
	FullText       *string            `gorm:"column:fullText"`
	FilePath       *string            `gorm:"column:filePath"`
	Metadata       *string            `gorm:"column:metadata"`
	TypeName       *string            `gorm:"column:document_type"`
	DocumentTypeID *string            `gorm:"column:document_type_id"`
	DocumentType   *DocumentTypeModel `gorm:"foreignKey:DocumentTypeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt      database.Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt      database.Timestamp `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (DocumentModel) TableName() string {
	return "documents"
}

// Touch sets the write timestamps.
func (m *DocumentModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// DocumentVariableModel represents a value extracted from a document.
type DocumentVariableModel struct {
	ID         string             `gorm:"column:id;primaryKey"`
	DocumentID string             `gorm:"column:document_id;not null"`
	Document   *DocumentModel     `gorm:"foreignKey:DocumentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Name       string             `gorm:"column:name;not null"`
	Value      *string            `gorm:"column:value"`
	Confidence *float64           `gorm:"column:confidence"`
	Editable   *bool              `gorm:"column:editable;not null;default:true"`
	CreatedAt  database.Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt  database.Timestamp `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (DocumentVariableModel) TableName() string {
	return "document_variables"
}

// Touch sets the write timestamps.
func (m *DocumentVariableModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// TemplateModel represents a markdown template in the database.
type TemplateModel struct {
	ID                 string               `gorm:"column:id;primaryKey"`
	OrgID              *string              `gorm:"column:orgId"`
	Title              string               `gorm:"column:title;not null"`
	FileDescription    *string              `gorm:"column:file_description"`
	Jurisdiction       *string              `gorm:"column:jurisdiction"`
	OriginalDocumentID *string              `gorm:"column:originalDocumentId"`
	DocType            *string              `gorm:"column:doc_type"`
	SimilarityTags     database.StringArray `gorm:"column:similarity_tags"`
	BodyMD             string               `gorm:"column:body_md;not null"`
	CreatedAt          database.Timestamp   `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          database.Timestamp   `gorm:"column:updated_at;not null"`
}

// TableName returns the table name.
func (TemplateModel) TableName() string {
	return "templates"
}

// Touch sets the write timestamps.
func (m *TemplateModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
}

// TemplateVariableModel represents a fillable placeholder of a template.
type TemplateVariableModel struct {
	ID          string               `gorm:"column:id;primaryKey"`
	Key         string               `gorm:"column:key;not null"`
	Label       string               `gorm:"column:label;not null"`
	Description *string              `gorm:"column:description"`
	Example     *string              `gorm:"column:example"`
	Required    *bool                `gorm:"column:required;not null;default:true"`
	TemplateID  string               `gorm:"column:template_id;not null"`
	Template    *TemplateModel       `gorm:"foreignKey:TemplateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Enum        database.StringArray `gorm:"column:enum"`
	Regex       *string              `gorm:"column:regex"`
	Type        string               `gorm:"column:type;not null;default:string"`
	CreatedAt   database.Timestamp   `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name.
func (TemplateVariableModel) TableName() string {
	return "template_variables"
}

// Touch sets the creation timestamp.
func (m *TemplateVariableModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}

// InstanceModel represents a draft produced from a template.
type InstanceModel struct {
	ID          string             `gorm:"column:id;primaryKey"`
	OrgID       string             `gorm:"column:orgId;not null"`
	TemplateID  string             `gorm:"column:template_id;not null"`
	Template    *TemplateModel     `gorm:"foreignKey:TemplateID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserQuery   string             `gorm:"column:user_query;not null;default:''"`
	AnswersJSON string             `gorm:"column:answers_json;not null"`
	DraftMD     string             `gorm:"column:draft_md;not null"`
	CreatedAt   database.Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name.
func (InstanceModel) TableName() string {
	return "instances"
}

// Touch sets the creation timestamp.
func (m *InstanceModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}

// ChatMessageModel represents one chat log entry. document_id carries no
// database-level foreign key; ChatMessageStore checks it on insert.
type ChatMessageModel struct {
	ID         string             `gorm:"column:id;primaryKey"`
	OrgID      string             `gorm:"column:orgId;not null"`
	DocumentID string             `gorm:"column:document_id;not null"`
	Content    string             `gorm:"column:content;not null"`
	Role       string             `gorm:"column:role;not null"`
	CreatedAt  database.Timestamp `gorm:"column:created_at;not null;default:CURRENT_TIMESTAMP"`
}

// TableName returns the table name.
func (ChatMessageModel) TableName() string {
	return "ChatMessage"
}

// Touch sets the creation timestamp.
func (m *ChatMessageModel) Touch(now database.Timestamp) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}
