package repository

// Column names shared by more than one table. Camel-case names match the
// columns created by the legacy SQL migrations and are quoted by the database layer.
const (
	ColumnID             = "id"
	ColumnOrgID          = "orgId"
	ColumnName           = "name"
	ColumnStatus         = "status"
	ColumnRole           = "role"
	ColumnKey            = "key"
	ColumnDocumentID     = "document_id"
	ColumnDocumentTypeID = "document_type_id"
	ColumnTemplateID     = "template_id"
	ColumnCreatedAt      = "created_at"
	ColumnUpdatedAt      = "updated_at"
)

// WithID filters by the "id" column.
func WithID(id string) Option {
	return WithCondition(ColumnID, id)
}

// WithIDIn filters by the "id" column using IN.
func WithIDIn(ids []string) Option {
	return WithConditionIn(ColumnID, ids)
}

// WithOrgID filters by the tenant tag.
func WithOrgID(orgID string) Option {
	return WithCondition(ColumnOrgID, orgID)
}

// WithTenant filters by the tenant tag on tables where it is nullable. An
// empty orgID matches rows stored without a tenant.
func WithTenant(orgID string) Option {
	if orgID == "" {
		return WithConditionNull(ColumnOrgID)
	}
	return WithOrgID(orgID)
}

// WithName filters by the "name" column.
func WithName(name string) Option {
	return WithCondition(ColumnName, name)
}

// WithKey filters by the "key" column.
func WithKey(key string) Option {
	return WithCondition(ColumnKey, key)
}

// WithStatus filters by the "status" column.
func WithStatus(status string) Option {
	return WithCondition(ColumnStatus, status)
}

// WithRole filters by the "role" column.
func WithRole(role string) Option {
	return WithCondition(ColumnRole, role)
}

// WithDocumentID filters by the "document_id" column.
func WithDocumentID(id string) Option {
	return WithCondition(ColumnDocumentID, id)
}

// WithDocumentIDIn filters by the "document_id" column using IN.
func WithDocumentIDIn(ids []string) Option {
	return WithConditionIn(ColumnDocumentID, ids)
}

// WithDocumentTypeID filters by the "document_type_id" column.
func WithDocumentTypeID(id string) Option {
	return WithCondition(ColumnDocumentTypeID, id)
}

// WithoutDocumentType matches documents whose type reference is null.
func WithoutDocumentType() Option {
	return WithConditionNull(ColumnDocumentTypeID)
}

// WithTemplateID filters by the "template_id" column.
func WithTemplateID(id string) Option {
	return WithCondition(ColumnTemplateID, id)
}

// WithNewestFirst orders by creation time, newest first.
func WithNewestFirst() Option {
	return WithOrderDesc(ColumnCreatedAt)
}

// WithOldestFirst orders by creation time, oldest first.
func WithOldestFirst() Option {
	return WithOrderAsc(ColumnCreatedAt)
}
