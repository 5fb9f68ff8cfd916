package template

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrIncompleteInstance is returned when an instance lacks answers or a draft.
var ErrIncompleteInstance = errors.New("instance requires answers and a draft")

// Instance is a draft produced from a template for a user query.
type Instance struct {
	id          string
	orgID       string
	templateID  string
	userQuery   string
	answersJSON string
	draftMD     string
	createdAt   time.Time
}

// NewInstance creates an instance. Answers and draft must both be present.
func NewInstance(orgID, templateID, userQuery, answersJSON, draftMD string) (Instance, error) {
	if answersJSON == "" || draftMD == "" {
		return Instance{}, ErrIncompleteInstance
	}
	return Instance{
		id:          uuid.NewString(),
		orgID:       orgID,
		templateID:  templateID,
		userQuery:   userQuery,
		answersJSON: answersJSON,
		draftMD:     draftMD,
	}, nil
}

// ReconstructInstance recreates an instance from persistence.
func ReconstructInstance(id, orgID, templateID, userQuery, answersJSON, draftMD string, createdAt time.Time) Instance {
	return Instance{
		id:          id,
		orgID:       orgID,
		templateID:  templateID,
		userQuery:   userQuery,
		answersJSON: answersJSON,
		draftMD:     draftMD,
		createdAt:   createdAt,
	}
}

// ID returns the instance identifier.
func (i Instance) ID() string { return i.id }

// OrgID returns the owning tenant tag.
func (i Instance) OrgID() string { return i.orgID }

// TemplateID returns the source template id.
func (i Instance) TemplateID() string { return i.templateID }

// UserQuery returns the request that produced the draft.
func (i Instance) UserQuery() string { return i.userQuery }

// AnswersJSON returns the serialized variable answers.
func (i Instance) AnswersJSON() string { return i.answersJSON }

// DraftMD returns the drafted markdown.
func (i Instance) DraftMD() string { return i.draftMD }

// CreatedAt returns the creation time.
func (i Instance) CreatedAt() time.Time { return i.createdAt }
