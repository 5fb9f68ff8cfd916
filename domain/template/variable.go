package template

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// VariableType is the value type a template variable accepts.
type VariableType string

// VariableTypeString is the default variable type.
const VariableTypeString VariableType = "string"

// Variable is a placeholder a user fills in when drafting from a template.
type Variable struct {
	id          string
	templateID  string
	key         string
	label       string
	description string
	example     string
	required    bool
	enum        []string
	regex       string
	typ         VariableType
	createdAt   time.Time
}

// NewVariable creates a required string variable.
func NewVariable(templateID, key, label string) Variable {
	return Variable{
		id:         uuid.NewString(),
		templateID: templateID,
		key:        key,
		label:      label,
		required:   true,
		typ:        VariableTypeString,
	}
}

// ReconstructVariable recreates a variable from persistence.
func ReconstructVariable(
	id, templateID, key, label, description, example string,
	required bool,
	enum []string,
	regex string,
	typ VariableType,
	createdAt time.Time,
) Variable {
	return Variable{
		id:          id,
		templateID:  templateID,
		key:         key,
		label:       label,
		description: description,
		example:     example,
		required:    required,
		enum:        slices.Clone(enum),
		regex:       regex,
		typ:         typ,
		createdAt:   createdAt,
	}
}

// ID returns the variable identifier.
func (v Variable) ID() string { return v.id }

// TemplateID returns the owning template id.
func (v Variable) TemplateID() string { return v.templateID }

// Key returns the placeholder key.
func (v Variable) Key() string { return v.key }

// Label returns the human-readable label.
func (v Variable) Label() string { return v.label }

// Description returns the help text.
func (v Variable) Description() string { return v.description }

// Example returns an example value.
func (v Variable) Example() string { return v.example }

// Required reports whether a value must be supplied.
func (v Variable) Required() bool { return v.required }

// Enum returns a copy of the allowed values, in order.
func (v Variable) Enum() []string { return slices.Clone(v.enum) }

// Regex returns the validation pattern, if any.
func (v Variable) Regex() string { return v.regex }

// Type returns the value type.
func (v Variable) Type() VariableType { return v.typ }

// CreatedAt returns the creation time.
func (v Variable) CreatedAt() time.Time { return v.createdAt }

// ForTemplate returns a copy attached to the given template.
func (v Variable) ForTemplate(templateID string) Variable {
	v.templateID = templateID
	return v
}

// WithHelp returns a copy with description and example set.
func (v Variable) WithHelp(description, example string) Variable {
	v.description = description
	v.example = example
	return v
}

// WithRequired returns a copy with the required flag set.
func (v Variable) WithRequired(required bool) Variable {
	v.required = required
	return v
}

// WithEnum returns a copy restricted to the given values.
func (v Variable) WithEnum(values ...string) Variable {
	v.enum = slices.Clone(values)
	return v
}

// WithRegex returns a copy with a validation pattern.
func (v Variable) WithRegex(regex string) Variable {
	v.regex = regex
	return v
}

// WithType returns a copy with the given value type. An empty type resets
// to VariableTypeString.
func (v Variable) WithType(typ VariableType) Variable {
	if typ == "" {
		typ = VariableTypeString
	}
	v.typ = typ
	return v
}
