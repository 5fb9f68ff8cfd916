// Package seed loads document types and templates from YAML fixture files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/docforge/docforge/domain/document"
	"github.com/docforge/docforge/domain/repository"
	"github.com/docforge/docforge/domain/template"
	"github.com/docforge/docforge/internal/database"
	"github.com/docforge/docforge/internal/log"
)

// ErrInvalidFixture indicates a fixture entry is missing a required field.
var ErrInvalidFixture = errors.New("invalid fixture")

// Fixtures is the root of a seed file.
type Fixtures struct {
	DocumentTypes []DocumentTypeFixture `yaml:"document_types"`
	Templates     []TemplateFixture     `yaml:"templates"`
}

// DocumentTypeFixture describes one document type.
type DocumentTypeFixture struct {
	Name        string `yaml:"name"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
	Fields      string `yaml:"fields"`
	Metadata    string `yaml:"metadata"`
}

// TemplateFixture describes a template and its variables.
type TemplateFixture struct {
	OrgID          string            `yaml:"org_id"`
	Title          string            `yaml:"title"`
	Description    string            `yaml:"description"`
	Jurisdiction   string            `yaml:"jurisdiction"`
	DocType        string            `yaml:"doc_type"`
	SimilarityTags []string          `yaml:"similarity_tags"`
	Body           string            `yaml:"body"`
	Variables      []VariableFixture `yaml:"variables"`
}

// VariableFixture describes a template variable.
type VariableFixture struct {
	Key         string   `yaml:"key"`
	Label       string   `yaml:"label"`
	Description string   `yaml:"description"`
	Example     string   `yaml:"example"`
	Required    *bool    `yaml:"required"`
	Type        string   `yaml:"type"`
	Enum        []string `yaml:"enum"`
	Regex       string   `yaml:"regex"`
}

// Result counts what Load created and what it skipped as already present.
type Result struct {
	TypesCreated     int
	TypesSkipped     int
	TemplatesCreated int
	TemplatesSkipped int
	Variables        int
}

// Parse decodes fixtures and validates required fields.
func Parse(r io.Reader) (Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return Fixtures{}, fmt.Errorf("decode fixtures: %w", err)
	}
	if err := f.validate(); err != nil {
		return Fixtures{}, err
	}
	return f, nil
}

// ParseFile reads and decodes a fixture file.
func ParseFile(path string) (Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("open fixtures: %w", err)
	}
	defer func() { _ = file.Close() }()
	return Parse(file)
}

func (f Fixtures) validate() error {
	for i, t := range f.DocumentTypes {
		if t.Name == "" {
			return fmt.Errorf("%w: document_types[%d] has no name", ErrInvalidFixture, i)
		}
	}
	for i, t := range f.Templates {
		if t.Title == "" {
			return fmt.Errorf("%w: templates[%d] has no title", ErrInvalidFixture, i)
		}
		if t.Body == "" {
			return fmt.Errorf("%w: template %q has no body", ErrInvalidFixture, t.Title)
		}
		for j, v := range t.Variables {
			if v.Key == "" || v.Label == "" {
				return fmt.Errorf("%w: template %q variables[%d] needs key and label", ErrInvalidFixture, t.Title, j)
			}
		}
	}
	return nil
}

// Loader writes fixtures through the stores.
type Loader struct {
	types     document.TypeStore
	templates template.TemplateStore
	logger    *log.Logger
}

// NewLoader creates a Loader. A nil logger logs to the slog default.
func NewLoader(types document.TypeStore, templates template.TemplateStore, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.FromSlog(slog.Default())
	}
	return &Loader{types: types, templates: templates, logger: logger}
}

// Load creates missing document types (matched by name) and templates
// (matched by tenant and title). Existing rows are left untouched.
func (l *Loader) Load(ctx context.Context, f Fixtures) (Result, error) {
	var res Result

	for _, fx := range f.DocumentTypes {
		created, err := l.loadType(ctx, fx)
		if err != nil {
			return res, err
		}
		if created {
			res.TypesCreated++
		} else {
			res.TypesSkipped++
		}
	}

	for _, fx := range f.Templates {
		n, created, err := l.loadTemplate(ctx, fx)
		if err != nil {
			return res, err
		}
		if created {
			res.TemplatesCreated++
			res.Variables += n
		} else {
			res.TemplatesSkipped++
		}
	}

	l.logger.InfoContext(ctx, "fixtures loaded",
		slog.Int("types_created", res.TypesCreated),
		slog.Int("types_skipped", res.TypesSkipped),
		slog.Int("templates_created", res.TemplatesCreated),
		slog.Int("templates_skipped", res.TemplatesSkipped),
		slog.Int("variables", res.Variables),
	)
	return res, nil
}

func (l *Loader) loadType(ctx context.Context, fx DocumentTypeFixture) (bool, error) {
	_, err := l.types.GetByName(ctx, fx.Name)
	if err == nil {
		l.logger.DebugContext(ctx, "document type exists", slog.String("name", fx.Name))
		return false, nil
	}
	if !errors.Is(err, database.ErrNotFound) {
		return false, fmt.Errorf("find document type %q: %w", fx.Name, err)
	}

	t := document.NewType(fx.Name).
		WithDetails(fx.Category, fx.Description).
		WithFields(fx.Fields).
		WithMetadata(fx.Metadata)
	if _, err := l.types.Save(ctx, t); err != nil {
		return false, fmt.Errorf("save document type %q: %w", fx.Name, err)
	}
	return true, nil
}

func (l *Loader) loadTemplate(ctx context.Context, fx TemplateFixture) (int, bool, error) {
	if fx.OrgID != "" {
		ctx = log.WithOrgID(ctx, fx.OrgID)
	}
	exists, err := l.templates.Exists(ctx, repository.WithTenant(fx.OrgID), repository.WithCondition("title", fx.Title))
	if err != nil {
		return 0, false, fmt.Errorf("find template %q: %w", fx.Title, err)
	}
	if exists {
		l.logger.DebugContext(ctx, "template exists", slog.String("title", fx.Title))
		return 0, false, nil
	}

	tpl, err := template.NewTemplate(fx.OrgID, fx.Title, fx.Body)
	if err != nil {
		return 0, false, fmt.Errorf("template %q: %w", fx.Title, err)
	}
	tpl = tpl.WithDescription(fx.Description, fx.Jurisdiction, fx.DocType)
	if fx.SimilarityTags != nil {
		tpl = tpl.WithSimilarityTags(fx.SimilarityTags...)
	}

	vars := make([]template.Variable, 0, len(fx.Variables))
	for _, v := range fx.Variables {
		vars = append(vars, v.toVariable())
	}

	_, saved, err := l.templates.SaveWithVariables(ctx, tpl, vars)
	if err != nil {
		return 0, false, fmt.Errorf("save template %q: %w", fx.Title, err)
	}
	l.logger.InfoContext(ctx, "template created",
		slog.String("title", fx.Title),
		slog.Int("variables", len(saved)),
	)
	return len(saved), true, nil
}

func (v VariableFixture) toVariable() template.Variable {
	out := template.NewVariable("", v.Key, v.Label).
		WithHelp(v.Description, v.Example)
	if v.Required != nil {
		out = out.WithRequired(*v.Required)
	}
	if v.Type != "" {
		out = out.WithType(template.VariableType(v.Type))
	}
	if v.Enum != nil {
		out = out.WithEnum(v.Enum...)
	}
	if v.Regex != "" {
		out = out.WithRegex(v.Regex)
	}
	return out
}
