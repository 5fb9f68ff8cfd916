// Package persistence provides the database schema and GORM-backed stores.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/docforge/docforge/internal/database"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// uniqueTypeName is the unique index on document_types.name.
const uniqueTypeName = "document_types_name_key"

// allModels returns every GORM model that AutoMigrate manages, parents first.
func allModels() []any {
	return []any{
		&DocumentTypeModel{},
		&DocumentModel{},
		&DocumentVariableModel{},
		&TemplateModel{},
		&TemplateVariableModel{},
		&InstanceModel{},
		&ChatMessageModel{},
	}
}

// foreignKeys lists the belongs-to associations that carry a database
// foreign key, keyed by the child model.
func foreignKeys() []struct {
	model    any
	relation string
	label    string
} {
	return []struct {
		model    any
		relation string
		label    string
	}{
		{&DocumentModel{}, "DocumentType", "documents.document_type_id -> document_types.id"},
		{&DocumentVariableModel{}, "Document", "document_variables.document_id -> documents.id"},
		{&TemplateVariableModel{}, "Template", "template_variables.template_id -> templates.id"},
		{&InstanceModel{}, "Template", "instances.template_id -> templates.id"},
	}
}

// AutoMigrate creates or updates every table, foreign key and index.
// It is safe to run on every startup.
func AutoMigrate(db database.Database) error {
	gdb := db.GORM()

	if db.IsSQLite() {
		// SQLite rebuilds a table to alter a column. With foreign keys on, the
		// DROP inside that rebuild would fire ON DELETE actions on child rows.
		if err := gdb.Exec("PRAGMA foreign_keys = OFF").Error; err != nil {
			return fmt.Errorf("disable foreign keys: %w", err)
		}
		defer func() {
			if err := gdb.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
				slog.Error("re-enable foreign keys", "error", err)
			}
		}()
	}

	if err := gdb.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return postMigrate(db)
}

// postMigrate drops foreign keys created by the legacy SQL migrations once
// the GORM-managed equivalents exist. Databases created by them carry
// both after AutoMigrate; the actions are identical, so one set is enough.
func postMigrate(db database.Database) error {
	if !db.IsPostgres() {
		return nil
	}

	gdb := db.GORM()
	legacy := []struct{ table, name string }{
		{"documents", "documents_document_type_id_fkey"},
		{"document_variables", "document_variables_document_id_fkey"},
		{"template_variables", "template_variables_template_id_fkey"},
		{"instances", "instances_template_id_fkey"},
	}
	for _, fk := range legacy {
		if err := gdb.Exec(fmt.Sprintf(
			`ALTER TABLE %q DROP CONSTRAINT IF EXISTS %q`, fk.table, fk.name,
		)).Error; err != nil {
			return fmt.Errorf("drop legacy constraint %s.%s: %w", fk.table, fk.name, err)
		}
	}
	return nil
}

// SchemaCheck is the outcome of looking for one schema object.
type SchemaCheck struct {
	Kind    string
	Name    string
	Present bool
}

// SchemaReport lists every schema object CheckSchema looked for.
type SchemaReport struct {
	Checks []SchemaCheck
}

// OK reports whether every object is present.
func (r SchemaReport) OK() bool {
	return len(r.Missing()) == 0
}

// Missing returns "kind name" for every absent object.
func (r SchemaReport) Missing() []string {
	var missing []string
	for _, c := range r.Checks {
		if !c.Present {
			missing = append(missing, c.Kind+" "+c.Name)
		}
	}
	return missing
}

// String renders the report one object per line.
func (r SchemaReport) String() string {
	var b strings.Builder
	for _, c := range r.Checks {
		mark := "ok     "
		if !c.Present {
			mark = "MISSING"
		}
		fmt.Fprintf(&b, "%s  %-6s %s\n", mark, c.Kind, c.Name)
	}
	return b.String()
}

// CheckSchema verifies that every table, column, foreign key and the unique
// index exist. Tables are inspected concurrently.
func CheckSchema(ctx context.Context, db database.Database) (SchemaReport, error) {
	models := allModels()
	perModel := make([][]SchemaCheck, len(models))

	g, gctx := errgroup.WithContext(ctx)
	for i, model := range models {
		g.Go(func() error {
			checks, err := checkModel(db.Session(gctx), model)
			if err != nil {
				return err
			}
			perModel[i] = checks
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return SchemaReport{}, err
	}

	var report SchemaReport
	for _, checks := range perModel {
		report.Checks = append(report.Checks, checks...)
	}

	migrator := db.Session(ctx).Migrator()
	for _, fk := range foreignKeys() {
		report.Checks = append(report.Checks, SchemaCheck{
			Kind:    "fk",
			Name:    fk.label,
			Present: migrator.HasConstraint(fk.model, fk.relation),
		})
	}
	report.Checks = append(report.Checks, SchemaCheck{
		Kind:    "index",
		Name:    uniqueTypeName,
		Present: migrator.HasIndex(&DocumentTypeModel{}, uniqueTypeName),
	})
	return report, nil
}

func checkModel(gdb *gorm.DB, model any) ([]SchemaCheck, error) {
	stmt := &gorm.Statement{DB: gdb}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("parse model schema: %w", err)
	}

	migrator := gdb.Migrator()
	if !migrator.HasTable(model) {
		return []SchemaCheck{{Kind: "table", Name: stmt.Table}}, nil
	}
	checks := []SchemaCheck{{Kind: "table", Name: stmt.Table, Present: true}}

	columnTypes, err := migrator.ColumnTypes(model)
	if err != nil {
		return nil, fmt.Errorf("get column types for %s: %w", stmt.Table, err)
	}
	actual := make(map[string]bool, len(columnTypes))
	for _, ct := range columnTypes {
		actual[ct.Name()] = true
	}
	for _, name := range stmt.Schema.DBNames {
		checks = append(checks, SchemaCheck{
			Kind:    "column",
			Name:    stmt.Table + "." + name,
			Present: actual[name],
		})
	}
	return checks, nil
}
