package docforge

import (
	"errors"

	"github.com/docforge/docforge/internal/database"
)

// Exported errors for library consumers. Store errors wrap these, so test
// them with errors.Is.
var (
	// ErrNoDatabase indicates no database was configured.
	ErrNoDatabase = errors.New("docforge: no database configured")

	// ErrNotFound indicates a requested row does not exist.
	ErrNotFound = database.ErrNotFound

	// ErrUniqueViolation indicates a duplicate primary key or document type name.
	ErrUniqueViolation = database.ErrUniqueViolation

	// ErrForeignKeyViolation indicates a reference to a missing parent row.
	ErrForeignKeyViolation = database.ErrForeignKeyViolation

	// ErrNotNullViolation indicates a required column was left empty.
	ErrNotNullViolation = database.ErrNotNullViolation

	// ErrSchemaIncomplete indicates tables, columns or constraints are missing.
	ErrSchemaIncomplete = errors.New("docforge: schema incomplete")
)
