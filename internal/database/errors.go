package database

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// Constraint failures reported by the storage engine, independent of dialect.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
)

// PostgreSQL SQLSTATE codes.
const (
	pgNotNullViolation    = "23502"
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Classify maps a driver or GORM error onto this package's sentinel errors.
// The original error stays in the chain so callers can still inspect it.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUniqueViolation),
		errors.Is(err, ErrForeignKeyViolation), errors.Is(err, ErrNotNullViolation):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrUniqueViolation, err)
	case IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	case IsNotNullViolation(err):
		return fmt.Errorf("%w: %w", ErrNotNullViolation, err)
	default:
		return err
	}
}

// IsUniqueViolation reports whether err is a duplicate key error.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgUniqueViolation
	}
	if sqliteErr, ok := asSQLiteError(err); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// IsForeignKeyViolation reports whether err is a referential integrity error.
func IsForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgForeignKeyViolation
	}
	if sqliteErr, ok := asSQLiteError(err); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// IsNotNullViolation reports whether err is a missing required column error.
// GORM does not translate these, so the driver error is inspected directly.
func IsNotNullViolation(err error) bool {
	if pgErr, ok := asPgError(err); ok {
		return pgErr.Code == pgNotNullViolation
	}
	if sqliteErr, ok := asSQLiteError(err); ok {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintNotNull
	}
	return false
}

func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

func asSQLiteError(err error) (sqlite3.Error, bool) {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr, true
	}
	return sqlite3.Error{}, false
}
