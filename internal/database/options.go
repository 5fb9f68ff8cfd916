package database

import (
	"github.com/docforge/docforge/domain/repository"
	"gorm.io/gorm"
)

// ApplyOptions builds a repository.Query from the given options and applies
// it to a GORM session. Column names are quoted by the active dialect since
// several columns are camel-case.
func ApplyOptions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	q := repository.Build(options...)
	db = applyConditions(db, q)

	for _, ord := range q.Orders() {
		dir := " ASC"
		if !ord.Ascending() {
			dir = " DESC"
		}
		db = db.Order(db.Statement.Quote(ord.Field()) + dir)
	}

	if q.LimitValue() > 0 {
		db = db.Limit(q.LimitValue())
	}
	if q.OffsetValue() > 0 {
		db = db.Offset(q.OffsetValue())
	}
	return db
}

// ApplyConditions applies only WHERE conditions (no limit/offset/order) for
// COUNT and DELETE queries.
func ApplyConditions(db *gorm.DB, options ...repository.Option) *gorm.DB {
	return applyConditions(db, repository.Build(options...))
}

func applyConditions(db *gorm.DB, q repository.Query) *gorm.DB {
	for _, cond := range q.Conditions() {
		column := db.Statement.Quote(cond.Field())
		switch cond.Operator() {
		case repository.OpIn:
			db = db.Where(column+" IN ?", cond.Value())
		case repository.OpIsNull:
			db = db.Where(column + " IS NULL")
		default:
			db = db.Where(column+" = ?", cond.Value())
		}
	}
	return db
}
