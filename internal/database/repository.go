package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/docforge/docforge/domain/repository"
	"gorm.io/gorm"
)

// ErrNotFound indicates the requested entity was not found.
var ErrNotFound = errors.New("entity not found")

// EntityMapper defines the interface for mapping between domain and database model types.
type EntityMapper[D any, E any] interface {
	ToDomain(entity E) D
	ToModel(domain D) E
}

// Repository provides generic persistence operations for database entities
// using repository.Option-based queries. Errors are passed through Classify.
type Repository[D any, E any] struct {
	db     Database
	mapper EntityMapper[D, E]
	label  string
}

// NewRepository creates a new Repository.
func NewRepository[D any, E any](db Database, mapper EntityMapper[D, E], label string) Repository[D, E] {
	return Repository[D, E]{
		db:     db,
		mapper: mapper,
		label:  label,
	}
}

// Find retrieves entities matching the given options.
func (r Repository[D, E]) Find(ctx context.Context, options ...repository.Option) ([]D, error) {
	var entities []E
	db := ApplyOptions(r.modelDB(ctx), options...)
	if err := db.Find(&entities).Error; err != nil {
		return nil, fmt.Errorf("find %s: %w", r.label, Classify(err))
	}

	domains := make([]D, len(entities))
	for i, entity := range entities {
		domains[i] = r.mapper.ToDomain(entity)
	}
	return domains, nil
}

// FindOne retrieves a single entity matching the given options.
func (r Repository[D, E]) FindOne(ctx context.Context, options ...repository.Option) (D, error) {
	var entity E
	var zero D
	db := ApplyOptions(r.db.Session(ctx), options...)
	if err := db.First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%w: %s", ErrNotFound, r.label)
		}
		return zero, fmt.Errorf("find one %s: %w", r.label, Classify(err))
	}
	return r.mapper.ToDomain(entity), nil
}

// Exists checks if any entity matches the given options.
func (r Repository[D, E]) Exists(ctx context.Context, options ...repository.Option) (bool, error) {
	count, err := r.Count(ctx, options...)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count returns the number of entities matching the given options.
func (r Repository[D, E]) Count(ctx context.Context, options ...repository.Option) (int64, error) {
	var count int64
	db := ApplyConditions(r.modelDB(ctx), options...)
	if err := db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count %s: %w", r.label, Classify(err))
	}
	return count, nil
}

// DeleteBy removes entities matching the given options. At least one
// condition is required so a bare call cannot empty the table.
func (r Repository[D, E]) DeleteBy(ctx context.Context, options ...repository.Option) error {
	if len(repository.Build(options...).Conditions()) == 0 {
		return fmt.Errorf("delete %s: no conditions given", r.label)
	}
	db := ApplyConditions(r.db.Session(ctx), options...)
	if err := db.Delete(new(E)).Error; err != nil {
		return fmt.Errorf("delete %s: %w", r.label, Classify(err))
	}
	return nil
}

// Timestamped is implemented by models that carry created/updated times.
// Touch is called with the current time before every write.
type Timestamped interface {
	Touch(now Timestamp)
}

func touch[E any](model *E) {
	if t, ok := any(model).(Timestamped); ok {
		t.Touch(Now())
	}
}

// Create inserts the entity and returns it as stored.
func (r Repository[D, E]) Create(ctx context.Context, domain D) (D, error) {
	return r.CreateTx(r.db.Session(ctx), domain)
}

// CreateTx inserts the entity using the given session, typically a transaction.
func (r Repository[D, E]) CreateTx(tx *gorm.DB, domain D) (D, error) {
	model := r.mapper.ToModel(domain)
	touch(&model)
	if err := tx.Create(&model).Error; err != nil {
		var zero D
		return zero, fmt.Errorf("create %s: %w", r.label, Classify(err))
	}
	return r.mapper.ToDomain(model), nil
}

// CreateAllTx inserts the entities in batches of batchSize using the given
// session. Rows are stamped one millisecond apart in input order.
func (r Repository[D, E]) CreateAllTx(tx *gorm.DB, domains []D, batchSize int) ([]D, error) {
	if len(domains) == 0 {
		return []D{}, nil
	}

	now := Now()
	models := make([]E, len(domains))
	for i, d := range domains {
		models[i] = r.mapper.ToModel(d)
		if t, ok := any(&models[i]).(Timestamped); ok {
			t.Touch(now.Step(i))
		}
	}
	if err := tx.CreateInBatches(&models, batchSize).Error; err != nil {
		return nil, fmt.Errorf("create %s: %w", r.label, Classify(err))
	}

	out := make([]D, len(models))
	for i, m := range models {
		out[i] = r.mapper.ToDomain(m)
	}
	return out, nil
}

// Save updates every column except created_at of the row carrying the
// entity's primary key, inserting the row when none exists.
func (r Repository[D, E]) Save(ctx context.Context, domain D) (D, error) {
	return r.SaveTx(r.db.Session(ctx), domain)
}

// SaveTx is Save using the given session.
func (r Repository[D, E]) SaveTx(tx *gorm.DB, domain D) (D, error) {
	model := r.mapper.ToModel(domain)
	touch(&model)

	result := tx.Model(&model).Select("*").Omit("created_at").Updates(&model)
	if result.Error != nil {
		var zero D
		return zero, fmt.Errorf("update %s: %w", r.label, Classify(result.Error))
	}
	if result.RowsAffected == 0 {
		if err := tx.Create(&model).Error; err != nil {
			var zero D
			return zero, fmt.Errorf("create %s: %w", r.label, Classify(err))
		}
	}
	return r.mapper.ToDomain(model), nil
}

// DeleteModel removes the row matching the entity's primary key.
func (r Repository[D, E]) DeleteModel(ctx context.Context, domain D) error {
	return r.DeleteModelTx(r.db.Session(ctx), domain)
}

// DeleteModelTx is DeleteModel using the given session.
func (r Repository[D, E]) DeleteModelTx(tx *gorm.DB, domain D) error {
	model := r.mapper.ToModel(domain)
	result := tx.Delete(&model)
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.label, Classify(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, r.label)
	}
	return nil
}

// DB returns a GORM session for custom queries.
func (r Repository[D, E]) DB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx)
}

// Database returns the underlying Database.
func (r Repository[D, E]) Database() Database {
	return r.db
}

// Label returns the entity label used in error messages.
func (r Repository[D, E]) Label() string {
	return r.label
}

// Mapper returns the entity mapper for external use.
func (r Repository[D, E]) Mapper() EntityMapper[D, E] {
	return r.mapper
}

func (r Repository[D, E]) modelDB(ctx context.Context) *gorm.DB {
	return r.db.Session(ctx).Model(new(E))
}
