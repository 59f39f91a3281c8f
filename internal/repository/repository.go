package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// PersistenceError wraps a database failure with the entity and operation
// it happened on. The driver error stays reachable through Unwrap but is
// never reinterpreted here.
type PersistenceError struct {
	Entity string
	Op     string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("error %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Base implements the operation set shared by all nine repositories.
// Each entity configures its primary-key column and the relation set
// loaded on reads; that relation set is part of the API contract and
// must not drift per entity.
type Base[T any] struct {
	db       *gorm.DB
	entity   string
	pk       string
	preloads []string
}

func NewBase[T any](db *gorm.DB, entity, pk string, preloads ...string) Base[T] {
	return Base[T]{db: db, entity: entity, pk: pk, preloads: preloads}
}

func (r *Base[T]) wrap(op string, err error) error {
	return &PersistenceError{Entity: r.entity, Op: op, Err: err}
}

func (r *Base[T]) query(extra ...string) *gorm.DB {
	tx := r.db
	for _, p := range r.preloads {
		tx = tx.Preload(p)
	}
	for _, p := range extra {
		tx = tx.Preload(p)
	}
	return tx
}

// Create inserts the record and fills in its generated id. Associations
// already attached to the record are persisted along with it.
func (r *Base[T]) Create(record *T) (*T, error) {
	if err := r.db.Create(record).Error; err != nil {
		return nil, r.wrap("creating", err)
	}
	return record, nil
}

// ReadByID loads one record with its declared relations. A missing id is
// a normal outcome and comes back as (nil, nil).
func (r *Base[T]) ReadByID(id uint, extraPreloads ...string) (*T, error) {
	var out T
	err := r.query(extraPreloads...).First(&out, r.pk+" = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.wrap("reading", err)
	}
	return &out, nil
}

// Update applies only the supplied columns, then re-fetches the hydrated
// record. The two statements are deliberately not wrapped in a
// transaction: a concurrent delete in between surfaces as not-found on
// the re-fetch, which callers already handle.
func (r *Base[T]) Update(id uint, fields map[string]any) (*T, error) {
	if len(fields) == 0 {
		return r.ReadByID(id)
	}
	res := r.db.Model(new(T)).Where(r.pk+" = ?", id).Updates(fields)
	if res.Error != nil {
		return nil, r.wrap("updating", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return r.ReadByID(id)
}

// Delete reports true iff exactly one row went away. Dependent rows are
// removed or nulled by the database per the schema's cascade rules.
func (r *Base[T]) Delete(id uint) (bool, error) {
	res := r.db.Delete(new(T), r.pk+" = ?", id)
	if res.Error != nil {
		return false, r.wrap("deleting", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (r *Base[T]) ReadAll() ([]T, error) {
	var out []T
	if err := r.query().Find(&out).Error; err != nil {
		return nil, r.wrap("listing", err)
	}
	return out, nil
}

// FindBy returns every record whose column matches the value, relations
// loaded as on any other read.
func (r *Base[T]) FindBy(column string, value any) ([]T, error) {
	var out []T
	if err := r.query().Where(column+" = ?", value).Find(&out).Error; err != nil {
		return nil, r.wrap("querying", err)
	}
	return out, nil
}

// DeleteBy removes every row matching the column and reports how many went.
func (r *Base[T]) DeleteBy(column string, value any) (int64, error) {
	res := r.db.Where(column+" = ?", value).Delete(new(T))
	if res.Error != nil {
		return 0, r.wrap("deleting", res.Error)
	}
	return res.RowsAffected, nil
}
