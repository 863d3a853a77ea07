package repo

import (
	"fmt"

	"gorm.io/gorm"
)

// RecordRepository is the one store shared by every activity category.
// A category differs only in its row type and in the date column its
// listing is ordered by.
type RecordRepository[T any] struct {
	db        *gorm.DB
	dateField string
}

func NewRecordRepository[T any](db *gorm.DB, dateField string) *RecordRepository[T] {
	return &RecordRepository[T]{db: db, dateField: dateField}
}

func (r *RecordRepository[T]) Create(rec *T) error { return r.db.Create(rec).Error }

// List returns every row, newest date first. Equal dates keep
// insertion order via the ascending id tiebreak.
func (r *RecordRepository[T]) List() ([]T, error) {
	var recs []T
	err := r.db.Order(fmt.Sprintf("%s DESC, id ASC", r.dateField)).Find(&recs).Error
	return recs, err
}
