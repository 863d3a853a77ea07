package services

import "faculty-portal/app/repo"

// RecordService fronts one activity category. Field tuples are stored
// verbatim; required-field policing stays at the boundary.
type RecordService[T any] struct{ records *repo.RecordRepository[T] }

func NewRecordService[T any](records *repo.RecordRepository[T]) *RecordService[T] {
	return &RecordService[T]{records: records}
}

func (s *RecordService[T]) Create(rec *T) error { return s.records.Create(rec) }

func (s *RecordService[T]) List() ([]T, error) { return s.records.List() }
