package services

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// MutationError records which write failed. The cause is kept for logs and
// for errors.Is/As; users only ever see a generic message.
type MutationError struct {
	Op     string
	Entity string
	Err    error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

func mutationErr(op, entity string, err error) error {
	if err == nil {
		return nil
	}
	return &MutationError{Op: op, Entity: entity, Err: err}
}

// IsConstraintViolation reports whether err was raised by a NOT NULL,
// foreign key, unique or check constraint.
func IsConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code {
	case "23502", "23503", "23505", "23514":
		return true
	}
	return false
}
