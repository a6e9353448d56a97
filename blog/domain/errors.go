package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a lookup, update, or delete finds no
	// matching record.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned by SaveAll when the collection revision has
	// advanced past the one the caller read. The caller should re-read and
	// retry.
	ErrConflict = errors.New("collection revision conflict")
)

// ValidationError reports every field that failed the required-field check,
// not just the first one.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid or missing fields: %s", strings.Join(e.Fields, ", "))
}

// StoreError wraps an I/O failure talking to the backing store. The benign
// "collection not yet created" case is not a StoreError; it surfaces as an
// empty collection at revision 0.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
