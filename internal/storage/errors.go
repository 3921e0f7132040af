// Package storage holds the contract shared by repositories and services:
// storage error sentinels and the transaction manager.
package storage

import "errors"

var (
	// ErrNotFound is returned when no live row matches the lookup.
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when a write hits a unique constraint.
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrStaleWrite is returned when a version-conditioned write matched no row.
	ErrStaleWrite = errors.New("stale write: version changed since read")
)
