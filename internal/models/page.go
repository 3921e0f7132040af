package models

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page selects a window of an ordered result set.
type Page struct {
	Offset int
	Limit  int
}
