package template

import (
	"errors"
	"fmt"
)

// ErrMissingColumn matches any *MissingColumnError via errors.Is.
var ErrMissingColumn = errors.New("missing required column")

// MissingColumnError names the record and column that broke the contract.
type MissingColumnError struct {
	Entity Kind
	Key    string
	Column string
	Empty  bool // the column exists but the cell is blank
}

func (e *MissingColumnError) Error() string {
	if e.Empty {
		return fmt.Sprintf("%s %q: %s %q is empty", e.Entity, e.Key, ErrMissingColumn, e.Column)
	}
	return fmt.Sprintf("%s %q: %s %q", e.Entity, e.Key, ErrMissingColumn, e.Column)
}

func (e *MissingColumnError) Is(target error) bool { return target == ErrMissingColumn }
