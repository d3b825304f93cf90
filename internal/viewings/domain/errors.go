package domain

import (
	"errors"
	"fmt"
)

// ViewingNotFoundError is returned when no viewing has the requested GUID.
type ViewingNotFoundError struct {
	GUID string
}

// Error implements the error interface.
func (e *ViewingNotFoundError) Error() string {
	return fmt.Sprintf("viewing not found: guid=%q", e.GUID)
}

// ErrAlreadySaved is returned when Save is given a viewing that has an ID.
var ErrAlreadySaved = errors.New("viewing already saved")
