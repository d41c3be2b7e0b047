// Package customerrors defines the errors shared by the row store packages.
package customerrors

import (
	"errors"
)

var (
	// ErrTableFull is returned by Insert when the table already holds its
	// maximum number of rows. The table is left unchanged.
	ErrTableFull = errors.New("table full")

	// ErrCorruptRow is returned when a stored slot can not be decoded back
	// into a row.
	ErrCorruptRow = errors.New("corrupt row")

	// ErrFieldTooLong is returned when a text field does not fit its slot
	// capacity and truncation is not allowed.
	ErrFieldTooLong = errors.New("field too long")

	// ErrInvalidText is returned when a text field is not valid UTF-8.
	ErrInvalidText = errors.New("invalid UTF-8 text")

	ErrOutOfBounds = errors.New("out of bounds")
)
