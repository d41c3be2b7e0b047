package table

import (
	"go-rowstore/pkg/row"
)

// DefaultOptions to be used by New().
var DefaultOptions = Options{
	PageSize: 4096,
	MaxRows:  10000,
	Layout:   row.DefaultLayout,
}

// Options represents the configuration options for the table.
type Options struct {
	// PageSize is the size of a page buffer in bytes. A page holds
	// PageSize / RowSize rows, the remainder is left unused.
	PageSize int

	// MaxRows caps the number of rows the table accepts.
	MaxRows uint32

	// Layout of a row slot.
	Layout row.Layout

	// Strict rejects rows with text longer than its field instead of
	// truncating it.
	Strict bool
}
