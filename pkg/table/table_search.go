package table

import (
	"iter"

	"go-rowstore/pkg/customerrors"
	"go-rowstore/pkg/row"

	"github.com/pkg/errors"
)

// Scan calls scanFn for every row in insertion order, until scanFn returns
// true or an error. Rows inserted after Scan started are not visited.
//
// A slot that can not be decoded ends the scan with an error wrapping
// customerrors.ErrCorruptRow. Rows before it have already been passed to
// scanFn.
func (t *Table) Scan(scanFn func(rowNum uint32, r row.Row) (bool, error)) error {
	n, pages := t.snapshot()

	for i := uint32(0); i < n; i++ {
		ptr := t.Locate(i)
		page := pages[ptr.PageId]

		r, err := t.layout.Decode(page[ptr.Offset : ptr.Offset+t.rowSize])
		if err != nil {
			return errors.Wrapf(err, "row %d", i)
		}

		stop, err := scanFn(i, r)
		if err != nil {
			return err
		} else if stop {
			return nil
		}
	}
	return nil
}

// Rows returns the rows of the table as a sequence. Each range over it
// starts a new scan. A corrupt slot is reported as a single row with a
// non-nil error, after which the sequence ends.
func (t *Table) Rows() iter.Seq2[row.Row, error] {
	return func(yield func(row.Row, error) bool) {
		err := t.Scan(func(_ uint32, r row.Row) (bool, error) {
			return !yield(r, nil), nil
		})
		if err != nil {
			yield(row.Row{}, err)
		}
	}
}

// Get returns row rowNum.
func (t *Table) Get(rowNum uint32) (row.Row, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if rowNum >= t.numRows {
		return row.Row{}, errors.Wrapf(customerrors.ErrOutOfBounds, "row %d of %d", rowNum, t.numRows)
	}

	ptr := t.Locate(rowNum)
	page, _ := t.pager.Lookup(ptr.PageId)

	r, err := t.layout.Decode(page[ptr.Offset : ptr.Offset+t.rowSize])
	if err != nil {
		return row.Row{}, errors.Wrapf(err, "row %d", rowNum)
	}
	return r, nil
}
