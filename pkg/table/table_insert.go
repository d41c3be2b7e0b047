package table

import (
	"go-rowstore/pkg/customerrors"
	"go-rowstore/pkg/row"

	"github.com/pkg/errors"
)

// Insert appends r after the last stored row. A full table, or a too long
// field in strict mode, leaves the table unchanged.
func (t *Table) Insert(r row.Row) error {
	var err error
	if t.strict {
		err = t.layout.Validate(r)
	} else {
		err = row.CheckEncoding(r)
	}
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.numRows >= t.maxRows {
		return errors.Wrapf(customerrors.ErrTableFull, "%d rows", t.maxRows)
	}

	t.layout.Encode(r, t.rowSlot(t.numRows))
	t.numRows++
	return nil
}
