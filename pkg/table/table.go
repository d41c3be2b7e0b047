package table

import (
	"sync"

	"go-rowstore/pkg/pager"
	"go-rowstore/pkg/row"
	"go-rowstore/util/helpers"

	"github.com/pkg/errors"
)

type State int

const (
	Open State = iota
	Full
)

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Full:
		return "full"
	}
	return "unknown"
}

// Pointer addresses a row slot inside the page list.
type Pointer struct {
	PageId uint32
	Offset int
}

type Stats struct {
	Rows           uint32
	MaxRows        uint32
	RowSize        int
	RowsPerPage    uint32
	PageSize       int
	Pages          int
	AllocatedPages int
	BytesAllocated uint64
}

// Table is an in-memory, append-only store of fixed-size rows.
type Table struct {
	mu sync.RWMutex

	layout      row.Layout
	rowSize     int
	rowsPerPage uint32
	maxRows     uint32
	strict      bool

	pager   *pager.Pager
	numRows uint32
}

func New(opts *Options) (*Table, error) {
	if opts == nil {
		opts = &DefaultOptions
	}

	if err := opts.Layout.Check(); err != nil {
		return nil, errors.Wrap(err, "invalid layout")
	}
	rowSize := opts.Layout.RowSize()
	if opts.PageSize < rowSize {
		return nil, errors.Errorf("page size %d can not hold a %d byte row", opts.PageSize, rowSize)
	}
	if opts.MaxRows == 0 {
		return nil, errors.New("max rows must be positive")
	}

	return &Table{
		layout:      opts.Layout,
		rowSize:     rowSize,
		rowsPerPage: uint32(opts.PageSize / rowSize),
		maxRows:     opts.MaxRows,
		strict:      opts.Strict,
		pager:       pager.New(opts.PageSize),
	}, nil
}

// Locate returns the page and byte offset of row rowNum.
func (t *Table) Locate(rowNum uint32) Pointer {
	return Pointer{
		PageId: rowNum / t.rowsPerPage,
		Offset: int(rowNum%t.rowsPerPage) * t.rowSize,
	}
}

func (t *Table) Layout() row.Layout {
	return t.layout
}

func (t *Table) RowsPerPage() uint32 {
	return t.rowsPerPage
}

func (t *Table) Len() uint32 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.numRows
}

func (t *Table) Cap() uint32 {
	return t.maxRows
}

func (t *Table) IsFull() bool {
	return t.State() == Full
}

func (t *Table) State() State {
	if t.Len() >= t.maxRows {
		return Full
	}
	return Open
}

func (t *Table) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Stats{
		Rows:           t.numRows,
		MaxRows:        t.maxRows,
		RowSize:        t.rowSize,
		RowsPerPage:    t.rowsPerPage,
		PageSize:       t.pager.PageSize(),
		Pages:          t.pager.Count(),
		AllocatedPages: t.pager.Allocated(),
		BytesAllocated: uint64(t.pager.Allocated()) * uint64(t.pager.PageSize()),
	}
}

// rowSlot returns the slot of row rowNum, allocating its page if needed.
// Caller must hold the write lock.
func (t *Table) rowSlot(rowNum uint32) []byte {
	ptr := t.Locate(rowNum)
	page := t.pager.Page(ptr.PageId)
	return page[ptr.Offset : ptr.Offset+t.rowSize]
}

// snapshot returns the current row count together with the pages holding
// those rows.
func (t *Table) snapshot() (uint32, [][]byte) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.numRows, t.pager.Pages(int(helpers.CeilDiv(t.numRows, t.rowsPerPage)))
}
