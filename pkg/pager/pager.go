// Package pager keeps a sparse list of fixed-size, zero-initialized page
// buffers. A page gets its backing memory on first access.
package pager

func New(pageSize int) *Pager {
	return &Pager{
		pageSize: pageSize,
		pages:    [][]byte{},
	}
}

type Pager struct {
	pageSize  int
	pages     [][]byte
	allocated int
}

// Page returns the buffer of page id, growing the page list and allocating
// the buffer if needed. The buffer is always PageSize bytes long.
func (p *Pager) Page(id uint32) []byte {
	if int(id) >= len(p.pages) {
		p.grow(int(id) + 1)
	}

	if p.pages[id] == nil {
		p.pages[id] = make([]byte, p.pageSize)
		p.allocated++
	}
	return p.pages[id]
}

// Lookup returns the buffer of page id without allocating it.
func (p *Pager) Lookup(id uint32) ([]byte, bool) {
	if int(id) >= len(p.pages) || p.pages[id] == nil {
		return nil, false
	}
	return p.pages[id], true
}

// Pages returns the first n entries of the page list. Unallocated and
// missing entries are nil. The returned slice is a copy.
func (p *Pager) Pages(n int) [][]byte {
	out := make([][]byte, n)
	copy(out, p.pages)
	return out
}

// Count returns the length of the page list, allocated or not.
func (p *Pager) Count() int {
	return len(p.pages)
}

// Allocated returns the number of pages with backing memory.
func (p *Pager) Allocated() int {
	return p.allocated
}

func (p *Pager) PageSize() int {
	return p.pageSize
}

func (p *Pager) grow(n int) {
	for len(p.pages) < n {
		p.pages = append(p.pages, nil)
	}
}
