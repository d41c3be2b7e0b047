package executor

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"go-rowstore/services/parser/kwords"
	"go-rowstore/services/parser/query"

	"github.com/dustin/go-humanize"
)

func (es *ExecutorService) meta(q *query.QueryMeta) (io.WriterTo, error) {
	switch q.Command {
		case kwords.Exit:  return nil, ErrExit
		case kwords.Stats: return es.stats()
		default:           panic(fmt.Errorf("invalid meta command: '%s'", q.Command))
	}
}

func (es *ExecutorService) stats() (io.WriterTo, error) {
	s := es.table.Stats()

	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "state:\t%s\n", es.table.State())
	fmt.Fprintf(w, "rows:\t%s / %s\n", humanize.Comma(int64(s.Rows)), humanize.Comma(int64(s.MaxRows)))
	fmt.Fprintf(w, "row size:\t%s\n", humanize.Bytes(uint64(s.RowSize)))
	fmt.Fprintf(w, "page size:\t%s (%d rows)\n", humanize.Bytes(uint64(s.PageSize)), s.RowsPerPage)
	fmt.Fprintf(w, "pages:\t%d allocated of %d\n", s.AllocatedPages, s.Pages)
	fmt.Fprintf(w, "memory:\t%s\n", humanize.Bytes(s.BytesAllocated))
	if err := w.Flush(); err != nil {
		return nil, err
	}

	return buf, nil
}
