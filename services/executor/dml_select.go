package executor

import (
	"bytes"
	"fmt"
	"io"
	"text/tabwriter"

	"go-rowstore/pkg/row"
	"go-rowstore/services/parser/query"

	"github.com/pkg/errors"
)

func (es *ExecutorService) dmlSelect(q *query.QuerySelect) (io.WriterTo, error) {
	buf := &bytes.Buffer{}
	w := tabwriter.NewWriter(buf, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "ID\tUsername\tEmail")
	fmt.Fprintln(w, "--\t--------\t-----")

	n := 0
	err := es.table.Scan(func(_ uint32, r row.Row) (bool, error) {
		n++
		_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", r.Id, r.Username, r.Email)
		return false, err
	})
	if err != nil {
		es.log.WithError(err).Error("scan failed")
		return nil, errors.WithMessage(err, "select")
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	fmt.Fprintf(buf, "(%d rows)\n", n)

	es.log.WithField("rows", n).Debug("scan finished")
	return buf, nil
}
