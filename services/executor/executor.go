package executor

import (
	"errors"
	"fmt"
	"io"

	"go-rowstore/pkg/table"
	"go-rowstore/services/parser/query"

	"github.com/sirupsen/logrus"
)

// ErrExit is returned for the .exit command. The caller is expected to stop
// reading input.
var ErrExit = errors.New("exit requested")

type ExecutorService struct {
	table *table.Table
	log   logrus.FieldLogger
}

func New(t *table.Table, log logrus.FieldLogger) *ExecutorService {
	return &ExecutorService{
		table: t,
		log:   log,
	}
}

func (es *ExecutorService) Exec(q query.Querier) (io.WriterTo, error) {
	switch q.GetType() {
		case query.INSERT: return es.dmlInsert(q.(*query.QueryInsert))
		case query.SELECT: return es.dmlSelect(q.(*query.QuerySelect))
		case query.META:   return es.meta(q.(*query.QueryMeta))
		default:           panic(fmt.Errorf("invalid query type: '%s'", q.GetType()))
	}
}
