package executor

import (
	"bytes"
	"io"

	"go-rowstore/services/parser/query"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func (es *ExecutorService) dmlInsert(q *query.QueryInsert) (io.WriterTo, error) {
	log := es.log.WithFields(logrus.Fields{
		"id":       q.Row.Id,
		"username": q.Row.Username,
	})

	if err := es.table.Insert(q.Row); err != nil {
		log.WithError(err).Warn("insert rejected")
		return nil, errors.WithMessage(err, "insert")
	}

	log.WithField("rows", es.table.Len()).Debug("row inserted")
	return bytes.NewBufferString("Executed.\n"), nil
}
