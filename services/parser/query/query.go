package query

import "go-rowstore/pkg/row"

type QueryType string

const (
	INSERT QueryType = "INSERT"
	SELECT QueryType = "SELECT"
	META   QueryType = "META"
)

type Querier interface {
	GetType() QueryType
}

type QueryInsert struct {
	Row row.Row
}

func (q *QueryInsert) GetType() QueryType {
	return INSERT
}

type QuerySelect struct{}

func (q *QuerySelect) GetType() QueryType {
	return SELECT
}

// QueryMeta is a dot-prefixed command addressed to the shell rather than
// the table.
type QueryMeta struct {
	Command string
}

func (q *QueryMeta) GetType() QueryType {
	return META
}
