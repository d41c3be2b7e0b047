package parser

import (
	"strconv"
	"strings"

	"go-rowstore/pkg/row"
	perrors "go-rowstore/services/parser/errors"
	"go-rowstore/services/parser/kwords"
	"go-rowstore/services/parser/query"

	"github.com/pkg/errors"
)

type ParserService interface {
	ParseQuery(line string) (query.Querier, error)
}

type ParserServiceT struct{}

func New() *ParserServiceT {
	return &ParserServiceT{}
}

// ParseQuery turns one input line into a query. Accepted forms are
//
//	insert <id> <username> <email>
//	select
//	.exit
//	.stats
func (ps *ParserServiceT) ParseQuery(line string) (query.Querier, error) {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, kwords.MetaPrefix) {
		if _, ok := kwords.MetaCommands[line]; !ok {
			return nil, errors.Wrapf(perrors.ErrUnrecognized, "'%s'", line)
		}
		return &query.QueryMeta{Command: line}, nil
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return nil, errors.Wrap(perrors.ErrUnrecognized, "empty input")
	}

	switch words[0] {
	case kwords.Insert:
		return parseInsert(words[1:])
	case kwords.Select:
		if len(words) != 1 {
			return nil, errors.Wrap(perrors.ErrSyntax, "select takes no arguments")
		}
		return &query.QuerySelect{}, nil
	}

	return nil, errors.Wrapf(perrors.ErrUnrecognized, "'%s'", line)
}

func parseInsert(args []string) (*query.QueryInsert, error) {
	if len(args) != 3 {
		return nil, errors.Wrapf(perrors.ErrSyntax, "insert expects <id> <username> <email>, got %d arguments", len(args))
	}

	id, err := strconv.ParseInt(args[0], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(perrors.ErrSyntax, "invalid id '%s'", args[0])
	}

	return &query.QueryInsert{
		Row: row.Row{
			Id:       int32(id),
			Username: args[1],
			Email:    args[2],
		},
	}, nil
}
