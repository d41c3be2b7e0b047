package services

import (
	"go-rowstore/pkg/table"
	"go-rowstore/services/executor"
	"go-rowstore/services/parser"

	"github.com/sirupsen/logrus"
)

type Services struct {
	ParserService   parser.ParserService
	ExecutorService *executor.ExecutorService
}

func New(t *table.Table, log logrus.FieldLogger) *Services {
	return &Services{
		ParserService:   parser.New(),
		ExecutorService: executor.New(t, log),
	}
}
