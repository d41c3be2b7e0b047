package config

import (
	"go-rowstore/pkg/row"
	"go-rowstore/pkg/table"
)

type TableConfig struct {
	PageSize     int
	MaxRows      uint32
	UsernameSize int
	EmailSize    int
	Strict       bool
}

func NewTableConfig() *TableConfig {
	return &TableConfig{
		PageSize:     table.DefaultOptions.PageSize,
		MaxRows:      table.DefaultOptions.MaxRows,
		UsernameSize: row.DefaultUsernameSize,
		EmailSize:    row.DefaultEmailSize,
	}
}

func (c *TableConfig) Options() *table.Options {
	return &table.Options{
		PageSize: c.PageSize,
		MaxRows:  c.MaxRows,
		Strict:   c.Strict,
		Layout: row.Layout{
			UsernameSize: c.UsernameSize,
			EmailSize:    c.EmailSize,
		},
	}
}
