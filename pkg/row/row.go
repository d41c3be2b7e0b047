// Package row defines the logical row of the store and its fixed-size
// binary slot layout.
//
// A slot is laid out as
//
//	[0, 4)                          id, little-endian int32
//	[4, 4+UsernameSize)             username, zero padded
//	[4+UsernameSize, RowSize)       email, zero padded
package row

import (
	"fmt"

	"github.com/pkg/errors"
)

const IdSize = 4

const (
	DefaultUsernameSize = 20
	DefaultEmailSize    = 24
)

// DefaultLayout packs a row into 48 bytes.
var DefaultLayout = Layout{
	UsernameSize: DefaultUsernameSize,
	EmailSize:    DefaultEmailSize,
}

type Row struct {
	Id       int32
	Username string
	Email    string
}

func (r Row) String() string {
	return fmt.Sprintf("(%d, %s, %s)", r.Id, r.Username, r.Email)
}

// Layout describes the byte capacity of the text fields of a slot.
type Layout struct {
	UsernameSize int
	EmailSize    int
}

func (l Layout) RowSize() int {
	return IdSize + l.UsernameSize + l.EmailSize
}

func (l Layout) usernameOffset() int {
	return IdSize
}

func (l Layout) emailOffset() int {
	return IdSize + l.UsernameSize
}

func (l Layout) Check() error {
	if l.UsernameSize <= 0 {
		return errors.Errorf("invalid username size: %d", l.UsernameSize)
	}
	if l.EmailSize <= 0 {
		return errors.Errorf("invalid email size: %d", l.EmailSize)
	}
	return nil
}
