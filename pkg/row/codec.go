package row

import (
	"encoding/binary"
	"unicode/utf8"

	"go-rowstore/pkg/customerrors"
	"go-rowstore/util/helpers"

	"github.com/pkg/errors"
)

var bin = binary.LittleEndian

// Validate reports whether r can be stored without losing data.
func (l Layout) Validate(r Row) error {
	if err := CheckEncoding(r); err != nil {
		return err
	}
	if err := checkSize("username", r.Username, l.UsernameSize); err != nil {
		return err
	}
	return checkSize("email", r.Email, l.EmailSize)
}

// CheckEncoding reports whether the text fields of r are valid UTF-8.
func CheckEncoding(r Row) error {
	if !utf8.ValidString(r.Username) {
		return errors.Wrap(customerrors.ErrInvalidText, "username")
	}
	if !utf8.ValidString(r.Email) {
		return errors.Wrap(customerrors.ErrInvalidText, "email")
	}
	return nil
}

// Marshal returns the slot encoding of r. Text longer than its field is
// truncated.
func (l Layout) Marshal(r Row) []byte {
	buf := make([]byte, l.RowSize())
	l.Encode(r, buf)
	return buf
}

// Encode writes the slot encoding of r into dst, which must be exactly
// RowSize bytes long. Every byte of dst is overwritten.
func (l Layout) Encode(r Row, dst []byte) {
	if len(dst) != l.RowSize() {
		panic(errors.Errorf("invalid slot size: %d, expected %d", len(dst), l.RowSize()))
	}

	bin.PutUint32(dst[0:IdSize], uint32(r.Id))
	putText(dst[l.usernameOffset():l.emailOffset()], r.Username)
	putText(dst[l.emailOffset():], r.Email)
}

// Decode reconstructs the row stored in slot.
func (l Layout) Decode(slot []byte) (Row, error) {
	if len(slot) != l.RowSize() {
		return Row{}, errors.Wrapf(customerrors.ErrCorruptRow, "slot size %d, expected %d", len(slot), l.RowSize())
	}

	username, err := getText("username", slot[l.usernameOffset():l.emailOffset()])
	if err != nil {
		return Row{}, err
	}
	email, err := getText("email", slot[l.emailOffset():])
	if err != nil {
		return Row{}, err
	}

	return Row{
		Id:       int32(bin.Uint32(slot[0:IdSize])),
		Username: username,
		Email:    email,
	}, nil
}

func putText(field []byte, s string) {
	n := copy(field, helpers.TruncateUTF8([]byte(s), len(field)))
	clear(field[n:])
}

func getText(name string, field []byte) (string, error) {
	b := helpers.TrimZeroes(field)
	if !utf8.Valid(b) {
		return "", errors.Wrapf(customerrors.ErrCorruptRow, "%s is not valid UTF-8", name)
	}
	return string(b), nil
}

func checkSize(name, s string, size int) error {
	if len(s) > size {
		return errors.Wrapf(customerrors.ErrFieldTooLong, "%s is %d bytes, max %d", name, len(s), size)
	}
	return nil
}
