package row

import (
	"strings"
	"testing"

	"go-rowstore/pkg/customerrors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutSize(t *testing.T) {
	require.Equal(t, 48, DefaultLayout.RowSize())
	require.NoError(t, DefaultLayout.Check())
}

func TestRoundTrip(t *testing.T) {
	rows := []Row{
		{Id: 1, Username: "alice", Email: "alice@example.com"},
		{Id: 0, Username: "", Email: ""},
		{Id: -1, Username: "neg", Email: "neg@example.com"},
		{Id: 2147483647, Username: strings.Repeat("u", 20), Email: strings.Repeat("e", 24)},
		{Id: -2147483648, Username: "zoë", Email: "zoë@exämple.org"},
	}

	for _, r := range rows {
		slot := DefaultLayout.Marshal(r)
		require.Len(t, slot, 48)

		decoded, err := DefaultLayout.Decode(slot)
		require.NoError(t, err)
		require.Equal(t, r, decoded)
	}
}

func TestSlotLayout(t *testing.T) {
	slot := DefaultLayout.Marshal(Row{Id: -1, Username: "bob", Email: "b@x"})

	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, slot[0:4])
	require.Equal(t, []byte("bob"), slot[4:7])
	require.Equal(t, make([]byte, 17), slot[7:24])
	require.Equal(t, []byte("b@x"), slot[24:27])
	require.Equal(t, make([]byte, 21), slot[27:48])
}

func TestEncodeOverwritesSlot(t *testing.T) {
	slot := DefaultLayout.Marshal(Row{Id: 7, Username: strings.Repeat("x", 20), Email: strings.Repeat("y", 24)})
	DefaultLayout.Encode(Row{Id: 8, Username: "a", Email: "b"}, slot)

	decoded, err := DefaultLayout.Decode(slot)
	require.NoError(t, err)
	require.Equal(t, Row{Id: 8, Username: "a", Email: "b"}, decoded)
}

func TestTruncation(t *testing.T) {
	username := "abcdefghijklmnopqrstuvwxy" // 25 bytes
	email := strings.Repeat("e", 40)

	decoded, err := DefaultLayout.Decode(DefaultLayout.Marshal(Row{Id: 1, Username: username, Email: email}))
	require.NoError(t, err)
	require.Equal(t, username[:20], decoded.Username)
	require.Equal(t, email[:24], decoded.Email)
}

func TestTruncationKeepsRunes(t *testing.T) {
	// 19 ASCII bytes followed by a two byte rune straddling the field end
	username := strings.Repeat("a", 19) + "é"

	decoded, err := DefaultLayout.Decode(DefaultLayout.Marshal(Row{Username: username}))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("a", 19), decoded.Username)
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultLayout.Validate(Row{Id: 1, Username: "alice", Email: "alice@example.com"}))

	err := DefaultLayout.Validate(Row{Username: strings.Repeat("u", 25)})
	require.True(t, errors.Is(err, customerrors.ErrFieldTooLong))
	require.Contains(t, err.Error(), "username")

	err = DefaultLayout.Validate(Row{Email: strings.Repeat("e", 25)})
	require.True(t, errors.Is(err, customerrors.ErrFieldTooLong))
	require.Contains(t, err.Error(), "email")

	err = DefaultLayout.Validate(Row{Username: "\xff\xfe"})
	require.True(t, errors.Is(err, customerrors.ErrInvalidText))
}

func TestDecodeCorrupt(t *testing.T) {
	slot := DefaultLayout.Marshal(Row{Id: 1, Username: "alice", Email: "alice@example.com"})
	slot[4] = 0xff

	_, err := DefaultLayout.Decode(slot)
	require.True(t, errors.Is(err, customerrors.ErrCorruptRow))
	require.Contains(t, err.Error(), "username")

	slot = DefaultLayout.Marshal(Row{Id: 1, Username: "alice", Email: "alice@example.com"})
	slot[30] = 0xc3
	slot[31] = 0x28

	_, err = DefaultLayout.Decode(slot)
	require.True(t, errors.Is(err, customerrors.ErrCorruptRow))
	require.Contains(t, err.Error(), "email")

	_, err = DefaultLayout.Decode(make([]byte, 47))
	require.True(t, errors.Is(err, customerrors.ErrCorruptRow))
}

func TestCustomLayout(t *testing.T) {
	l := Layout{UsernameSize: 20, EmailSize: 30}
	require.Equal(t, 54, l.RowSize())

	r := Row{Id: 42, Username: "carol", Email: strings.Repeat("c", 18) + "@example.com"}
	decoded, err := l.Decode(l.Marshal(r))
	require.NoError(t, err)
	require.Equal(t, r, decoded)

	require.Error(t, Layout{UsernameSize: 0, EmailSize: 10}.Check())
	require.Error(t, Layout{UsernameSize: 10, EmailSize: -1}.Check())
}
