package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCeilDiv(t *testing.T) {
	require.Equal(t, 0, CeilDiv(0, 85))
	require.Equal(t, 1, CeilDiv(1, 85))
	require.Equal(t, 1, CeilDiv(85, 85))
	require.Equal(t, 2, CeilDiv(86, 85))
	require.Equal(t, uint32(118), CeilDiv(uint32(10000), uint32(85)))
}

func TestTruncateUTF8(t *testing.T) {
	require.Equal(t, []byte("abc"), TruncateUTF8([]byte("abc"), 5))
	require.Equal(t, []byte("abcde"), TruncateUTF8([]byte("abcdefgh"), 5))

	// "é" is two bytes, cutting after its first byte drops the whole rune
	require.Equal(t, []byte("ab"), TruncateUTF8([]byte("abé"), 3))
	require.Equal(t, []byte("abé"), TruncateUTF8([]byte("abéd"), 4))

	// "€" is three bytes
	require.Equal(t, []byte(""), TruncateUTF8([]byte("€"), 2))
}

func TestTrimZeroes(t *testing.T) {
	require.Equal(t, []byte("bob"), TrimZeroes([]byte("bob\x00\x00\x00")))
	require.Equal(t, []byte{}, TrimZeroes([]byte{0, 0}))
	require.Equal(t, []byte("a\x00b"), TrimZeroes([]byte("a\x00b\x00")))
}
