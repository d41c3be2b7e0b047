package helpers

import (
	"bytes"
	"unicode/utf8"
)

// TruncateUTF8 returns the longest prefix of b that is at most n bytes long
// and does not end in the middle of a multi-byte rune.
func TruncateUTF8(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	for n > 0 && !utf8.RuneStart(b[n]) {
		n--
	}
	return b[:n]
}

func TrimZeroes(b []byte) []byte {
	return bytes.TrimRight(b, "\x00")
}
