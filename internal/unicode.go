package internal

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ParseHex4 decodes the four hex digits at the start of s.
func ParseHex4(s string) (rune, bool) {
	if len(s) < 4 {
		return 0, false
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s[i]
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// DecodeEscapedRune decodes the code point of a \u escape whose hex digits
// start s. A high surrogate must be followed by a \u escaped low surrogate.
// It returns the rune and the number of bytes of s consumed.
func DecodeEscapedRune(s string) (rune, int, bool) {
	r, ok := ParseHex4(s)
	if !ok {
		return 0, 0, false
	}
	if !utf16.IsSurrogate(r) {
		return r, 4, true
	}
	if r >= 0xDC00 {
		// lone low surrogate
		return 0, 0, false
	}
	if len(s) < 6 || s[4] != '\\' || s[5] != 'u' {
		return 0, 0, false
	}
	low, ok := ParseHex4(s[6:])
	if !ok {
		return 0, 0, false
	}
	combined := utf16.DecodeRune(r, low)
	if combined == utf8.RuneError {
		return 0, 0, false
	}
	return combined, 10, true
}

// PushRune writes the UTF-8 encoding of r onto st.
func PushRune(st *Stack[byte], r rune) {
	utf8.EncodeRune(st.Push(utf8.RuneLen(r)), r)
}
