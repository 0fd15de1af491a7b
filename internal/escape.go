package internal

// needsEscapeTable marks the bytes that cannot appear raw inside a JSON string.
var needsEscapeTable = [256]bool{
	0x00: true, 0x01: true, 0x02: true, 0x03: true, 0x04: true, 0x05: true, 0x06: true, 0x07: true,
	0x08: true, 0x09: true, 0x0A: true, 0x0B: true, 0x0C: true, 0x0D: true, 0x0E: true, 0x0F: true,
	0x10: true, 0x11: true, 0x12: true, 0x13: true, 0x14: true, 0x15: true, 0x16: true, 0x17: true,
	0x18: true, 0x19: true, 0x1A: true, 0x1B: true, 0x1C: true, 0x1D: true, 0x1E: true, 0x1F: true,
	'"':  true,
	'\\': true,
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'A', 'B', 'C', 'D', 'E', 'F'}

// NeedsEscape reports whether s contains a byte that must be escaped.
func NeedsEscape(s []byte) bool {
	for _, c := range s {
		if needsEscapeTable[c] {
			return true
		}
	}
	return false
}

// PushEscaped writes s onto st with quotes, backslashes and control bytes
// escaped. Bytes >= 0x20 other than '"' and '\\' are copied as is.
func PushEscaped(st *Stack[byte], s []byte) {
	if !NeedsEscape(s) {
		st.PushSlice(s)
		return
	}

	start := 0
	for i, c := range s {
		if !needsEscapeTable[c] {
			continue
		}
		st.PushSlice(s[start:i])
		switch c {
		case '"':
			copy(st.Push(2), `\"`)
		case '\\':
			copy(st.Push(2), `\\`)
		case '\b':
			copy(st.Push(2), `\b`)
		case '\f':
			copy(st.Push(2), `\f`)
		case '\n':
			copy(st.Push(2), `\n`)
		case '\r':
			copy(st.Push(2), `\r`)
		case '\t':
			copy(st.Push(2), `\t`)
		default:
			esc := st.Push(6)
			copy(esc, `\u00`)
			esc[4] = hexChars[c>>4]
			esc[5] = hexChars[c&0x0F]
		}
		start = i + 1
	}
	st.PushSlice(s[start:])
}
