package tinyjson

// Parse parses text as a single JSON value.
func Parse(text string) (Value, error) {
	return defaultCodec().Parse(text)
}

// ParseBytes parses data as a single JSON value.
func ParseBytes(data []byte) (Value, error) {
	return defaultCodec().ParseBytes(data)
}

// Unmarshal releases v and parses data into it. On failure v is left null.
func Unmarshal(data []byte, v *Value) error {
	return defaultCodec().Unmarshal(data, v)
}

// Valid reports whether text is a single well formed JSON value.
func Valid(text string) bool {
	return defaultCodec().Valid(text)
}

// Stringify renders v as canonical JSON text.
func Stringify(v *Value) []byte {
	return defaultCodec().Stringify(v)
}
