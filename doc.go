// Package tinyjson is an in-memory JSON parser and serializer built around
// a typed value tree.
//
// Parsing turns text into a tree of Value nodes; stringifying turns a tree
// back into canonical JSON text:
//
//	v, err := tinyjson.Parse(`{"name":"tiny","tags":[1,2]}`)
//	if err != nil {
//		code, _ := tinyjson.CodeOf(err) // e.g. tinyjson.CodeMissColon
//		...
//	}
//	name := v.Field(0).StringBytes()
//	out := tinyjson.Stringify(&v) // {"name":"tiny","tags":[1,2]}
//
// # Value tree
//
// A Value holds exactly one of null, false, true, a float64 number, a byte
// string, an array of values or an object of members. Object members keep
// their source order and duplicate keys are kept as separate members.
// Getters panic with a *ContractError when the value holds another type or
// an index is out of range; these are programming errors, not input errors.
//
// # Errors
//
// Malformed input yields a *ParseError carrying an ErrorCode and the byte
// offset of the violation. Each code has a sentinel usable with errors.Is:
//
//	if errors.Is(err, tinyjson.ErrNumberTooBig) { ... }
//
// On failure the destination value is always left null.
//
// # Codec
//
// The package level functions use a shared Codec with DefaultConfig. Use New
// or NewWithConfig for custom settings:
//
//	cfg := tinyjson.DefaultConfig()
//	cfg.RawStrings = true
//	codec := tinyjson.New(cfg)
//
// A Codec may be used from many goroutines; each call works on a private
// scratch buffer.
//
// # Output
//
// Numbers are rendered with 17 significant digits ("%.17g"), which is enough
// for the text to parse back to the identical float64. Strings are escaped
// unless Config.RawStrings is set.
package tinyjson
