package tinyjson

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the outcome of a parse.
type ErrorCode int

const (
	CodeOK ErrorCode = iota
	CodeExpectValue
	CodeInvalidValue
	CodeRootNotSingular
	CodeNumberTooBig
	CodeMissQuotationMark
	CodeInvalidStringEscape
	CodeInvalidStringChar
	CodeMissCommaOrSquareBracket
	CodeMissKey
	CodeMissColon
	CodeMissCommaOrCurlyBracket
)

var codeNames = [...]string{
	CodeOK:                       "ok",
	CodeExpectValue:              "expect value",
	CodeInvalidValue:             "invalid value",
	CodeRootNotSingular:          "root not singular",
	CodeNumberTooBig:             "number too big",
	CodeMissQuotationMark:        "miss quotation mark",
	CodeInvalidStringEscape:      "invalid string escape",
	CodeInvalidStringChar:        "invalid string char",
	CodeMissCommaOrSquareBracket: "miss comma or square bracket",
	CodeMissKey:                  "miss key",
	CodeMissColon:                "miss colon",
	CodeMissCommaOrCurlyBracket:  "miss comma or curly bracket",
}

func (c ErrorCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return codeNames[c]
}

// Parse errors, one per failure code
var (
	ErrExpectValue              = errors.New(CodeExpectValue.String())
	ErrInvalidValue             = errors.New(CodeInvalidValue.String())
	ErrRootNotSingular          = errors.New(CodeRootNotSingular.String())
	ErrNumberTooBig             = errors.New(CodeNumberTooBig.String())
	ErrMissQuotationMark        = errors.New(CodeMissQuotationMark.String())
	ErrInvalidStringEscape      = errors.New(CodeInvalidStringEscape.String())
	ErrInvalidStringChar        = errors.New(CodeInvalidStringChar.String())
	ErrMissCommaOrSquareBracket = errors.New(CodeMissCommaOrSquareBracket.String())
	ErrMissKey                  = errors.New(CodeMissKey.String())
	ErrMissColon                = errors.New(CodeMissColon.String())
	ErrMissCommaOrCurlyBracket  = errors.New(CodeMissCommaOrCurlyBracket.String())

	// Usage errors
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNilValue      = errors.New("nil destination value")
)

var codeErrors = [...]error{
	CodeOK:                       nil,
	CodeExpectValue:              ErrExpectValue,
	CodeInvalidValue:             ErrInvalidValue,
	CodeRootNotSingular:          ErrRootNotSingular,
	CodeNumberTooBig:             ErrNumberTooBig,
	CodeMissQuotationMark:        ErrMissQuotationMark,
	CodeInvalidStringEscape:      ErrInvalidStringEscape,
	CodeInvalidStringChar:        ErrInvalidStringChar,
	CodeMissCommaOrSquareBracket: ErrMissCommaOrSquareBracket,
	CodeMissKey:                  ErrMissKey,
	CodeMissColon:                ErrMissColon,
	CodeMissCommaOrCurlyBracket:  ErrMissCommaOrCurlyBracket,
}

// Err returns the sentinel error for the code, nil for CodeOK.
func (c ErrorCode) Err() error {
	if c < 0 || int(c) >= len(codeErrors) {
		return nil
	}
	return codeErrors[c]
}

// ParseError reports malformed input. Offset is the byte position in the
// input where the violation was detected.
type ParseError struct {
	Code   ErrorCode `json:"code"`
	Offset int       `json:"offset"`
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("JSON parse failed at offset %d: %s", e.Offset, e.Code)
}

// Unwrap returns the sentinel error of the code
func (e *ParseError) Unwrap() error {
	return e.Code.Err()
}

// Is matches another *ParseError with the same code. Sentinels match
// through Unwrap.
func (e *ParseError) Is(target error) bool {
	if t, ok := target.(*ParseError); ok {
		return e.Code == t.Code
	}
	return false
}

func newParseError(code ErrorCode, offset int) error {
	return &ParseError{Code: code, Offset: offset}
}

// CodeOf returns the parse code carried by err, CodeOK for nil. The second
// result is false when err is not nil and does not wrap a *ParseError.
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return CodeOK, true
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code, true
	}
	return CodeOK, false
}

// OperationError represents a failure outside of parsing, such as a rejected
// configuration
type OperationError struct {
	Op      string `json:"op"`
	Message string `json:"message"`
	Err     error  `json:"err"`
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("JSON %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *OperationError) Unwrap() error {
	return e.Err
}

func newOperationError(operation, message string, err error) error {
	return &OperationError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// ContractError is the panic value raised when a Value is used against its
// contract: a getter called under the wrong type, or an index out of range.
type ContractError struct {
	Op      string
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("JSON %s: %s", e.Op, e.Message)
}

func contractViolation(op, format string, args ...any) {
	panic(&ContractError{Op: op, Message: fmt.Sprintf(format, args...)})
}
