package tinyjson

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/cybergodev/tinyjson/internal"
)

// parseContext is the private state of a single parse call: the cursor and
// the scratch stacks. It is never shared between concurrent calls.
type parseContext struct {
	json   string
	pos    int
	errPos int

	// bytes assembles string payloads and keys.
	bytes *internal.Stack[byte]
	// values and members buffer the children of arrays and objects until
	// the closing bracket is seen.
	values  *internal.Stack[Value]
	members *internal.Stack[Member]
}

func newParseContext(cfg *Config) *parseContext {
	return &parseContext{
		bytes:   internal.NewStack[byte](cfg.InitialStackSize),
		values:  internal.NewStack[Value](cfg.ElementStackSize),
		members: internal.NewStack[Member](cfg.ElementStackSize),
	}
}

// parse parses text as a single JSON value into v, which must be null.
//
//	JSON-text = ws value ws
func (c *parseContext) parse(text string, v *Value) ErrorCode {
	c.json, c.pos, c.errPos = text, 0, 0

	c.parseWhitespace()
	code := c.parseValue(v)
	if code == CodeOK {
		c.parseWhitespace()
		if c.pos != len(c.json) {
			v.Release()
			code = c.failAt(CodeRootNotSingular, c.pos)
		}
	}

	if c.bytes.Len() != 0 || c.values.Len() != 0 || c.members.Len() != 0 {
		panic(fmt.Sprintf("tinyjson: scratch stacks not empty after parse (bytes=%d values=%d members=%d)",
			c.bytes.Len(), c.values.Len(), c.members.Len()))
	}
	return code
}

func (c *parseContext) failAt(code ErrorCode, pos int) ErrorCode {
	c.errPos = pos
	return code
}

// peek returns the byte under the cursor, 0 at the end of input.
func (c *parseContext) peek() byte {
	if c.pos < len(c.json) {
		return c.json[c.pos]
	}
	return 0
}

func (c *parseContext) byteAt(p int) byte {
	if p < len(c.json) {
		return c.json[p]
	}
	return 0
}

// ws = *(%x20 / %x09 / %x0A / %x0D)
func (c *parseContext) parseWhitespace() {
	for c.pos < len(c.json) {
		switch c.json[c.pos] {
		case ' ', '\t', '\n', '\r':
			c.pos++
		default:
			return
		}
	}
}

func (c *parseContext) parseValue(v *Value) ErrorCode {
	if c.pos >= len(c.json) {
		return c.failAt(CodeExpectValue, c.pos)
	}
	switch c.json[c.pos] {
	case 'n':
		return c.parseLiteral(v, "null", TypeNull)
	case 't':
		return c.parseLiteral(v, "true", TypeTrue)
	case 'f':
		return c.parseLiteral(v, "false", TypeFalse)
	case '"':
		return c.parseString(v)
	case '[':
		return c.parseArray(v)
	case '{':
		return c.parseObject(v)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return c.parseNumber(v)
	default:
		return c.failAt(CodeInvalidValue, c.pos)
	}
}

func (c *parseContext) parseLiteral(v *Value, literal string, typ Type) ErrorCode {
	end := c.pos + len(literal)
	if end > len(c.json) || c.json[c.pos:end] != literal {
		return c.failAt(CodeInvalidValue, c.pos)
	}
	c.pos = end
	v.typ = typ
	return CodeOK
}

func isDigit(ch byte) bool     { return ch >= '0' && ch <= '9' }
func isDigit1to9(ch byte) bool { return ch >= '1' && ch <= '9' }

// parseNumber checks the grammar before converting, so strconv only ever
// sees a well formed decimal literal.
//
//	number = [ "-" ] int [ frac ] [ exp ]
//	int = "0" / digit1-9 *digit
//	frac = "." 1*digit
//	exp = ("e" / "E") ["-" / "+"] 1*digit
func (c *parseContext) parseNumber(v *Value) ErrorCode {
	p := c.pos
	if c.byteAt(p) == '-' {
		p++
	}
	if c.byteAt(p) == '0' {
		p++
	} else {
		if !isDigit1to9(c.byteAt(p)) {
			return c.failAt(CodeInvalidValue, c.pos)
		}
		for p++; isDigit(c.byteAt(p)); p++ {
		}
	}
	if c.byteAt(p) == '.' {
		p++
		if !isDigit(c.byteAt(p)) {
			return c.failAt(CodeInvalidValue, c.pos)
		}
		for p++; isDigit(c.byteAt(p)); p++ {
		}
	}
	if ch := c.byteAt(p); ch == 'e' || ch == 'E' {
		p++
		if ch := c.byteAt(p); ch == '+' || ch == '-' {
			p++
		}
		if !isDigit(c.byteAt(p)) {
			return c.failAt(CodeInvalidValue, c.pos)
		}
		for p++; isDigit(c.byteAt(p)); p++ {
		}
	}

	n, err := strconv.ParseFloat(c.json[c.pos:p], 64)
	if err != nil {
		if math.IsInf(n, 0) {
			return c.failAt(CodeNumberTooBig, c.pos)
		}
		if !errors.Is(err, strconv.ErrRange) {
			return c.failAt(CodeInvalidValue, c.pos)
		}
		// underflow rounds to zero and is accepted
	}

	v.n = n
	v.typ = TypeNumber
	c.pos = p
	return CodeOK
}

// isPlain reports whether ch can be copied into a string without decoding.
func isPlain(ch byte) bool {
	return ch >= 0x20 && ch != '"' && ch != '\\'
}

// parseStringRaw decodes the string under the cursor onto the byte stack and
// pops it back off. The returned slice aliases the stack and is only valid
// until the next push. On failure the stack is rewound to where it started.
//
//	string = quotation-mark *char quotation-mark
//	char = unescaped / escape ( %x22 / %x5C / %x2F / %x62 / %x66 /
//	                            %x6E / %x72 / %x74 / %x75 4HEXDIG )
//	unescaped = %x20-21 / %x23-5B / %x5D-10FFFF
func (c *parseContext) parseStringRaw() ([]byte, ErrorCode) {
	head := c.bytes.Mark()
	s := c.json
	p := c.pos + 1

	fail := func(code ErrorCode, at int) ([]byte, ErrorCode) {
		c.bytes.Rollback(head)
		return nil, c.failAt(code, at)
	}

	for {
		if p >= len(s) {
			return fail(CodeMissQuotationMark, p)
		}

		// copy runs of plain bytes in one push
		if isPlain(s[p]) {
			start := p
			for p < len(s) && isPlain(s[p]) {
				p++
			}
			copy(c.bytes.Push(p-start), s[start:p])
			continue
		}

		ch := s[p]
		p++
		switch ch {
		case '"':
			str := c.bytes.Pop(c.bytes.Len() - head)
			c.pos = p
			return str, CodeOK
		case '\\':
			if p >= len(s) {
				return fail(CodeInvalidStringEscape, p-1)
			}
			esc := s[p]
			p++
			switch esc {
			case '"', '\\', '/':
				c.bytes.PushValue(esc)
			case 'b':
				c.bytes.PushValue('\b')
			case 'f':
				c.bytes.PushValue('\f')
			case 'n':
				c.bytes.PushValue('\n')
			case 'r':
				c.bytes.PushValue('\r')
			case 't':
				c.bytes.PushValue('\t')
			case 'u':
				r, n, ok := internal.DecodeEscapedRune(s[p:])
				if !ok {
					return fail(CodeInvalidStringEscape, p-2)
				}
				internal.PushRune(c.bytes, r)
				p += n
			default:
				return fail(CodeInvalidStringEscape, p-2)
			}
		default:
			// only control bytes reach here
			return fail(CodeInvalidStringChar, p-1)
		}
	}
}

func (c *parseContext) parseString(v *Value) ErrorCode {
	str, code := c.parseStringRaw()
	if code != CodeOK {
		return code
	}
	v.s = copyBytes(str)
	v.typ = TypeString
	return CodeOK
}

// parseArray buffers each element on the value stack and moves them into
// an exactly sized slice once the closing bracket is found. On failure every
// buffered element is released.
//
//	array = %x5B ws [ value *( ws %x2C ws value ) ] ws %x5D
func (c *parseContext) parseArray(v *Value) ErrorCode {
	c.pos++
	c.parseWhitespace()
	if c.peek() == ']' {
		c.pos++
		v.typ = TypeArray
		return CodeOK
	}

	size := 0
	var code ErrorCode
	for {
		var e Value
		if code = c.parseValue(&e); code != CodeOK {
			break
		}
		c.values.PushValue(e)
		size++
		c.parseWhitespace()

		ch := c.peek()
		if ch == ',' {
			c.pos++
			c.parseWhitespace()
			continue
		}
		if ch == ']' {
			c.pos++
			popped := c.values.Pop(size)
			elems := make([]Value, size)
			copy(elems, popped)
			clear(popped)
			v.a = elems
			v.typ = TypeArray
			return CodeOK
		}
		code = c.failAt(CodeMissCommaOrSquareBracket, c.pos)
		break
	}

	for i := 0; i < size; i++ {
		c.values.Pop(1)[0].Release()
	}
	return code
}

// parseObject mirrors parseArray over members. The key of a member that
// failed before being buffered is dropped with it.
//
//	member = string ws %x3A ws value
//	object = %x7B ws [ member *( ws %x2C ws member ) ] ws %x7D
func (c *parseContext) parseObject(v *Value) ErrorCode {
	c.pos++
	c.parseWhitespace()
	if c.peek() == '}' {
		c.pos++
		v.typ = TypeObject
		return CodeOK
	}

	size := 0
	var code ErrorCode
	for {
		if c.peek() != '"' {
			code = c.failAt(CodeMissKey, c.pos)
			break
		}
		key, kc := c.parseStringRaw()
		if kc != CodeOK {
			code = kc
			break
		}
		m := Member{key: copyBytes(key)}

		c.parseWhitespace()
		if c.peek() != ':' {
			code = c.failAt(CodeMissColon, c.pos)
			break
		}
		c.pos++
		c.parseWhitespace()
		if code = c.parseValue(&m.val); code != CodeOK {
			break
		}
		c.members.PushValue(m)
		size++
		c.parseWhitespace()

		ch := c.peek()
		if ch == ',' {
			c.pos++
			c.parseWhitespace()
			continue
		}
		if ch == '}' {
			c.pos++
			popped := c.members.Pop(size)
			members := make([]Member, size)
			copy(members, popped)
			clear(popped)
			v.m = members
			v.typ = TypeObject
			return CodeOK
		}
		code = c.failAt(CodeMissCommaOrCurlyBracket, c.pos)
		break
	}

	for i := 0; i < size; i++ {
		m := &c.members.Pop(1)[0]
		m.val.Release()
		*m = Member{}
	}
	v.typ = TypeNull
	return code
}
