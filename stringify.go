package tinyjson

import (
	"strconv"

	"github.com/cybergodev/tinyjson/internal"
)

// stringifier walks a tree in pre-order, writing straight onto an output
// stack that is handed to the caller once the walk is done.
type stringifier struct {
	out *internal.Stack[byte]
	raw bool
}

func (s *stringifier) putLiteral(lit string) {
	copy(s.out.Push(len(lit)), lit)
}

func (s *stringifier) putByte(ch byte) {
	s.out.PushValue(ch)
}

func (s *stringifier) putString(b []byte) {
	s.putByte('"')
	if s.raw {
		s.out.PushSlice(b)
	} else {
		internal.PushEscaped(s.out, b)
	}
	s.putByte('"')
}

// putNumber reserves a fixed region, renders into it and gives back what
// was not used.
func (s *stringifier) putNumber(n float64) {
	region := s.out.Push(NumberReserveSize)
	written := strconv.AppendFloat(region[:0], n, 'g', 17, 64)
	if len(written) > NumberReserveSize {
		// did not fit the reserve, AppendFloat wrote elsewhere
		s.out.Pop(NumberReserveSize)
		s.out.PushSlice(written)
		return
	}
	s.out.Pop(NumberReserveSize - len(written))
}

func (s *stringifier) value(v *Value) {
	switch v.typ {
	case TypeNull:
		s.putLiteral("null")
	case TypeFalse:
		s.putLiteral("false")
	case TypeTrue:
		s.putLiteral("true")
	case TypeNumber:
		s.putNumber(v.n)
	case TypeString:
		s.putString(v.s)
	case TypeArray:
		s.putByte('[')
		for i := range v.a {
			if i > 0 {
				s.putByte(',')
			}
			s.value(&v.a[i])
		}
		s.putByte(']')
	case TypeObject:
		s.putByte('{')
		for i := range v.m {
			if i > 0 {
				s.putByte(',')
			}
			s.putString(v.m[i].key)
			s.putByte(':')
			s.value(&v.m[i].val)
		}
		s.putByte('}')
	}
}

// stringify renders v with the given settings. The result owns its storage.
func stringify(v *Value, base int, raw, terminate bool) []byte {
	s := stringifier{out: internal.NewStack[byte](base), raw: raw}
	s.value(v)
	if terminate {
		*s.out.Spare() = 0
	}
	return s.out.Bytes()
}
