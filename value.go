package tinyjson

// Type identifies the variant held by a Value.
type Type uint8

const (
	TypeNull Type = iota
	TypeFalse
	TypeTrue
	TypeNumber
	TypeString
	TypeArray
	TypeObject
)

var typeNames = [...]string{
	TypeNull:   "null",
	TypeFalse:  "false",
	TypeTrue:   "true",
	TypeNumber: "number",
	TypeString: "string",
	TypeArray:  "array",
	TypeObject: "object",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "invalid"
}

// Value is a JSON node. The zero Value is null.
//
// A Value exclusively owns its string bytes, elements and members; trees
// never share nodes. Getters panic with a *ContractError when called on a
// Value of another type.
type Value struct {
	typ Type
	n   float64
	s   []byte
	a   []Value
	m   []Member
}

// Member is a key/value pair of an object. Keys are binary safe.
type Member struct {
	key []byte
	val Value
}

// NewMember builds a member from a copy of key and takes ownership of v.
func NewMember(key []byte, v Value) Member {
	return Member{key: copyBytes(key), val: v}
}

// Key returns the member key.
func (m *Member) Key() []byte { return m.key }

// Value returns the member value.
func (m *Member) Value() *Value { return &m.val }

// Type returns the variant held by v.
func (v *Value) Type() Type {
	return v.typ
}

// Release drops everything v owns, children first, and leaves v null.
// Releasing a null value is a no-op.
func (v *Value) Release() {
	switch v.typ {
	case TypeArray:
		for i := range v.a {
			v.a[i].Release()
		}
	case TypeObject:
		for i := range v.m {
			v.m[i].key = nil
			v.m[i].val.Release()
		}
	}
	*v = Value{}
}

// SetNull releases v.
func (v *Value) SetNull() {
	v.Release()
}

// Bool returns the boolean held by v.
func (v *Value) Bool() bool {
	if v.typ != TypeTrue && v.typ != TypeFalse {
		contractViolation("get_boolean", "value is %s", v.typ)
	}
	return v.typ == TypeTrue
}

// SetBool replaces v with a boolean.
func (v *Value) SetBool(b bool) {
	v.Release()
	if b {
		v.typ = TypeTrue
	} else {
		v.typ = TypeFalse
	}
}

// Number returns the number held by v.
func (v *Value) Number() float64 {
	if v.typ != TypeNumber {
		contractViolation("get_number", "value is %s", v.typ)
	}
	return v.n
}

// SetNumber replaces v with a number.
func (v *Value) SetNumber(n float64) {
	v.Release()
	v.n = n
	v.typ = TypeNumber
}

// StringBytes returns the bytes of the string held by v. The slice is owned
// by v and must not be modified.
func (v *Value) StringBytes() []byte {
	if v.typ != TypeString {
		contractViolation("get_string", "value is %s", v.typ)
	}
	return v.s
}

// StringLen returns the length of the string held by v in bytes.
func (v *Value) StringLen() int {
	return len(v.StringBytes())
}

// SetString replaces v with a copy of s. Nil and empty s both give "".
func (v *Value) SetString(s []byte) {
	v.Release()
	v.s = copyBytes(s)
	v.typ = TypeString
}

// ArrayLen returns the number of elements of the array held by v.
func (v *Value) ArrayLen() int {
	if v.typ != TypeArray {
		contractViolation("get_array_size", "value is %s", v.typ)
	}
	return len(v.a)
}

// Index returns element i of the array held by v.
func (v *Value) Index(i int) *Value {
	if n := v.ArrayLen(); i < 0 || i >= n {
		contractViolation("get_array_element", "index %d out of range [0,%d)", i, n)
	}
	return &v.a[i]
}

// SetArray replaces v with an array that takes ownership of elems.
func (v *Value) SetArray(elems []Value) {
	v.Release()
	if len(elems) > 0 {
		v.a = elems
	}
	v.typ = TypeArray
}

// ObjectLen returns the number of members of the object held by v.
func (v *Value) ObjectLen() int {
	if v.typ != TypeObject {
		contractViolation("get_object_size", "value is %s", v.typ)
	}
	return len(v.m)
}

func (v *Value) member(op string, i int) *Member {
	if v.typ != TypeObject {
		contractViolation(op, "value is %s", v.typ)
	}
	if i < 0 || i >= len(v.m) {
		contractViolation(op, "index %d out of range [0,%d)", i, len(v.m))
	}
	return &v.m[i]
}

// Key returns the key of member i of the object held by v.
func (v *Value) Key(i int) []byte {
	return v.member("get_object_key", i).key
}

// KeyLen returns the key length of member i in bytes.
func (v *Value) KeyLen(i int) int {
	return len(v.member("get_object_key_length", i).key)
}

// Field returns the value of member i of the object held by v.
func (v *Value) Field(i int) *Value {
	return &v.member("get_object_value", i).val
}

// Lookup returns the value of the first member whose key equals key.
func (v *Value) Lookup(key string) (*Value, bool) {
	for i := 0; i < v.ObjectLen(); i++ {
		if string(v.m[i].key) == key {
			return &v.m[i].val, true
		}
	}
	return nil, false
}

// SetObject replaces v with an object that takes ownership of members.
func (v *Value) SetObject(members []Member) {
	v.Release()
	if len(members) > 0 {
		v.m = members
	}
	v.typ = TypeObject
}

// String returns the canonical JSON text of v.
func (v *Value) String() string {
	return string(Stringify(v))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return defaultCodec().marshal(&v), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	return Unmarshal(data, v)
}

func copyBytes(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
