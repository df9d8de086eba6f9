package lang

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Answer is what every value without a sensible integer reading coerces to.
const Answer int32 = 42

// ErrInvalidUTF8 is returned when a tape functio's instructions cannot be
// displayed as text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 in functio instructions")

// ValueType enumerates the different runtime value categories.
type ValueType int

const (
	TypeNul ValueType = iota
	TypeStr
	TypeInt
	TypeBool
	TypeAbool
	TypeFunctio
)

func (t ValueType) String() string {
	switch t {
	case TypeNul:
		return "nul"
	case TypeStr:
		return "str"
	case TypeInt:
		return "int"
	case TypeBool:
		return "bool"
	case TypeAbool:
		return "abool"
	case TypeFunctio:
		return "functio"
	default:
		return "unknown"
	}
}

// Value represents any runtime object. Exactly one variant is active, as
// selected by Type.
type Value struct {
	Type    ValueType
	payload interface{}
}

// Nul returns the nul value, which is also the zero Value.
func Nul() Value {
	return Value{}
}

// StrValue constructs a string Value.
func StrValue(s string) Value {
	return Value{Type: TypeStr, payload: s}
}

// IntValue constructs an integer Value.
func IntValue(i int32) Value {
	return Value{Type: TypeInt, payload: i}
}

// BoolValue returns the boolean Value equivalent.
func BoolValue(b bool) Value {
	return Value{Type: TypeBool, payload: b}
}

// AboolValue wraps a tri-state boolean.
func AboolValue(a Abool) Value {
	return Value{Type: TypeAbool, payload: a}
}

// FunctioValue wraps a callable.
func FunctioValue(f *Functio) Value {
	return Value{Type: TypeFunctio, payload: f}
}

func (v Value) Str() string {
	if s, ok := v.payload.(string); ok {
		return s
	}
	return ""
}

func (v Value) Int() int32 {
	if i, ok := v.payload.(int32); ok {
		return i
	}
	return 0
}

func (v Value) Bool() bool {
	if b, ok := v.payload.(bool); ok {
		return b
	}
	return false
}

func (v Value) Abool() Abool {
	if a, ok := v.payload.(Abool); ok {
		return a
	}
	return Never
}

func (v Value) Functio() *Functio {
	if f, ok := v.payload.(*Functio); ok {
		return f
	}
	return nil
}

// IntoI32 coerces the value to an integer. The conversion cannot fail.
func (v Value) IntoI32() int32 {
	switch v.Type {
	case TypeAbool:
		return int32(v.Abool())
	case TypeBool:
		if v.Bool() {
			return 1
		}
		return 0
	case TypeFunctio:
		if f := v.Functio(); f != nil {
			return f.weight()
		}
		return 0
	case TypeInt:
		return v.Int()
	case TypeStr:
		i, err := strconv.ParseInt(v.Str(), 10, 32)
		if err != nil {
			return Answer
		}
		return int32(i)
	default:
		return Answer
	}
}

// IntoBool coerces the value to a boolean. Sometimes draws a fresh coin from
// r on every call; a nil r uses DefaultRand. Nul is truthy.
func (v Value) IntoBool(r Rand) bool {
	switch v.Type {
	case TypeAbool:
		return v.Abool().Resolve(r)
	case TypeBool:
		return v.Bool()
	case TypeFunctio:
		return true
	case TypeInt:
		return v.Int() != 0
	case TypeStr:
		return v.Str() != ""
	default:
		return true
	}
}

// WriteTape writes the value to a tape machine's input stream as a single
// byte: the integer coercion truncated to eight bits.
func (v Value) WriteTape(w io.Writer) error {
	if _, err := w.Write([]byte{byte(v.IntoI32())}); err != nil {
		return fmt.Errorf("write tape input: %w", err)
	}
	return nil
}

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeNul:
		return true
	case TypeStr:
		return v.Str() == other.Str()
	case TypeInt:
		return v.Int() == other.Int()
	case TypeBool:
		return v.Bool() == other.Bool()
	case TypeAbool:
		return v.Abool() == other.Abool()
	case TypeFunctio:
		return v.Functio().Equal(other.Functio())
	default:
		return false
	}
}

// Display renders the value the way a print statement shows it. Tape
// functios whose instructions are not valid UTF-8 fail with ErrInvalidUTF8.
func (v Value) Display() (string, error) {
	switch v.Type {
	case TypeNul:
		return "nul", nil
	case TypeStr:
		return v.Str(), nil
	case TypeInt:
		return strconv.FormatInt(int64(v.Int()), 10), nil
	case TypeBool:
		return strconv.FormatBool(v.Bool()), nil
	case TypeAbool:
		return v.Abool().String(), nil
	case TypeFunctio:
		f := v.Functio()
		if f == nil {
			return "", fmt.Errorf("display %s: missing functio payload", v.Type)
		}
		return f.display()
	default:
		return "", fmt.Errorf("display: unknown value type %d", int(v.Type))
	}
}

// String implements fmt.Stringer. Values that cannot be displayed render as
// a placeholder instead of failing.
func (v Value) String() string {
	s, err := v.Display()
	if err != nil {
		return "<" + v.Type.String() + ">"
	}
	return s
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
