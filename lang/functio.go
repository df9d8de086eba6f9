package lang

import (
	"bytes"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"unicode/utf8"
)

// FunctioKind selects the representation of a Functio.
type FunctioKind int

const (
	// FunctioTape is a foreign tape-machine program.
	FunctioTape FunctioKind = iota
	// FunctioNative is a functio written in the language itself.
	FunctioNative
)

// Functio is the language's callable. Tape functios carry opaque
// instructions for the tape machine; native functios carry parameter names
// and a body. Which fields are meaningful depends on Kind.
type Functio struct {
	Kind FunctioKind

	Instructions []byte
	TapeLen      int

	Params []string
	Body   Block
}

// TapeFunctio constructs a foreign tape-machine functio.
func TapeFunctio(instructions []byte, tapeLen int) *Functio {
	return &Functio{
		Kind:         FunctioTape,
		Instructions: instructions,
		TapeLen:      tapeLen,
	}
}

// NativeFunctio constructs a functio from parameter names and a body.
func NativeFunctio(params []string, body Block) *Functio {
	return &Functio{
		Kind:   FunctioNative,
		Params: params,
		Body:   body,
	}
}

// Equal reports structural equality. Two nil functios are equal.
func (f *Functio) Equal(other *Functio) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.Kind != other.Kind {
		return false
	}
	switch f.Kind {
	case FunctioTape:
		return f.TapeLen == other.TapeLen && bytes.Equal(f.Instructions, other.Instructions)
	case FunctioNative:
		return slices.Equal(f.Params, other.Params) && reflect.DeepEqual(f.Body, other.Body)
	default:
		return false
	}
}

// weight is the integer coercion of a functio. It is not a meaningful count.
func (f *Functio) weight() int32 {
	switch f.Kind {
	case FunctioTape:
		return int32(len(f.Instructions) + f.TapeLen)
	case FunctioNative:
		return int32(len(f.Params) + len(f.Body.Stmts))
	default:
		return 0
	}
}

func (f *Functio) display() (string, error) {
	switch f.Kind {
	case FunctioTape:
		if !utf8.Valid(f.Instructions) {
			return "", ErrInvalidUTF8
		}
		return fmt.Sprintf("(%d) %s", f.TapeLen, f.Instructions), nil
	case FunctioNative:
		return fmt.Sprintf("(%s) -> %s", strings.Join(f.Params, ", "), f.Body), nil
	default:
		return "", fmt.Errorf("display: unknown functio kind %d", int(f.Kind))
	}
}
