package lang

import "math/rand/v2"

// Abool is a tri-state boolean. Sometimes has no fixed truth value: it is
// resolved again on every coercion.
type Abool int8

const (
	Never     Abool = -1
	Sometimes Abool = 0
	Always    Abool = 1
)

func (a Abool) String() string {
	switch a {
	case Never:
		return "never"
	case Sometimes:
		return "sometimes"
	case Always:
		return "always"
	default:
		return "unknown"
	}
}

// Resolve converts the abool to a boolean, flipping a coin from r for
// Sometimes. A nil r, or a nil RandFunc, uses DefaultRand.
func (a Abool) Resolve(r Rand) bool {
	switch a {
	case Always:
		return true
	case Sometimes:
		if f, ok := r.(RandFunc); r == nil || ok && f == nil {
			r = DefaultRand
		}
		return r.Bool()
	default:
		return false
	}
}

// Rand supplies the coin flips used to resolve Sometimes.
type Rand interface {
	Bool() bool
}

// RandFunc adapts a plain function to Rand.
type RandFunc func() bool

func (f RandFunc) Bool() bool { return f() }

// DefaultRand draws from the process-wide generator.
var DefaultRand Rand = RandFunc(func() bool {
	return rand.IntN(2) == 1
})
