package lang

// Cell is value storage that any number of Variables may share.
type Cell struct {
	value Value
}

// Variable is a named binding: a melo flag of its own plus a reference to
// storage that aliases may share. Writes through one binding are visible
// through every binding over the same Cell; the melo flag is never shared.
//
// Variables are not safe for concurrent use.
type Variable struct {
	melo bool
	cell *Cell
}

// NewVariable creates a binding over freshly allocated storage.
func NewVariable(val Value) *Variable {
	return &Variable{cell: &Cell{value: val}}
}

// Alias creates an uncursed binding over the same storage as v.
func (v *Variable) Alias() *Variable {
	return &Variable{cell: v.cell}
}

// Get returns the current value in the referenced storage.
func (v *Variable) Get() Value {
	return v.cell.value
}

// Set stores val; every alias observes it.
func (v *Variable) Set(val Value) {
	v.cell.value = val
}

// Melo reports whether this binding has been cursed.
func (v *Variable) Melo() bool {
	return v.melo
}

// SetMelo sets the cursed flag on this binding only.
func (v *Variable) SetMelo(melo bool) {
	v.melo = melo
}

// SharesStorage reports whether v and other alias the same Cell.
func (v *Variable) SharesStorage(other *Variable) bool {
	return other != nil && v.cell == other.cell
}
