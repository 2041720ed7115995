package engine

import "sort"

// MaxInputs is the widest truth table that can be packed into a uint64.
const MaxInputs = 64

// Logic is a boolean function over an ordered list of input cells, defined
// by the set of packed input values for which it is true.
type Logic struct {
	inputs   []*Cell
	minterms map[uint64]struct{}
}

// NewLogic creates a table over inputs with no minterms. The first input
// is the most significant bit.
func NewLogic(inputs []*Cell) *Logic {
	return &Logic{
		inputs:   inputs,
		minterms: make(map[uint64]struct{}),
	}
}

// Width returns the number of inputs.
func (l *Logic) Width() int {
	return len(l.inputs)
}

// InRange reports whether m is a valid minterm for the table width.
func (l *Logic) InRange(m int64) bool {
	if m < 0 {
		return false
	}
	if len(l.inputs) >= 63 {
		return true
	}
	return m <= int64(1)<<len(l.inputs)-1
}

// Insert adds m to the minterm set. It returns false, leaving the set
// unchanged, when m is out of range.
func (l *Logic) Insert(m int64) bool {
	if !l.InRange(m) {
		return false
	}
	l.minterms[uint64(m)] = struct{}{}
	return true
}

// Pack reads the current input values, most significant first.
func (l *Logic) Pack() uint64 {
	var v uint64
	for _, c := range l.inputs {
		v <<= 1
		if c.Value() {
			v |= 1
		}
	}
	return v
}

// Eval reports whether the current input values form a minterm.
func (l *Logic) Eval() bool {
	_, ok := l.minterms[l.Pack()]
	return ok
}

// Minterms returns the minterm set in ascending order.
func (l *Logic) Minterms() []uint64 {
	out := make([]uint64, 0, len(l.minterms))
	for m := range l.minterms {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
