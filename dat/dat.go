package dat

// DAT is the storage of a double-array trie.
//   - States are indices into Base/Check. State 0 is the root and Base[0] is 1
//     from initialization onward.
//   - Transition: t := Base[s] + c; valid if Check[t] == Base[s]; next state is t.
//   - c is a dense character code >= 1. c == 0 is never a valid code.
//
// Check holds the base value of the parent at the time the slot was allocated,
// not the parent's index. A slot is occupied iff Check[slot] != 0, which is why
// base offsets are always >= 1.
//
// Terminal slots carry End in Base: a string ends there and there are no
// further children.
type DAT struct {
	Base  []int32 // len == N
	Check []int32 // len == N
}

// End is the Base value of terminal slots.
const End int32 = -1

// DefaultCapacity is the initial number of slots if nothing else is requested.
const DefaultCapacity = 1024

// Capacity threshold below which Grow doubles. At or above it, Grow adds 25%.
const doublingLimit = 4096

// New allocates arrays with capacity slots, all zero except Base[0] = 1.
// capacity must be >= 1.
func New(capacity int) *DAT {
	assert(capacity >= 1, "DAT capacity must be positive")
	d := &DAT{
		Base:  make([]int32, capacity),
		Check: make([]int32, capacity),
	}
	d.Base[0] = 1
	return d
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Grow enlarges both arrays by one growth step, preserving contents and
// zero-filling new slots.
func (d *DAT) Grow() {
	assert(len(d.Base) == len(d.Check), "base and check out of sync")
	n := len(d.Base)
	var grow int
	if n < doublingLimit {
		grow = n
	} else {
		grow = n / 4
	}
	if grow < 1 {
		grow = 1
	}
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

// Ensure grows the arrays until idx is a valid slot index.
func (d *DAT) Ensure(idx int) {
	for idx >= len(d.Base) {
		d.Grow()
	}
}

// Occupied is true if slot t has been claimed by some parent.
func (d *DAT) Occupied(t int) bool {
	return t >= 0 && t < len(d.Check) && d.Check[t] != 0
}

// IsTerminal is true if a string ends at slot t.
func (d *DAT) IsTerminal(t int) bool {
	return t >= 0 && t < len(d.Base) && d.Base[t] == End
}

// Transition returns (nextState, ok) for character code c.
func (d *DAT) Transition(state int, c int32) (int, bool) {
	if state < 0 || state >= len(d.Base) || c <= 0 {
		return 0, false
	}
	b := d.Base[state]
	if b <= 0 { // terminal or unplaced
		return 0, false
	}
	t := int(b) + int(c)
	if t >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != b {
		return 0, false
	}
	return t, true
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
