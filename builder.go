package datrie

import (
	"github.com/npillmayer/datrie/dat"
)

// workItem is a group of suffixes waiting to be placed below state parent.
type workItem struct {
	group  [][]rune
	parent int
}

// bucket collects the strings of a group which start with the same character.
type bucket struct {
	char     rune
	code     int32
	suffixes [][]rune // remainders after char, empty ones dropped
}

// builder places sibling groups into a fresh pair of arrays.
type builder struct {
	d         *dat.DAT
	alphabet  *Alphabet
	used      []bool // used[b] is true once b has been committed as a base
	firstFree int    // no free slot below this index
	queue     []workItem
}

func newBuilder(d *dat.DAT, alphabet *Alphabet) *builder {
	return &builder{
		d:         d,
		alphabet:  alphabet,
		used:      make([]bool, d.NStates()),
		firstFree: 1,
	}
}

// run places all strings of root below the root state, breadth first.
func (b *builder) run(root [][]rune) {
	if len(root) == 0 {
		return
	}
	b.queue = append(b.queue, workItem{group: root, parent: 0})
	for q := 0; q < len(b.queue); q++ {
		item := b.queue[q]
		b.queue[q] = workItem{} // let the suffixes go
		b.place(item)
	}
	assert(len(b.d.Base) == len(b.d.Check), "base and check out of sync")
}

// place finds a conflict-free base for the children of item.parent, claims
// their slots and queues the non-terminal ones.
func (b *builder) place(item workItem) {
	buckets := partition(item.group, b.alphabet)
	begin := b.findBase(item.parent, buckets)
	b.d.Base[item.parent] = begin
	b.markUsed(begin)
	for _, bk := range buckets {
		b.d.Check[int(begin)+int(bk.code)] = begin
	}
	for _, bk := range buckets {
		t := int(begin) + int(bk.code)
		if len(bk.suffixes) == 0 {
			b.d.Base[t] = dat.End
			continue
		}
		b.queue = append(b.queue, workItem{group: bk.suffixes, parent: t})
	}
	b.advanceFirstFree()
	tracer().Debugf("placed %d children of state %d at base %d", len(buckets), item.parent, begin)
}

// partition groups strings by their first character, in order of first
// appearance. Codes are requested in the same order.
func partition(group [][]rune, alphabet *Alphabet) []bucket {
	index := make(map[rune]int)
	buckets := make([]bucket, 0, 8)
	for _, s := range group {
		i, ok := index[s[0]]
		if !ok {
			i = len(buckets)
			index[s[0]] = i
			buckets = append(buckets, bucket{char: s[0], code: alphabet.Code(s[0])})
		}
		if len(s) > 1 {
			buckets[i].suffixes = append(buckets[i].suffixes, s[1:])
		}
	}
	return buckets
}

// findBase probes candidate base offsets one by one until every sibling slot
// is free at the same time. Storage grows whenever a candidate slot lies
// beyond the end, so the search always terminates.
func (b *builder) findBase(parent int, buckets []bucket) int32 {
	minCode := buckets[0].code
	for _, bk := range buckets[1:] {
		minCode = min(minCode, bk.code)
	}
	// base 0 would write check values indistinguishable from free slots
	begin := max(b.d.Base[parent], 1)
	// slots below firstFree are all taken, skip candidates that would need one
	begin = max(begin, int32(b.firstFree)-minCode)
	for ; ; begin++ {
		if b.isUsed(begin) {
			continue
		}
		if b.fits(begin, buckets) {
			return begin
		}
	}
}

func (b *builder) fits(begin int32, buckets []bucket) bool {
	for _, bk := range buckets {
		t := int(begin) + int(bk.code)
		b.d.Ensure(t)
		if b.d.Check[t] != 0 {
			return false
		}
	}
	return true
}

// Two parents sharing a base would be indistinguishable by check values.
func (b *builder) isUsed(begin int32) bool {
	return int(begin) < len(b.used) && b.used[begin]
}

func (b *builder) markUsed(begin int32) {
	for int(begin) >= len(b.used) {
		b.used = append(b.used, make([]bool, len(b.used)+1)...)
	}
	b.used[begin] = true
}

func (b *builder) advanceFirstFree() {
	for b.firstFree < len(b.d.Check) && (b.firstFree < 2 || b.d.Check[b.firstFree] != 0) {
		b.firstFree++
	}
}
