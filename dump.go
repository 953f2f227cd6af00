package datrie

import (
	"bufio"
	"fmt"
	"io"
)

// Stats reports density metrics for the arrays of a trie.
type Stats struct {
	Words        int // strings given to the last build, empty ones excluded
	UsedSlots    int // slots with check != 0, plus the root
	TotalSlots   int
	MaxState     int // highest occupied slot
	AlphabetSize int
}

// FillRatio is the share of used slots.
func (s Stats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// Stats computes statistics for the current arrays.
func (t *Trie) Stats() Stats {
	f := t.current
	stats := Stats{
		Words:        f.words,
		TotalSlots:   f.arrays.NStates(),
		AlphabetSize: t.alphabet.Size(),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	stats.UsedSlots = 1 // root
	for i := 1; i < len(f.arrays.Check); i++ {
		if f.arrays.Check[i] != 0 {
			stats.UsedSlots++
			stats.MaxState = i
		}
	}
	return stats
}

// Dump writes the character code table and every non-empty (base, check)
// slot pair to w. The output is meant for humans and may change without
// notice.
func (t *Trie) Dump(w io.Writer) error {
	f := t.current
	assert(len(f.arrays.Base) == len(f.arrays.Check), "base and check out of sync")
	bw := bufio.NewWriter(w)
	for _, e := range t.alphabet.Entries() {
		fmt.Fprintf(bw, "%c ==> %d; ", e.Char, e.Code)
	}
	fmt.Fprintln(bw)
	for i := range f.arrays.Base {
		b, c := f.arrays.Base[i], f.arrays.Check[i]
		if b == 0 && c == 0 {
			continue
		}
		fmt.Fprintf(bw, "base[%d]=%d ==> check[%d]=%d\n", i, b, i, c)
	}
	return bw.Flush()
}
