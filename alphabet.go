package datrie

import (
	"sort"
	"sync"

	"github.com/npillmayer/datrie/dat"
)

// Alphabet assigns dense character codes on first sight.
//
// Codes start at 1 and increase by one per distinct character; 0 is reserved
// for "no code". Codes are never reassigned or reclaimed, not even when the
// owning trie is rebuilt.
//
// Code is safe for concurrent use. Assignment is exclusive, lookups of
// already assigned codes do not block.
type Alphabet struct {
	mu    sync.Mutex // guards assignment and next
	codes sync.Map   // rune -> int32
	next  int32
	size  int
}

// CodeEntry is one line of the code table.
type CodeEntry struct {
	Char rune
	Code int32
}

// NewAlphabet creates an empty alphabet.
func NewAlphabet() *Alphabet {
	return &Alphabet{next: 1}
}

// Code returns the code for r, assigning the next free code if r has not been
// seen before.
func (a *Alphabet) Code(r rune) int32 {
	if c, ok := a.codes.Load(r); ok {
		return c.(int32)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if c, ok := a.codes.Load(r); ok { // lost a race to another caller
		return c.(int32)
	}
	if a.next == 0 { // zero value Alphabet
		a.next = 1
	}
	c := a.next
	a.next++
	a.size++
	a.codes.Store(r, c)
	tracer().Debugf("char code %#U ==> %d", r, c)
	return c
}

// Lookup returns the code for r without assigning one.
func (a *Alphabet) Lookup(r rune) (int32, bool) {
	c, ok := a.codes.Load(r)
	if !ok {
		return 0, false
	}
	return c.(int32), true
}

// Size returns the number of characters with an assigned code.
func (a *Alphabet) Size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.size
}

// Entries returns the code table ordered by code.
func (a *Alphabet) Entries() []CodeEntry {
	entries := make([]CodeEntry, 0, a.Size())
	a.codes.Range(func(k, v any) bool {
		entries = append(entries, CodeEntry{Char: k.(rune), Code: v.(int32)})
		return true
	})
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}

// Snapshot compiles the codes of all BMP characters into a page table.
// Characters outside the BMP are left out; callers fall back to Lookup.
func (a *Alphabet) Snapshot() *dat.PagedMapBMP {
	m := &dat.PagedMapBMP{}
	a.codes.Range(func(k, v any) bool {
		m.Set(k.(rune), v.(int32))
		return true
	})
	return m
}
