package datrie

import (
	"unicode/utf8"

	"github.com/npillmayer/datrie/dat"
)

// Cursor walks the trie one character at a time, starting at the root.
//
// A cursor works on the arrays current at the time of its creation and never
// assigns character codes.
type Cursor struct {
	alphabet *Alphabet
	f        *frozen
	state    int
	n        int // number of validated transitions
	dead     bool
	terminal bool
}

// Cursor returns a new cursor positioned at the root state.
func (t *Trie) Cursor() *Cursor {
	return &Cursor{
		alphabet: t.alphabet,
		f:        t.current,
	}
}

// Next advances the cursor by r and returns the new state.
// It returns 0 when there is no transition for r; the cursor is dead from
// then on. A terminal state has no outgoing transitions.
func (c *Cursor) Next(r rune) int {
	if c.dead || c.f == nil {
		c.dead = true
		return 0
	}
	code, ok := c.code(r)
	if !ok {
		c.dead = true
		return 0
	}
	next, ok := c.f.arrays.Transition(c.state, code)
	if !ok {
		c.dead = true
		return 0
	}
	c.state = next
	c.n++
	c.terminal = c.f.arrays.IsTerminal(next)
	return next
}

// Terminal is true if the last transition ended a string.
func (c *Cursor) Terminal() bool {
	return !c.dead && c.terminal
}

// Len returns the number of characters validated so far.
func (c *Cursor) Len() int {
	return c.n
}

func (c *Cursor) code(r rune) (int32, bool) {
	if r <= dat.MaxBMP {
		code := c.f.bmp.Code(r)
		return code, code != 0
	}
	return c.alphabet.Lookup(r)
}

// MatchPrefix walks the trie along s.
//
// If a transition is missing, MatchPrefix returns ("", false). If a terminal
// state is reached, the walk stops and the prefix consumed so far is
// returned. If s is exhausted first, all of s is returned: every transition
// along s exists, but s need not be one of the strings built into t.
//
// With option TerminalLookahead, a terminal stop also includes the character
// following the terminal transition, if s has one.
func (t *Trie) MatchPrefix(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	cur := t.Cursor()
	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		i += w
		if cur.Next(r) == 0 {
			return "", false
		}
		if cur.Terminal() {
			if t.lookahead && i < len(s) {
				_, w = utf8.DecodeRuneInString(s[i:])
				i += w
			}
			return s[:i], true
		}
	}
	return s, true
}
