/*
Package segment splits text into tokens by forward longest matching against a
double-array trie.

At every position the segmenter walks the trie along the rest of the text. If
the walk ends a dictionary word, the word becomes one token; otherwise a single
character becomes a token of its own and segmentation continues behind it.

	t, _ := wordlist.Load("dict", f)
	for _, tok := range segment.New(t).Segment("研究生命起源") {
		fmt.Println(tok.Text, tok.Known)
	}
*/
package segment

import (
	"unicode/utf8"

	"github.com/npillmayer/datrie"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'datrie.segment'
func tracer() tracing.Trace {
	return tracing.Select("datrie.segment")
}

// Token is one segment of a text.
type Token struct {
	Text   string
	Offset int  // byte offset in the input
	Known  bool // matched by the trie
}

// Segmenter performs forward maximum matching.
type Segmenter struct {
	trie *datrie.Trie
}

// New creates a segmenter for a trie. The trie must be built before
// Segment is called.
func New(trie *datrie.Trie) *Segmenter {
	return &Segmenter{trie: trie}
}

// Segment splits text into tokens. Concatenating the token texts yields text.
//
// A token is Known only if the walk through the trie ends in a terminal
// state. Text which merely begins a dictionary word is split into single
// characters.
func (s *Segmenter) Segment(text string) []Token {
	tokens := make([]Token, 0, utf8.RuneCountInString(text)/2+1)
	for i := 0; i < len(text); {
		if end := s.matchWord(text, i); end > i {
			tokens = append(tokens, Token{Text: text[i:end], Offset: i, Known: true})
			i = end
			continue
		}
		_, w := utf8.DecodeRuneInString(text[i:])
		tokens = append(tokens, Token{Text: text[i : i+w], Offset: i})
		i += w
	}
	tracer().Debugf("segmented %d bytes into %d tokens", len(text), len(tokens))
	return tokens
}

// matchWord returns the end offset of the longest word starting at
// text[start:], or start if the walk does not reach a terminal state.
func (s *Segmenter) matchWord(text string, start int) int {
	cur := s.trie.Cursor()
	end := start
	for i := start; i < len(text); {
		r, w := utf8.DecodeRuneInString(text[i:])
		i += w
		if cur.Next(r) == 0 {
			break
		}
		if cur.Terminal() {
			end = i
		}
	}
	return end
}

// Strings returns the token texts of Segment(text).
func (s *Segmenter) Strings(text string) []string {
	tokens := s.Segment(text)
	strs := make([]string, len(tokens))
	for i, t := range tokens {
		strs[i] = t.Text
	}
	return strs
}
