package datrie

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/npillmayer/datrie/dat"
	"github.com/npillmayer/schuko/tracing"
)

// ErrInvalidCapacity is returned by New for an initial capacity below 1.
var ErrInvalidCapacity = errors.New("initial capacity must be at least 1")

// WordReader yields dictionary words one-by-one.
// It should return io.EOF when the stream is exhausted.
type WordReader interface {
	Next() (word string, err error)
}

// Trie is a double-array trie over a set of strings.
//
// The zero value is not usable, create tries with New.
type Trie struct {
	mu        sync.Mutex // serializes builds
	capacity  int
	lookahead bool
	alphabet  *Alphabet
	current   *frozen
}

// frozen is the result of one build. It is published as a whole.
type frozen struct {
	arrays *dat.DAT
	bmp    *dat.PagedMapBMP // codes of BMP characters at build time
	words  int
}

// Option configures a Trie at construction time.
type Option func(*Trie) error

// InitialCapacity sets the number of slots allocated for base and check at
// the start of every build. Default is dat.DefaultCapacity.
func InitialCapacity(n int) Option {
	return func(t *Trie) error {
		if n < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidCapacity, n)
		}
		t.capacity = n
		return nil
	}
}

// TerminalLookahead makes MatchPrefix include the character following a
// terminal transition in its result, if the query has one. This mirrors
// matchers which report count+1 characters on a terminal stop.
func TerminalLookahead(on bool) Option {
	return func(t *Trie) error {
		t.lookahead = on
		return nil
	}
}

// New creates an empty trie. Matching on it fails until Build is called.
func New(opts ...Option) (*Trie, error) {
	t := &Trie{
		capacity: dat.DefaultCapacity,
		alphabet: NewAlphabet(),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}
	t.current = &frozen{
		arrays: dat.New(t.capacity),
		bmp:    &dat.PagedMapBMP{},
	}
	return t, nil
}

// Alphabet returns the character code table of t.
func (t *Trie) Alphabet() *Alphabet {
	return t.alphabet
}

// Build replaces the content of t with words.
//
// The previous arrays are discarded, the alphabet is kept. Empty strings are
// skipped, duplicates collapse. Build calls are serialized; MatchPrefix must
// not run while a build is in progress.
func (t *Trie) Build(words []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	group := make([][]rune, 0, len(words))
	for _, w := range words {
		if w == "" {
			tracer().Debugf("skipping empty string")
			continue
		}
		group = append(group, []rune(w))
	}
	arrays := dat.New(t.capacity)
	b := newBuilder(arrays, t.alphabet)
	b.run(group)
	t.current = &frozen{
		arrays: arrays,
		bmp:    t.alphabet.Snapshot(),
		words:  len(group),
	}
	stats := t.Stats()
	tracer().Infof("datrie build: words=%d used=%d total=%d fill=%.2f maxState=%d alphabet=%d",
		stats.Words, stats.UsedSlots, stats.TotalSlots, stats.FillRatio(), stats.MaxState, stats.AlphabetSize)
	if tracer().GetTraceLevel() >= tracing.LevelDebug {
		tracing.With(tracer()).Dump("alphabet", t.alphabet.Entries())
	}
}

// BuildFrom drains reader and builds t from the words read.
// If reading fails, t is left untouched and the error is returned.
func (t *Trie) BuildFrom(reader WordReader) error {
	words := make([]string, 0, 1024)
	for {
		word, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading words: %w", err)
		}
		words = append(words, word)
	}
	t.Build(words)
	return nil
}

func (t *Trie) String() string {
	f := t.current
	return fmt.Sprintf("DAT(words=%d,states=%d,sigma=%d)", f.words, f.arrays.NStates(), t.alphabet.Size())
}
