/*
Package datrie builds and queries double-array tries.

A double-array trie encodes a finite set of strings as an automaton stored in
two parallel integer arrays, base and check (see package dat). Looking up the
longest available prefix of a query costs time proportional to the length of
the query, with a few bytes per transition. This is the workhorse behind
dictionary-driven tokenization and longest-match segmentation (see package
segment).

Every character is mapped to a dense positive code by an Alphabet, which is
owned by the trie. Build places the strings level by level: the children of a
state are grouped by their next character and the whole sibling group is
placed at the first base offset where all of its slots are free.

	t, _ := datrie.New()
	t.Build([]string{"ab", "ac", "bd", "cd", "bacd"})
	prefix, ok := t.MatchPrefix("bacdd") // "bacd", true

Build replaces the complete arrays and is serialized against other builds.
MatchPrefix does not lock: construction must complete before any matching
begins; there is no live-rebuild support.

The alphabet is not reset by Build. Character codes accumulate over the
lifetime of a trie, so two builds of the same strings may place them
differently depending on what earlier builds have seen.

Further Reading

	J. Aoe: An Efficient Digital Search Algorithm by Using a Double-Array Structure (1989)
	https://linux.thai.net/~thep/datrie/datrie.html

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package datrie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'datrie'
func tracer() tracing.Trace {
	return tracing.Select("datrie")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
