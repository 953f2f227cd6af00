/*
Command datrie builds a double-array trie from a word list and matches
queries against it.

Usage:

	datrie -words dict.txt [-charset auto] [-cap 1024] [-dump] [-segment] [-v] query ...

Every query is answered with the matched prefix, or with "(no match)".
With -segment, queries are split into tokens by longest matching instead.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/datrie"
	"github.com/npillmayer/datrie/dat"
	"github.com/npillmayer/datrie/segment"
	"github.com/npillmayer/datrie/wordlist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	wordsFile string
	charset   string
	capacity  int
	dump      bool
	segmented bool
	verbose   bool
)

func main() {
	registerFlags(flag.CommandLine)
	flag.Parse()

	tracer := gologadapter.New()
	if verbose {
		tracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer.SetTraceLevel(tracing.LevelError)
	}
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return tracer }))

	if wordsFile == "" {
		fmt.Fprintln(os.Stderr, "datrie: -words is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, flag.Args()); err != nil {
		tracer.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "datrie: %v\n", err)
		os.Exit(1)
	}
}

func registerFlags(fs *flag.FlagSet) {
	fs.StringVar(&wordsFile, "words", "", "word list, one word per line")
	fs.StringVar(&charset, "charset", "utf-8", "charset of the word list, or 'auto'")
	fs.IntVar(&capacity, "cap", dat.DefaultCapacity, "initial capacity of the double array")
	fs.BoolVar(&dump, "dump", false, "dump code table and arrays")
	fs.BoolVar(&segmented, "segment", false, "segment queries into tokens")
	fs.BoolVar(&verbose, "v", false, "verbose tracing")
}

func run(out io.Writer, queries []string) error {
	f, err := os.Open(wordsFile)
	if err != nil {
		return err
	}
	defer f.Close()
	reader, err := openWordList(f)
	if err != nil {
		return err
	}
	trie, err := datrie.New(datrie.InitialCapacity(capacity))
	if err != nil {
		return err
	}
	if err = trie.BuildFrom(reader); err != nil {
		return err
	}
	if dump {
		if err = trie.Dump(out); err != nil {
			return err
		}
	}
	seg := segment.New(trie)
	for _, q := range queries {
		if segmented {
			fmt.Fprintf(out, "%s => %s\n", q, strings.Join(seg.Strings(q), " | "))
			continue
		}
		if prefix, ok := trie.MatchPrefix(q); ok {
			fmt.Fprintf(out, "%s => %s\n", q, prefix)
		} else {
			fmt.Fprintf(out, "%s => (no match)\n", q)
		}
	}
	return nil
}

func openWordList(r io.Reader) (*wordlist.Reader, error) {
	if strings.EqualFold(charset, "auto") {
		return wordlist.NewDetectingReader(r)
	}
	enc, ok := wordlist.Encoding(charset)
	if !ok {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	return wordlist.NewEncodedReader(r, enc), nil
}
