/*
Package wordlist streams dictionary words into a double-array trie.

A word list has one entry per line. Only the first whitespace-separated field
of a line is taken as the word, so dictionaries in the common
"word frequency tag" layout load without conversion. Blank lines and lines
starting with '#' are skipped.

Word lists in legacy encodings (Latin-1, GBK, Big5, UTF-16) are decoded on the fly,
either with a known encoding or by detecting the charset from a sample.
*/
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/datrie"
	"github.com/npillmayer/schuko/tracing"
	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// tracer writes to trace with key 'datrie.wordlist'
func tracer() tracing.Trace {
	return tracing.Select("datrie.wordlist")
}

// sampleSize is the number of bytes inspected for charset detection.
const sampleSize = 4096

// Reader streams words from a word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// NewReader creates a reader for UTF-8 encoded word lists.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// NewEncodedReader creates a reader which decodes input with enc.
func NewEncodedReader(reader io.Reader, enc encoding.Encoding) *Reader {
	return NewReader(transform.NewReader(reader, enc.NewDecoder()))
}

// NewDetectingReader guesses the charset of reader from a sample of its
// content and decodes accordingly. Undetectable or unsupported charsets are
// read as UTF-8.
func NewDetectingReader(reader io.Reader) (*Reader, error) {
	br := bufio.NewReaderSize(reader, sampleSize)
	sample, err := br.Peek(sampleSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return nil, fmt.Errorf("sampling word list: %w", err)
	}
	if len(sample) == 0 {
		return NewReader(br), nil
	}
	charset := "UTF-8"
	result, err := chardet.NewTextDetector().DetectBest(sample)
	if err != nil {
		tracer().Infof("charset detection failed: %v, assuming UTF-8", err)
	} else {
		charset = result.Charset
		tracer().Debugf("detected charset %s (confidence %d)", result.Charset, result.Confidence)
	}
	enc, ok := Encoding(charset)
	if !ok {
		tracer().Infof("unsupported charset %s, assuming UTF-8", charset)
		enc = encoding.Nop
	}
	return NewEncodedReader(br, enc), nil
}

// Encoding returns the decoder for a charset name as reported by charset
// detection, e.g. "GB18030" or "UTF-16LE". Names are case-insensitive.
func Encoding(name string) (encoding.Encoding, bool) {
	switch strings.ToLower(name) {
	case "utf-8", "utf8", "ascii":
		return encoding.Nop, true
	case "iso-8859-1", "latin1":
		// chardet reports pure ASCII word lists as ISO-8859-1, which decodes them unchanged
		return charmap.ISO8859_1, true
	case "windows-1252", "cp1252":
		return charmap.Windows1252, true
	case "iso-8859-15":
		return charmap.ISO8859_15, true
	case "iso-8859-9":
		return charmap.ISO8859_9, true
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), true
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), true
	case "gbk", "gb2312":
		return simplifiedchinese.GBK, true
	case "gb18030", "gb-18030":
		return simplifiedchinese.GB18030, true
	case "big5":
		return traditionalchinese.Big5, true
	}
	return nil, false
}

// Next returns the next word of the list.
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.Fields(line)[0], nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", fmt.Errorf("word list line %d: %w", r.line+1, err)
	}
	return "", io.EOF
}

// Load reads a UTF-8 word list and returns a trie built from it.
func Load(name string, reader io.Reader, opts ...datrie.Option) (*datrie.Trie, error) {
	trie, err := datrie.New(opts...)
	if err != nil {
		return nil, err
	}
	if err = trie.BuildFrom(NewReader(reader)); err != nil {
		return nil, fmt.Errorf("word list %s: %w", name, err)
	}
	tracer().Infof("word list %s loaded: %s", name, trie)
	return trie, nil
}
