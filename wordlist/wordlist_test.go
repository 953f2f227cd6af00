package wordlist

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

func readAll(t *testing.T, r *Reader) []string {
	t.Helper()
	var words []string
	for {
		w, err := r.Next()
		if err == io.EOF {
			return words
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		words = append(words, w)
	}
}

func TestReader(t *testing.T) {
	src := "\uFEFF# sample dictionary\n" +
		"ab\n" +
		"\n" +
		"  ac  \n" +
		"中文 1024 n\n" +
		"bacd\t7\n"
	words := readAll(t, NewReader(strings.NewReader(src)))
	want := []string{"ab", "ac", "中文", "bacd"}
	if !reflect.DeepEqual(words, want) {
		t.Fatalf("words mismatch: got %q, want %q", words, want)
	}
}

func TestEncodedReaderGBK(t *testing.T) {
	gbk, _, err := transform.String(simplifiedchinese.GBK.NewEncoder(), "中文\n中国人 12\n")
	if err != nil {
		t.Fatal(err)
	}
	enc, ok := Encoding("GBK")
	if !ok {
		t.Fatalf("GBK should be supported")
	}
	words := readAll(t, NewEncodedReader(strings.NewReader(gbk), enc))
	if !reflect.DeepEqual(words, []string{"中文", "中国人"}) {
		t.Fatalf("GBK decoding failed: %q", words)
	}
}

func TestEncodedReaderUTF16(t *testing.T) {
	utf16le := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	src, _, err := transform.String(utf16le.NewEncoder(), "schön\nheit\n")
	if err != nil {
		t.Fatal(err)
	}
	enc, ok := Encoding("utf-16le")
	if !ok {
		t.Fatalf("UTF-16LE should be supported")
	}
	words := readAll(t, NewEncodedReader(strings.NewReader(src), enc))
	if !reflect.DeepEqual(words, []string{"schön", "heit"}) {
		t.Fatalf("UTF-16 decoding failed: %q", words)
	}
}

func TestEncodingNames(t *testing.T) {
	for _, name := range []string{"UTF-8", "ISO-8859-1", "windows-1252", "GB18030", "gb2312", "Big5", "UTF-16BE"} {
		if _, ok := Encoding(name); !ok {
			t.Fatalf("charset %s should be supported", name)
		}
	}
	if _, ok := Encoding("EBCDIC"); ok {
		t.Fatalf("EBCDIC should not be supported")
	}
}

func TestDetectingReader(t *testing.T) {
	src := strings.Repeat("中文字典\n汉字\n", 50)
	r, err := NewDetectingReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	words := readAll(t, r)
	if len(words) != 100 || words[0] != "中文字典" || words[1] != "汉字" {
		t.Fatalf("detecting reader returned %d words, first %q", len(words), words[:min(2, len(words))])
	}
	r, err = NewDetectingReader(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if words = readAll(t, r); len(words) != 0 {
		t.Fatalf("expected no words from empty input, got %q", words)
	}
}

func TestLoad(t *testing.T) {
	trie, err := Load("sample", strings.NewReader("ab\nac\nbd\ncd\nbacd\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got, ok := trie.MatchPrefix("bacdd"); !ok || got != "bacd" {
		t.Fatalf("MatchPrefix(bacdd) = (%q, %v)", got, ok)
	}
}

func TestDetectingReaderLatin1(t *testing.T) {
	src := strings.Repeat("caf\xe9\nna\xefve\nr\xe9sum\xe9\n", 60)
	r, err := NewDetectingReader(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	words := readAll(t, r)
	if len(words) != 180 {
		t.Fatalf("expected 180 words, got %d", len(words))
	}
	if want := []string{"café", "naïve", "résumé"}; !reflect.DeepEqual(words[:3], want) {
		t.Fatalf("Latin-1 decoding failed: got %q, want %q", words[:3], want)
	}
}

func TestLatin1KeepsASCII(t *testing.T) {
	enc, ok := Encoding("ISO-8859-1")
	if !ok {
		t.Fatalf("ISO-8859-1 should be supported")
	}
	words := readAll(t, NewEncodedReader(strings.NewReader("hello\nworld\n"), enc))
	if !reflect.DeepEqual(words, []string{"hello", "world"}) {
		t.Fatalf("ASCII changed by Latin-1 decoding: %q", words)
	}
}
