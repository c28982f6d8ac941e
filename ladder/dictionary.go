package ladder

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/katalvlaran/wordpath/report"
)

// Dictionary is an immutable set of words with a lexicographically sorted
// view. The zero value and a nil *Dictionary are both empty dictionaries.
//
// byLen groups the sorted words by rune length so neighbor scans only touch
// words whose length can be within one edit.
type Dictionary struct {
	words  map[string]struct{}
	sorted []string
	byLen  map[int][]string
}

// NewDictionary builds a Dictionary from words. Duplicates collapse; words
// are stored verbatim (no case folding, no trimming).
// Complexity: O(n log n)
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{
		words: make(map[string]struct{}, len(words)),
		byLen: make(map[int][]string),
	}
	for _, w := range words {
		if _, dup := d.words[w]; dup {
			continue
		}
		d.words[w] = struct{}{}
		d.sorted = append(d.sorted, w)
	}
	sort.Strings(d.sorted)
	for _, w := range d.sorted {
		n := utf8.RuneCountInString(w)
		d.byLen[n] = append(d.byLen[n], w)
	}

	return d
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	if d == nil {
		return false
	}
	_, ok := d.words[w]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.sorted)
}

// Words returns a sorted copy of the dictionary's words.
func (d *Dictionary) Words() []string {
	if d == nil {
		return nil
	}
	return append([]string(nil), d.sorted...)
}

// adjacentTo returns, in lexicographic order, every dictionary word other
// than w that IsAdjacent to w.
func (d *Dictionary) adjacentTo(w string) []string {
	if d == nil {
		return nil
	}

	n := utf8.RuneCountInString(w)
	var out []string
	for _, l := range [...]int{n - 1, n, n + 1} {
		for _, cand := range d.byLen[l] {
			if cand != w && IsAdjacent(w, cand) {
				out = append(out, cand)
			}
		}
	}
	sort.Strings(out)

	return out
}

// MaxWordSize is the longest token, in bytes, ReadWords accepts.
const MaxWordSize = 16 << 20

// ReadWords splits r on whitespace and returns a Dictionary of the tokens.
// Any read error from r is returned with the words read so far discarded;
// a token longer than MaxWordSize fails with bufio.ErrTooLong.
func ReadWords(r io.Reader) (*Dictionary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxWordSize)
	sc.Split(bufio.ScanWords)

	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ladder: read words: %w", err)
	}

	return NewDictionary(words...), nil
}

// LoadWords reads the word file at path. When the file cannot be opened or
// read, the problem goes to rep and an empty Dictionary is returned, so
// callers always get a usable value.
func LoadWords(path string, rep *report.Reporter) *Dictionary {
	if rep == nil {
		rep = report.Discard()
	}

	f, err := os.Open(path)
	if err != nil {
		rep.Errorf("Unable to open %s", path)
		return NewDictionary()
	}
	defer f.Close()

	d, err := ReadWords(f)
	if err != nil {
		rep.Errorf("Unable to read %s: %v", path, err)
		return NewDictionary()
	}
	rep.Logger().Debug("dictionary loaded", "path", path, "words", d.Len())

	return d
}
