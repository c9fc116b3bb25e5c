package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Dictionary is an ordered list of upper-case words with set lookups.
type Dictionary struct {
	words    []string
	index    map[string]struct{}
	prefixes map[string]struct{}
}

// NewDictionary normalises words to upper case, dropping blanks and repeats
// while keeping first-seen order.
func NewDictionary(words []string) *Dictionary {
	d := &Dictionary{
		index:    make(map[string]struct{}, len(words)),
		prefixes: make(map[string]struct{}),
	}
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if _, ok := d.index[w]; ok {
			continue
		}
		d.index[w] = struct{}{}
		d.words = append(d.words, w)
		for i := range w {
			if i > 0 {
				d.prefixes[w[:i]] = struct{}{}
			}
		}
		d.prefixes[w] = struct{}{}
	}
	return d
}

// ReadDictionary reads one word per line. Lines starting with '#' are skipped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read dictionary: %w", err)
	}
	return NewDictionary(words), nil
}

// LoadDictionary reads a word list file.
func LoadDictionary(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()
	return ReadDictionary(f)
}

func (d *Dictionary) Len() int { return len(d.words) }

// Words returns a copy of the entries in dictionary order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

func (d *Dictionary) Contains(word string) bool {
	_, ok := d.index[word]
	return ok
}

// HasPrefix reports whether some entry starts with prefix. Every entry is a
// prefix of itself.
func (d *Dictionary) HasPrefix(prefix string) bool {
	_, ok := d.prefixes[prefix]
	return ok
}

// Filter returns the entries found among candidates, in dictionary order.
func (d *Dictionary) Filter(candidates []string) []string {
	set := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		set[c] = struct{}{}
	}
	var found []string
	for _, w := range d.words {
		if _, ok := set[w]; ok {
			found = append(found, w)
		}
	}
	return found
}
