// Package lexicon loads the JMdict lexicon into an in-memory store indexed
// by headword and by reading. The store is built once at startup, is
// immutable afterwards, and may be shared across any number of concurrent
// lookups without locking.
package lexicon

import (
	"fmt"
	"io"
	"os"

	jmdict "github.com/yomidevs/jmdict-go"

	"japanesemorph/model"
)

// LoadError reports a failed lexicon load. Loading is all-or-nothing: a
// LoadError means no store was produced and the process must not serve
// analysis requests.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("lexicon: load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Store is the read-only lexicon index. Both indexes are multimaps:
// homographs share a key and every matching entry is returned, never
// collapsed to one.
type Store struct {
	entries    []model.DictionaryEntry
	byHeadword map[string][]int
	byReading  map[string][]int
}

// Load reads a JMdict XML file and builds the store in a single pass.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	s, err := LoadReader(f)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	return s, nil
}

// LoadReader parses JMdict XML from r. Returns an error (and no store) if
// the document is malformed or contains no usable entries.
func LoadReader(r io.Reader) (*Store, error) {
	dict, _, err := jmdict.LoadJmdict(r)
	if err != nil {
		return nil, err
	}
	entries := flatten(dict)
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries in source")
	}
	return newStore(entries), nil
}

// flatten converts JMdict records to flat dictionary entries, one per
// written form, preserving source order (which is the source priority used
// for ranking ties downstream).
func flatten(dict jmdict.Jmdict) []model.DictionaryEntry {
	var out []model.DictionaryEntry
	for _, jm := range dict.Entries {
		if len(jm.Readings) == 0 {
			continue
		}
		readings := make([]string, 0, len(jm.Readings))
		var priorities []string
		for _, r := range jm.Readings {
			readings = append(readings, r.Reading)
			priorities = append(priorities, r.Priorities...)
		}
		var pos, glosses []string
		for _, sense := range jm.Sense {
			pos = appendUnique(pos, sense.PartsOfSpeech)
			for _, g := range sense.Glossary {
				glosses = append(glosses, g.Content)
			}
		}

		if len(jm.Kanji) == 0 {
			// Kana-only word: the reading is the written form.
			out = append(out, makeEntry(jm.Sequence, readings[0], readings, pos, glosses, priorities))
			continue
		}
		for _, k := range jm.Kanji {
			p := append(append([]string(nil), priorities...), k.Priorities...)
			out = append(out, makeEntry(jm.Sequence, k.Expression, readings, pos, glosses, p))
		}
	}
	return out
}

func makeEntry(seq int, headword string, readings, pos, glosses, priorities []string) model.DictionaryEntry {
	level, common := priorityLevel(priorities)
	e := model.DictionaryEntry{
		Sequence: seq,
		Headword: headword,
		Reading:  readings[0],
		POS:      pos,
		Glosses:  glosses,
		Level:    level,
		Common:   common,
	}
	if len(readings) > 1 {
		e.AltReadings = readings[1:]
	}
	return e
}

func newStore(entries []model.DictionaryEntry) *Store {
	s := &Store{
		entries:    entries,
		byHeadword: make(map[string][]int, len(entries)),
		byReading:  make(map[string][]int, len(entries)),
	}
	for i, e := range entries {
		s.byHeadword[e.Headword] = append(s.byHeadword[e.Headword], i)
		if e.Reading != e.Headword {
			s.byReading[e.Reading] = append(s.byReading[e.Reading], i)
		}
		for _, alt := range e.AltReadings {
			s.byReading[alt] = append(s.byReading[alt], i)
		}
	}
	return s
}

// LookupHeadword returns every entry whose written form exactly equals text,
// in source order. An empty slice means no match; never an error.
func (s *Store) LookupHeadword(text string) []model.DictionaryEntry {
	return s.collect(s.byHeadword[text])
}

// LookupReading is LookupHeadword over the kana reading index.
func (s *Store) LookupReading(text string) []model.DictionaryEntry {
	return s.collect(s.byReading[text])
}

func (s *Store) collect(idx []int) []model.DictionaryEntry {
	if len(idx) == 0 {
		return nil
	}
	out := make([]model.DictionaryEntry, len(idx))
	for i, n := range idx {
		out[i] = s.entries[n]
	}
	return out
}

// Len returns the number of indexed entries.
func (s *Store) Len() int { return len(s.entries) }

func appendUnique(dst, src []string) []string {
	for _, v := range src {
		found := false
		for _, d := range dst {
			if d == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
