package lexicon

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"time"

	"japanesemorph/model"
)

// Gob snapshot of the parsed lexicon. Parsing the JMdict XML dominates
// startup time; decoding a snapshot rebuilds the same store in a fraction
// of it. The snapshot holds only the flattened entries, the indexes are
// rebuilt on decode.

// EncodeGOB writes the store's entries to w.
func EncodeGOB(w io.Writer, s *Store) error {
	return gob.NewEncoder(w).Encode(s.entries)
}

// DecodeGOB reads entries written by EncodeGOB and rebuilds the indexes.
func DecodeGOB(r io.Reader) (*Store, error) {
	var entries []model.DictionaryEntry
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("empty snapshot")
	}
	return newStore(entries), nil
}

// StoreGOB writes a snapshot atomically (temp file + rename).
func StoreGOB(file string, s *Store) error {
	tmp := fmt.Sprintf("%s.%d.tmp", file, time.Now().UnixNano())
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := EncodeGOB(f, s); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	f.Close()
	return os.Rename(tmp, file)
}

// LoadGOB loads a snapshot file.
func LoadGOB(file string) (*Store, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	s, err := DecodeGOB(f)
	f.Close()
	if err != nil {
		return nil, &LoadError{Source: file, Err: err}
	}
	return s, nil
}

// LoadWithCache loads the snapshot at cache when present, otherwise parses
// the XML source and writes a fresh snapshot for next time. Snapshot write
// failures are non-fatal: the parsed store is still returned.
func LoadWithCache(source, cache string) (*Store, error) {
	if cache != "" {
		if s, err := LoadGOB(cache); err == nil {
			return s, nil
		}
	}
	s, err := Load(source)
	if err != nil {
		return nil, err
	}
	if cache != "" {
		_ = StoreGOB(cache, s)
	}
	return s, nil
}
