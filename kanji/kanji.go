// Package kanji provides per-character readings from Kanjidic2 and aligns a
// word's kana reading against its kanji spelling to produce furigana.
package kanji

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// character mirrors the <character> element of kanjidic2.xml; only the
// literal and its ja_on/ja_kun readings are kept.
type character struct {
	Literal        string `xml:"literal"`
	ReadingMeaning struct {
		RMGroup []struct {
			Reading []struct {
				Value string `xml:",chardata"`
				Type  string `xml:"r_type,attr"`
			} `xml:"reading"`
		} `xml:"rmgroup"`
	} `xml:"reading_meaning"`
}

// Map holds kanji → readings, immutable after load.
type Map struct {
	readings map[rune][]string
}

// Load parses kanjidic2.xml from a file.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("kanjidic: %w", err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader streams <character> elements so the full document is never
// held in memory at once.
func LoadReader(r io.Reader) (*Map, error) {
	m := &Map{readings: make(map[rune][]string)}
	d := xml.NewDecoder(r)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("kanjidic: %w", err)
		}
		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "character" {
			continue
		}
		var c character
		if err := d.DecodeElement(&c, &se); err != nil {
			return nil, fmt.Errorf("kanjidic: %w", err)
		}
		if utf8.RuneCountInString(c.Literal) != 1 {
			continue
		}
		var readings []string
		for _, g := range c.ReadingMeaning.RMGroup {
			for _, rd := range g.Reading {
				if rd.Type == "ja_on" || rd.Type == "ja_kun" {
					readings = append(readings, rd.Value)
				}
			}
		}
		literal, _ := utf8.DecodeRuneInString(c.Literal)
		m.readings[literal] = readings
	}
	return m, nil
}

// Readings returns the on/kun readings of one kanji, nil when unknown.
func (m *Map) Readings(r rune) []string {
	if m == nil {
		return nil
	}
	return m.readings[r]
}

// Len returns the number of kanji loaded.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.readings)
}

// IsKanji reports whether r is in the CJK unified ideographs block.
func IsKanji(r rune) bool { return r >= 0x4E00 && r <= 0x9FFF }

// IsKana reports whether r is hiragana or katakana.
func IsKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

// KatakanaToHiragana folds katakana to hiragana for alignment.
func KatakanaToHiragana(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if r >= 0x30A1 && r <= 0x30F6 {
			runes[i] = r - 0x60
		}
	}
	return string(runes)
}

// NormalizeReading folds a Kanjidic reading to plain hiragana: katakana
// converted, okurigana marker (the part after '.') dropped, affix dashes
// stripped.
func NormalizeReading(s string) string {
	if i := strings.IndexRune(s, '.'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "-")
	return KatakanaToHiragana(s)
}

// rendakuVoiced maps an initial kana to its sequential-voicing form, the
// sound shift of non-initial compound elements (かわ → がわ in 入見内川).
var rendakuVoiced = map[rune]rune{
	'か': 'が', 'き': 'ぎ', 'く': 'ぐ', 'け': 'げ', 'こ': 'ご',
	'さ': 'ざ', 'し': 'じ', 'す': 'ず', 'せ': 'ぜ', 'そ': 'ぞ',
	'た': 'だ', 'ち': 'ぢ', 'つ': 'づ', 'て': 'で', 'と': 'ど',
	'は': 'ば', 'ひ': 'び', 'ふ': 'ぶ', 'へ': 'べ', 'ほ': 'ぼ',
}

// RendakuForm voices the first kana of a reading, or returns it unchanged
// when it has no voiced counterpart.
func RendakuForm(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if v, ok := rendakuVoiced[runes[0]]; ok {
		runes[0] = v
	}
	return string(runes)
}
