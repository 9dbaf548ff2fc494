package kanji

import "strings"

// Furigana aligns reading against surface and returns (segment, kana) pairs,
// one per surface rune. Kana and punctuation segments get an empty
// annotation. Alignment is greedy longest-match over each kanji's known
// readings, trying the normalized form, the pre-okurigana prefix, and (for
// non-initial kanji) the rendaku-voiced form; when nothing matches, the
// remaining reading is assigned to the last kanji so no kana is lost.
func (m *Map) Furigana(surface, reading string) [][2]string {
	surfaceRunes := []rune(surface)
	readingRunes := []rune(KatakanaToHiragana(reading))
	out := make([][2]string, 0, len(surfaceRunes))
	k := 0
	for j, s := range surfaceRunes {
		if !IsKanji(s) {
			out = append(out, [2]string{string(s), ""})
			if k < len(readingRunes) && readingRunes[k] == s {
				k++
			}
			continue
		}
		best := ""
		for _, kr := range m.Readings(s) {
			for _, v := range readingVariants(kr, j > 0) {
				vr := []rune(v)
				if k+len(vr) <= len(readingRunes) && string(readingRunes[k:k+len(vr)]) == v {
					if len(vr) > len([]rune(best)) {
						best = v
					}
				}
			}
		}
		switch {
		case best != "":
			out = append(out, [2]string{string(s), best})
			k += len([]rune(best))
		case lastKanjiAt(surfaceRunes, j) && k < len(readingRunes):
			out = append(out, [2]string{string(s), string(readingRunes[k:])})
			k = len(readingRunes)
		default:
			out = append(out, [2]string{string(s), ""})
		}
	}
	return out
}

// FormatFurigana renders pairs as inline [kanji|kana] blocks, plain text
// for unannotated segments.
func FormatFurigana(pairs [][2]string) string {
	var b strings.Builder
	for _, p := range pairs {
		if p[1] != "" {
			b.WriteString("[" + p[0] + "|" + p[1] + "]")
		} else {
			b.WriteString(p[0])
		}
	}
	return b.String()
}

// readingVariants expands one Kanjidic reading into the candidate hiragana
// strings the aligner may try at this position.
func readingVariants(kr string, allowRendaku bool) []string {
	var variants []string
	add := func(v string) {
		if v == "" {
			return
		}
		for _, seen := range variants {
			if seen == v {
				return
			}
		}
		variants = append(variants, v)
	}
	full := NormalizeReading(kr)
	add(full)
	if i := strings.IndexRune(kr, '.'); i >= 0 {
		add(NormalizeReading(kr[:i]))
	}
	if allowRendaku {
		add(RendakuForm(full))
	}
	return variants
}

func lastKanjiAt(runes []rune, j int) bool {
	for i := j + 1; i < len(runes); i++ {
		if IsKanji(runes[i]) {
			return false
		}
	}
	return true
}
