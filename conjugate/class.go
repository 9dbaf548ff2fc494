package conjugate

import (
	"strings"

	"japanesemorph/model"
)

// JMdict part-of-speech tags arrive in two spellings depending on how the
// source was parsed: short entity codes ("v5k", "v1", "vs-i", "vk") or the
// entity-expanded descriptions ("Godan verb with `ku' ending", "Ichidan
// verb", "suru verb - included", "Kuru verb - special class"). Classification
// accepts both.

// uRowKana are the possible final kana of a godan/ichidan dictionary form.
const uRowKana = "うくぐすつぬふぶむゆる"

// iRowKana and eRowKana decide the ichidan guess for an ambiguous verb tag:
// a verb ending in る whose preceding kana sits in the i- or e-row is far
// more likely ichidan (見る, 食べる) than godan (帰る is the exception, but
// an ambiguous tag gives no way to know).
const (
	iRowKana = "いきぎしじちぢにひびみり"
	eRowKana = "えけげせぜてでねへべめれ"
)

// Classify determines the verb class of an entry from its part-of-speech
// tags, falling back to the final kana of the headword (or reading, when the
// headword ends in kanji+る) for a bare "verb" tag. Entries whose tags never
// identify a verb, and verbs the heuristic cannot place, classify as
// NotAVerb; classification never fails.
func Classify(e model.DictionaryEntry) model.VerbClass {
	sawVerb := false
	for _, tag := range e.POS {
		t := strings.ToLower(tag)
		switch {
		case strings.Contains(t, "kuru verb") || t == "vk":
			return model.KuruVerb
		case strings.Contains(t, "suru verb") || t == "vs" || strings.HasPrefix(t, "vs-"):
			return model.SuruVerb
		case strings.Contains(t, "ichidan") || t == "v1" || strings.HasPrefix(t, "v1-"):
			return model.Ichidan
		case strings.Contains(t, "godan") || strings.HasPrefix(t, "v5") || strings.HasPrefix(t, "v4") || t == "vn":
			return model.Godan
		case strings.Contains(t, "verb") && !strings.Contains(t, "adverb") && !strings.Contains(t, "auxiliary"):
			sawVerb = true
		}
	}
	if !sawVerb {
		return model.NotAVerb
	}
	return guessByKana(e)
}

// guessByKana resolves an ambiguous verb tag from the word's final kana.
func guessByKana(e model.DictionaryEntry) model.VerbClass {
	word := e.Headword
	if e.Reading != "" && !endsInKana(word) {
		word = e.Reading
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return model.NotAVerb
	}
	last := runes[len(runes)-1]
	if last == 'る' && len(runes) >= 2 {
		// Prefer the reading for the penultimate check so kanji stems
		// (見る → みる) still resolve.
		prev := penultimateKana(e)
		if prev != 0 && (strings.ContainsRune(iRowKana, prev) || strings.ContainsRune(eRowKana, prev)) {
			return model.Ichidan
		}
		return model.Godan
	}
	if strings.ContainsRune(uRowKana, last) {
		return model.Godan
	}
	return model.NotAVerb
}

func penultimateKana(e model.DictionaryEntry) rune {
	for _, word := range []string{e.Headword, e.Reading} {
		runes := []rune(word)
		if len(runes) < 2 {
			continue
		}
		prev := runes[len(runes)-2]
		if isKana(prev) {
			return prev
		}
	}
	return 0
}

// IsIku reports whether the entry is 行く or a compound of it, the one godan
// verb whose て/た forms use the って/った alternation despite the く ending.
func IsIku(e model.DictionaryEntry) bool {
	if strings.HasSuffix(e.Headword, "行く") || e.Headword == "いく" {
		return true
	}
	for _, tag := range e.POS {
		if strings.Contains(strings.ToLower(tag), "iku/yuku") {
			return true
		}
	}
	return false
}

func isKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

func endsInKana(s string) bool {
	runes := []rune(s)
	return len(runes) > 0 && isKana(runes[len(runes)-1])
}
