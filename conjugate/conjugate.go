// Package conjugate classifies Japanese verbs and generates their full
// inflectional paradigm from the dictionary form. The rule table in rules.go
// is the single source of truth; package deconjugate walks the same table in
// the opposite direction.
package conjugate

import (
	"strings"

	"japanesemorph/model"
)

// Conjugate produces the complete paradigm for a dictionary entry. Pure and
// deterministic: the same entry always yields the same paradigm. Entries
// that do not classify as a verb, or whose surface does not fit their class
// (malformed lexicon data), yield a nil paradigm rather than an error.
func Conjugate(e model.DictionaryEntry) model.Paradigm {
	switch class := Classify(e); class {
	case model.Godan:
		return conjugateGodan(e)
	case model.Ichidan:
		return conjugateIchidan(e.Headword)
	case model.SuruVerb:
		return conjugateSuru(e.Headword)
	case model.KuruVerb:
		return conjugateKuru(e.Headword)
	default:
		return nil
	}
}

func conjugateGodan(e model.DictionaryEntry) model.Paradigm {
	runes := []rune(e.Headword)
	if len(runes) < 2 {
		return nil
	}
	ending := runes[len(runes)-1]
	if _, ok := godanRow[ending]; !ok {
		return nil
	}
	stem := string(runes[:len(runes)-1])
	iku := IsIku(e)
	p := make(model.Paradigm, len(model.Forms))
	for _, form := range model.Forms {
		suffix := godanSuffix(ending, form)
		if iku {
			switch form {
			case model.TeForm:
				suffix = "って"
			case model.TaForm:
				suffix = "った"
			}
		}
		p[form] = stem + suffix
	}
	return p
}

func conjugateIchidan(word string) model.Paradigm {
	runes := []rune(word)
	if len(runes) < 2 || runes[len(runes)-1] != 'る' {
		return nil
	}
	stem := string(runes[:len(runes)-1])
	p := make(model.Paradigm, len(model.Forms))
	for _, form := range model.Forms {
		p[form] = stem + ichidanSuffix[form]
	}
	return p
}

// conjugateSuru covers bare する and noun+する compounds. JMdict tags many
// nouns "suru verb" without the する in the headword (勉強); those conjugate
// as headword+する so the paradigm is still complete.
func conjugateSuru(word string) model.Paradigm {
	stem := strings.TrimSuffix(word, "する")
	p := make(model.Paradigm, len(model.Forms))
	for _, form := range model.Forms {
		p[form] = stem + suruSuffix[form]
	}
	return p
}

func conjugateKuru(word string) model.Paradigm {
	var fixed map[model.ConjugationForm]string
	var stem string
	switch {
	case strings.HasSuffix(word, "来る"):
		fixed, stem = kuruKanji, strings.TrimSuffix(word, "来る")
	case strings.HasSuffix(word, "くる"):
		fixed, stem = kuruKana, strings.TrimSuffix(word, "くる")
	default:
		return nil
	}
	p := make(model.Paradigm, len(model.Forms))
	for _, form := range model.Forms {
		p[form] = stem + fixed[form]
	}
	return p
}
