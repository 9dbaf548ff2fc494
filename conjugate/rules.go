package conjugate

import (
	"japanesemorph/model"
)

// Rule is one invertible stem transformation: strip Trunc runes from the end
// of the dictionary form, append Suffix. The conjugator applies rules
// forward; the deconjugator matches Suffix at the end of a surface and runs
// them backward. Keeping both directions on one table is what guarantees the
// round-trip property.
type Rule struct {
	Class  model.VerbClass
	Form   model.ConjugationForm
	Ending rune   // godan only: dictionary-form final kana this rule applies to
	Trunc  int    // runes stripped from the dictionary form
	Suffix string // literal appended after truncation
	Dict   string // irregulars only: full dictionary form; Suffix then matches the whole surface
}

// Irregular reports whether the rule is a whole-surface literal entry.
func (r Rule) Irregular() bool { return r.Dict != "" }

// godanRow holds the five vowel-grade kana for one u-row ending.
// Index order: a, i, u, e, o. The う column uses わ in the a-grade
// (買う → 買わない), the historical w-stem.
var godanRow = map[rune][5]string{
	'う': {"わ", "い", "う", "え", "お"},
	'く': {"か", "き", "く", "け", "こ"},
	'ぐ': {"が", "ぎ", "ぐ", "げ", "ご"},
	'す': {"さ", "し", "す", "せ", "そ"},
	'つ': {"た", "ち", "つ", "て", "と"},
	'ぬ': {"な", "に", "ぬ", "ね", "の"},
	'ぶ': {"ば", "び", "ぶ", "べ", "ぼ"},
	'む': {"ま", "み", "む", "め", "も"},
	'る': {"ら", "り", "る", "れ", "ろ"},
}

// godanTeTa holds the euphonic て/た suffixes per ending. 書く → 書いて,
// 泳ぐ → 泳いで, 話す → 話して, 買う/待つ/帰る → って/った,
// 死ぬ/遊ぶ/読む → んで/んだ. The single lexical exception 行く → 行って
// is handled by the ikuTe rows and the conjugator, not by this map.
var godanTeTa = map[rune][2]string{
	'く': {"いて", "いた"},
	'ぐ': {"いで", "いだ"},
	'す': {"して", "した"},
	'う': {"って", "った"},
	'つ': {"って", "った"},
	'る': {"って", "った"},
	'ぬ': {"んで", "んだ"},
	'ぶ': {"んで", "んだ"},
	'む': {"んで", "んだ"},
}

// godanSuffix builds the suffix (everything after the truncated stem) for a
// godan verb ending in the given kana.
func godanSuffix(ending rune, form model.ConjugationForm) string {
	row := godanRow[ending]
	a, i, e, o := row[0], row[1], row[3], row[4]
	switch form {
	case model.DictionaryForm:
		return string(ending)
	case model.MasuForm:
		return i + "ます"
	case model.TeForm:
		return godanTeTa[ending][0]
	case model.TaForm:
		return godanTeTa[ending][1]
	case model.NaiForm:
		return a + "ない"
	case model.NakattaForm:
		return a + "なかった"
	case model.BaForm:
		return e + "ば"
	case model.CommandForm:
		return e
	case model.VolitionalForm:
		return o + "う"
	case model.PassiveForm:
		return a + "れる"
	case model.CausativeForm:
		return a + "せる"
	case model.PotentialForm:
		return e + "る"
	case model.CausativePassive:
		return a + "せられる"
	}
	return ""
}

// ichidanSuffix: the stem is the dictionary form minus its final る for
// every member, no euphonic branching. Potential equals passive (られる);
// the ra-less colloquial potential is deliberately not generated.
var ichidanSuffix = map[model.ConjugationForm]string{
	model.DictionaryForm:   "る",
	model.MasuForm:         "ます",
	model.TeForm:           "て",
	model.TaForm:           "た",
	model.NaiForm:          "ない",
	model.NakattaForm:      "なかった",
	model.BaForm:           "れば",
	model.CommandForm:      "ろ",
	model.VolitionalForm:   "よう",
	model.PassiveForm:      "られる",
	model.CausativeForm:    "させる",
	model.PotentialForm:    "られる",
	model.CausativePassive: "させられる",
}

// suruSuffix: applied after stripping する, so noun+する compounds conjugate
// on the same table (勉強する → 勉強します).
var suruSuffix = map[model.ConjugationForm]string{
	model.DictionaryForm:   "する",
	model.MasuForm:         "します",
	model.TeForm:           "して",
	model.TaForm:           "した",
	model.NaiForm:          "しない",
	model.NakattaForm:      "しなかった",
	model.BaForm:           "すれば",
	model.CommandForm:      "しろ",
	model.VolitionalForm:   "しよう",
	model.PassiveForm:      "される",
	model.CausativeForm:    "させる",
	model.PotentialForm:    "できる",
	model.CausativePassive: "させられる",
}

// kuruKanji and kuruKana enumerate 来る literally; no generative rule covers
// the き/こ stem alternation. Compounds keep their prefix (持って来る →
// 持って来ます), so entries hold the part after the stripped 来る/くる.
var kuruKanji = map[model.ConjugationForm]string{
	model.DictionaryForm:   "来る",
	model.MasuForm:         "来ます",
	model.TeForm:           "来て",
	model.TaForm:           "来た",
	model.NaiForm:          "来ない",
	model.NakattaForm:      "来なかった",
	model.BaForm:           "来れば",
	model.CommandForm:      "来い",
	model.VolitionalForm:   "来よう",
	model.PassiveForm:      "来られる",
	model.CausativeForm:    "来させる",
	model.PotentialForm:    "来られる",
	model.CausativePassive: "来させられる",
}

var kuruKana = map[model.ConjugationForm]string{
	model.DictionaryForm:   "くる",
	model.MasuForm:         "きます",
	model.TeForm:           "きて",
	model.TaForm:           "きた",
	model.NaiForm:          "こない",
	model.NakattaForm:      "こなかった",
	model.BaForm:           "くれば",
	model.CommandForm:      "こい",
	model.VolitionalForm:   "こよう",
	model.PassiveForm:      "こられる",
	model.CausativeForm:    "こさせる",
	model.PotentialForm:    "こられる",
	model.CausativePassive: "こさせられる",
}

// ikuTe holds the 行く euphonic exception as literal rows: the く ending
// alternates to って/った instead of いて/いた for this one lexeme.
var ikuTe = []Rule{
	{Class: model.Godan, Form: model.TeForm, Ending: 'く', Trunc: 2, Suffix: "行って", Dict: "行く"},
	{Class: model.Godan, Form: model.TaForm, Ending: 'く', Trunc: 2, Suffix: "行った", Dict: "行く"},
	{Class: model.Godan, Form: model.TeForm, Ending: 'く', Trunc: 2, Suffix: "いって", Dict: "いく"},
	{Class: model.Godan, Form: model.TaForm, Ending: 'く', Trunc: 2, Suffix: "いった", Dict: "いく"},
}

// table is the full rule set, built once at init and read-only afterwards.
// Irregular rows come first so the deconjugator tries exact literal matches
// before generic suffix rules.
var table []Rule

// godanEndings fixes the row order so the table layout (and therefore
// candidate ranking on ties) is deterministic across runs.
var godanEndings = []rune{'う', 'く', 'ぐ', 'す', 'つ', 'ぬ', 'ぶ', 'む', 'る'}

func init() {
	// 来る / くる: fixed whole-surface rows.
	for _, form := range model.Forms {
		table = append(table, Rule{Class: model.KuruVerb, Form: form, Trunc: 2, Suffix: kuruKanji[form], Dict: "来る"})
	}
	for _, form := range model.Forms {
		table = append(table, Rule{Class: model.KuruVerb, Form: form, Trunc: 2, Suffix: kuruKana[form], Dict: "くる"})
	}
	// 行く euphonic exception.
	table = append(table, ikuTe...)

	// する and compounds.
	for _, form := range model.Forms {
		table = append(table, Rule{Class: model.SuruVerb, Form: form, Trunc: 2, Suffix: suruSuffix[form]})
	}
	// Ichidan.
	for _, form := range model.Forms {
		table = append(table, Rule{Class: model.Ichidan, Form: form, Ending: 'る', Trunc: 1, Suffix: ichidanSuffix[form]})
	}
	// Godan, one row per ending kana per form.
	for _, ending := range godanEndings {
		for _, form := range model.Forms {
			table = append(table, Rule{
				Class:  model.Godan,
				Form:   form,
				Ending: ending,
				Trunc:  1,
				Suffix: godanSuffix(ending, form),
			})
		}
	}
}

// Rules returns the complete rule table. The returned slice is shared,
// read-only constant data; callers must not modify it.
func Rules() []Rule { return table }
