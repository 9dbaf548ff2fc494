package conjugate

import (
	"reflect"
	"strings"
	"testing"

	"japanesemorph/model"
)

func verbEntry(headword, reading, tag string) model.DictionaryEntry {
	return model.DictionaryEntry{Headword: headword, Reading: reading, POS: []string{tag}}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		entry model.DictionaryEntry
		want  model.VerbClass
	}{
		{"godan expanded tag", verbEntry("読む", "よむ", "Godan verb with 'mu' ending"), model.Godan},
		{"godan short tag", verbEntry("書く", "かく", "v5k"), model.Godan},
		{"iku special class", verbEntry("行く", "いく", "Godan verb - Iku/Yuku special class"), model.Godan},
		{"ichidan expanded tag", verbEntry("食べる", "たべる", "Ichidan verb"), model.Ichidan},
		{"ichidan short tag", verbEntry("見る", "みる", "v1"), model.Ichidan},
		{"suru expanded tag", verbEntry("する", "する", "suru verb - included"), model.SuruVerb},
		{"suru short tag", verbEntry("勉強", "べんきょう", "vs"), model.SuruVerb},
		{"kuru expanded tag", verbEntry("来る", "くる", "Kuru verb - special class"), model.KuruVerb},
		{"kuru short tag", verbEntry("来る", "くる", "vk"), model.KuruVerb},
		{"noun", verbEntry("本", "ほん", "noun (common)"), model.NotAVerb},
		{"adverb does not classify as verb", verbEntry("ゆっくり", "ゆっくり", "adverb"), model.NotAVerb},
		{"no tags", model.DictionaryEntry{Headword: "謎"}, model.NotAVerb},

		// Ambiguous "verb" tag: final-kana heuristic.
		{"bare verb tag, e-row ru", verbEntry("食べる", "たべる", "verb"), model.Ichidan},
		{"bare verb tag, i-row ru via reading", verbEntry("見る", "みる", "verb"), model.Ichidan},
		{"bare verb tag, a-row ru", verbEntry("分かる", "わかる", "verb"), model.Godan},
		{"bare verb tag, mu ending", verbEntry("読む", "よむ", "verb"), model.Godan},
		{"bare verb tag, not kana final", verbEntry("旅", "たび", "verb"), model.NotAVerb},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.entry); got != tt.want {
				t.Errorf("Classify(%s) = %v, want %v", tt.entry.Headword, got, tt.want)
			}
		})
	}
}

func TestConjugateGodan(t *testing.T) {
	p := Conjugate(verbEntry("読む", "よむ", "Godan verb with 'mu' ending"))
	want := model.Paradigm{
		model.DictionaryForm:   "読む",
		model.MasuForm:         "読みます",
		model.TeForm:           "読んで",
		model.TaForm:           "読んだ",
		model.NaiForm:          "読まない",
		model.NakattaForm:      "読まなかった",
		model.BaForm:           "読めば",
		model.CommandForm:      "読め",
		model.VolitionalForm:   "読もう",
		model.PassiveForm:      "読まれる",
		model.CausativeForm:    "読ませる",
		model.PotentialForm:    "読める",
		model.CausativePassive: "読ませられる",
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("読む paradigm mismatch:\ngot  %v\nwant %v", p, want)
	}
}

func TestGodanEuphonicBranches(t *testing.T) {
	tests := []struct {
		verb, tag, te, ta string
	}{
		{"書く", "Godan verb with 'ku' ending", "書いて", "書いた"},
		{"泳ぐ", "Godan verb with 'gu' ending", "泳いで", "泳いだ"},
		{"話す", "Godan verb with 'su' ending", "話して", "話した"},
		{"買う", "Godan verb with 'u' ending", "買って", "買った"},
		{"待つ", "Godan verb with 'tsu' ending", "待って", "待った"},
		{"帰る", "Godan verb with 'ru' ending", "帰って", "帰った"},
		{"死ぬ", "Godan verb with 'nu' ending", "死んで", "死んだ"},
		{"遊ぶ", "Godan verb with 'bu' ending", "遊んで", "遊んだ"},
	}
	for _, tt := range tests {
		p := Conjugate(verbEntry(tt.verb, "", tt.tag))
		if p[model.TeForm] != tt.te {
			t.Errorf("%s te form = %s, want %s", tt.verb, p[model.TeForm], tt.te)
		}
		if p[model.TaForm] != tt.ta {
			t.Errorf("%s ta form = %s, want %s", tt.verb, p[model.TaForm], tt.ta)
		}
	}
}

func TestIkuException(t *testing.T) {
	p := Conjugate(verbEntry("行く", "いく", "Godan verb - Iku/Yuku special class"))
	if p[model.TeForm] != "行って" {
		t.Errorf("行く te form = %s, want 行って", p[model.TeForm])
	}
	if p[model.TaForm] != "行った" {
		t.Errorf("行く ta form = %s, want 行った", p[model.TaForm])
	}
	// The rest of the paradigm follows the regular く row.
	if p[model.MasuForm] != "行きます" {
		t.Errorf("行く masu form = %s, want 行きます", p[model.MasuForm])
	}
	if p[model.NaiForm] != "行かない" {
		t.Errorf("行く nai form = %s, want 行かない", p[model.NaiForm])
	}
}

func TestKuBranchOutsideIku(t *testing.T) {
	// Every godan verb ending in く except 行く keeps the いて/いた shift.
	for _, verb := range []string{"書く", "歩く", "働く"} {
		p := Conjugate(verbEntry(verb, "", "Godan verb with 'ku' ending"))
		if !strings.HasSuffix(p[model.TeForm], "いて") {
			t.Errorf("%s te form = %s, want suffix いて", verb, p[model.TeForm])
		}
		if !strings.HasSuffix(p[model.TaForm], "いた") {
			t.Errorf("%s ta form = %s, want suffix いた", verb, p[model.TaForm])
		}
	}
}

func TestConjugateIchidan(t *testing.T) {
	p := Conjugate(verbEntry("食べる", "たべる", "Ichidan verb"))
	want := model.Paradigm{
		model.DictionaryForm:   "食べる",
		model.MasuForm:         "食べます",
		model.TeForm:           "食べて",
		model.TaForm:           "食べた",
		model.NaiForm:          "食べない",
		model.NakattaForm:      "食べなかった",
		model.BaForm:           "食べれば",
		model.CommandForm:      "食べろ",
		model.VolitionalForm:   "食べよう",
		model.PassiveForm:      "食べられる",
		model.CausativeForm:    "食べさせる",
		model.PotentialForm:    "食べられる",
		model.CausativePassive: "食べさせられる",
	}
	if !reflect.DeepEqual(p, want) {
		t.Errorf("食べる paradigm mismatch:\ngot  %v\nwant %v", p, want)
	}
}

func TestConjugateSuru(t *testing.T) {
	p := Conjugate(verbEntry("する", "する", "suru verb - included"))
	fixed := map[model.ConjugationForm]string{
		model.DictionaryForm: "する",
		model.MasuForm:       "します",
		model.TeForm:         "して",
		model.TaForm:         "した",
		model.NaiForm:        "しない",
		model.BaForm:         "すれば",
		model.CommandForm:    "しろ",
		model.VolitionalForm: "しよう",
		model.PassiveForm:    "される",
		model.PotentialForm:  "できる",
	}
	for form, want := range fixed {
		if p[form] != want {
			t.Errorf("する %s = %s, want %s", form, p[form], want)
		}
	}

	// Compounds conjugate on the same table, keeping their prefix. JMdict
	// tags the bare noun as a suru verb, so the paradigm supplies the する.
	p = Conjugate(verbEntry("勉強", "べんきょう", "noun or participle which takes the aux. verb suru"))
	if p[model.DictionaryForm] != "勉強する" {
		t.Errorf("勉強 dictionary form = %s, want 勉強する", p[model.DictionaryForm])
	}
	if p[model.MasuForm] != "勉強します" {
		t.Errorf("勉強 masu form = %s, want 勉強します", p[model.MasuForm])
	}
}

func TestConjugateKuru(t *testing.T) {
	p := Conjugate(verbEntry("来る", "くる", "Kuru verb - special class"))
	if p[model.TeForm] != "来て" || p[model.NaiForm] != "来ない" || p[model.CommandForm] != "来い" {
		t.Errorf("来る irregular forms wrong: te=%s nai=%s command=%s", p[model.TeForm], p[model.NaiForm], p[model.CommandForm])
	}

	// Kana spelling gets the kana table, where the stem alternation
	// (き/こ) is visible.
	p = Conjugate(verbEntry("くる", "くる", "Kuru verb - special class"))
	if p[model.MasuForm] != "きます" {
		t.Errorf("くる masu form = %s, want きます", p[model.MasuForm])
	}
	if p[model.NaiForm] != "こない" {
		t.Errorf("くる nai form = %s, want こない", p[model.NaiForm])
	}
	if p[model.BaForm] != "くれば" {
		t.Errorf("くる ba form = %s, want くれば", p[model.BaForm])
	}
}

func TestConjugateNotAVerb(t *testing.T) {
	p := Conjugate(verbEntry("本", "ほん", "noun (common)"))
	if len(p) != 0 {
		t.Errorf("expected empty paradigm for a noun, got %v", p)
	}
}

func TestConjugateIdempotent(t *testing.T) {
	e := verbEntry("読む", "よむ", "Godan verb with 'mu' ending")
	first := Conjugate(e)
	second := Conjugate(e)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Conjugate is not deterministic:\nfirst  %v\nsecond %v", first, second)
	}
}

func TestParadigmCoversAllForms(t *testing.T) {
	if len(model.Forms) != 13 {
		t.Fatalf("expected 13 conjugation forms, got %d", len(model.Forms))
	}
	for _, tag := range []struct{ verb, pos string }{
		{"読む", "Godan verb with 'mu' ending"},
		{"食べる", "Ichidan verb"},
		{"する", "suru verb - included"},
		{"来る", "Kuru verb - special class"},
	} {
		p := Conjugate(verbEntry(tag.verb, "", tag.pos))
		for _, form := range model.Forms {
			if p[form] == "" {
				t.Errorf("%s: form %s missing from paradigm", tag.verb, form)
			}
		}
	}
}
