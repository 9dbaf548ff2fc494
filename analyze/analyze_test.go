package analyze

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanesemorph/lexicon"
	"japanesemorph/model"
)

const testJmdict = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE JMdict [
<!ENTITY v5m "Godan verb with 'mu' ending">
<!ENTITY v5k-s "Godan verb - Iku/Yuku special class">
<!ENTITY v1 "Ichidan verb">
<!ENTITY vs-i "suru verb - included">
<!ENTITY n "noun (common) (futsuumeishi)">
<!ENTITY int "interjection (kandoushi)">
]>
<JMdict>
<entry>
<ent_seq>2000100</ent_seq>
<k_ele><keb>読む</keb><ke_pri>ichi1</ke_pri></k_ele>
<r_ele><reb>よむ</reb><re_pri>ichi1</re_pri></r_ele>
<sense><pos>&v5m;</pos><gloss>to read</gloss></sense>
</entry>
<entry>
<ent_seq>2000200</ent_seq>
<k_ele><keb>行く</keb></k_ele>
<r_ele><reb>いく</reb></r_ele>
<sense><pos>&v5k-s;</pos><gloss>to go</gloss></sense>
</entry>
<entry>
<ent_seq>2000300</ent_seq>
<k_ele><keb>食べる</keb></k_ele>
<r_ele><reb>たべる</reb></r_ele>
<sense><pos>&v1;</pos><gloss>to eat</gloss></sense>
</entry>
<entry>
<ent_seq>2000400</ent_seq>
<r_ele><reb>する</reb></r_ele>
<sense><pos>&vs-i;</pos><gloss>to do</gloss></sense>
</entry>
<entry>
<ent_seq>2000500</ent_seq>
<k_ele><keb>掛ける</keb></k_ele>
<r_ele><reb>かける</reb></r_ele>
<sense><pos>&v1;</pos><gloss>to hang</gloss></sense>
</entry>
<entry>
<ent_seq>2000600</ent_seq>
<k_ele><keb>掛ける</keb></k_ele>
<r_ele><reb>かける</reb></r_ele>
<sense><pos>&v1;</pos><gloss>to multiply</gloss></sense>
</entry>
<entry>
<ent_seq>2000700</ent_seq>
<r_ele><reb>よんで</reb></r_ele>
<sense><pos>&int;</pos><gloss>come here</gloss></sense>
</entry>
<entry>
<ent_seq>2000800</ent_seq>
<k_ele><keb>汁</keb></k_ele>
<r_ele><reb>しる</reb></r_ele>
<sense><pos>&n;</pos><gloss>soup</gloss></sense>
</entry>
</JMdict>`

func testAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	store, err := lexicon.LoadReader(strings.NewReader(testJmdict))
	require.NoError(t, err)
	return New(store, Options{})
}

func TestAnalyzeDirect(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "読む")
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, "読む", res.Input)
	require.Len(t, res.Matches, 1)

	m := res.Matches[0]
	assert.Equal(t, model.ProvenanceExact, m.Provenance)
	assert.True(t, m.HasConjugation)
	assert.Equal(t, model.Godan, m.Class)
	assert.Equal(t, "読んで", m.Paradigm[model.TeForm])
	assert.Equal(t, "読みます", m.Paradigm[model.MasuForm])
	assert.Empty(t, m.SurfaceForm, "direct hits carry no derivation metadata")
}

func TestAnalyzeByReading(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "たべる")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "食べる", res.Matches[0].Entry.Headword)
	assert.Equal(t, model.ProvenanceExact, res.Matches[0].Provenance)
}

func TestAnalyzeDerived(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "読んで")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1, "only the corroborated んで hypothesis survives")

	m := res.Matches[0]
	assert.Equal(t, "読む", m.Entry.Headword)
	assert.Equal(t, model.ProvenanceDeconjugated, m.Provenance)
	assert.Equal(t, "読んで", m.SurfaceForm)
	assert.Equal(t, model.TeForm, m.MatchedForm)
	assert.Equal(t, model.Godan, m.AssumedClass)
	assert.True(t, m.HasConjugation)
}

func TestAnalyzeDerivedIrregular(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "行って")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)

	m := res.Matches[0]
	assert.Equal(t, "行く", m.Entry.Headword)
	assert.Equal(t, model.TeForm, m.MatchedForm)
	assert.Equal(t, "行って", m.Paradigm[model.TeForm])
	assert.Equal(t, "行った", m.Paradigm[model.TaForm])
}

func TestDirectOutranksDerived(t *testing.T) {
	// よんで is both a lexicon entry and the te form of 読む. The exact hit
	// wins and the derived path never runs.
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "よんで")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)
	assert.Equal(t, "よんで", res.Matches[0].Entry.Headword)
	assert.Equal(t, model.ProvenanceExact, res.Matches[0].Provenance)
}

func TestDerivedClassVerification(t *testing.T) {
	// しって inverts to the godan hypothesis しる, which the lexicon only
	// knows as the noun 汁. The class mismatch must reject it.
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "しって")
	require.NoError(t, err)
	assert.True(t, res.Empty())
}

func TestAnalyzeSuru(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "する")
	require.NoError(t, err)
	require.Len(t, res.Matches, 1)

	p := res.Matches[0].Paradigm
	assert.Equal(t, "して", p[model.TeForm])
	assert.Equal(t, "できる", p[model.PotentialForm])
	assert.Equal(t, "される", p[model.PassiveForm])
}

func TestAnalyzeHomographs(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "掛ける")
	require.NoError(t, err)
	require.Len(t, res.Matches, 2, "homographs must both be reported")
	assert.NotEqual(t, res.Matches[0].Entry.Sequence, res.Matches[1].Entry.Sequence)
}

func TestAnalyzeNoMatch(t *testing.T) {
	a := testAnalyzer(t)
	res, err := a.Analyze(context.Background(), "xyzzy")
	require.NoError(t, err, "no match is a valid outcome, not an error")
	assert.True(t, res.Empty())
	assert.NotEmpty(t, res.ID)
}

func TestAnalyzeEmptyInput(t *testing.T) {
	a := testAnalyzer(t)
	for _, input := range []string{"", "   ", "\t\n"} {
		_, err := a.Analyze(context.Background(), input)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
}

func TestAnalyzeCanceledContext(t *testing.T) {
	a := testAnalyzer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Analyze(ctx, "読む")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeDistinctIDs(t *testing.T) {
	a := testAnalyzer(t)
	r1, err := a.Analyze(context.Background(), "読む")
	require.NoError(t, err)
	r2, err := a.Analyze(context.Background(), "読む")
	require.NoError(t, err)
	assert.NotEqual(t, r1.ID, r2.ID)
}

func TestIsWordSized(t *testing.T) {
	a := testAnalyzer(t)
	tests := []struct {
		text string
		want bool
	}{
		{"読む", true},
		{"  読む  ", true},
		{"たべませんでした", true},
		{"あいうえおかきくけこさ", false}, // 11 runes
		{"本を読みます。", false},     // sentence punctuation
		{"何？", false},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, a.IsWordSized(tt.text), "IsWordSized(%q)", tt.text)
	}
}
