// Package analyze orchestrates word analysis: direct lexicon lookup first,
// deconjugation with lexicon corroboration second, and an optional
// tokenizer-provided base-form hint as a last resort. Each call is a
// single-shot pure pipeline over the shared read-only store; analyzers are
// safe for concurrent use.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ikawaha/kagome/v2/tokenizer"

	"japanesemorph/conjugate"
	"japanesemorph/deconjugate"
	"japanesemorph/kanji"
	"japanesemorph/lexicon"
	"japanesemorph/model"
)

// ErrEmptyInput is returned when the input text is empty after trimming;
// the caller contract requires a non-empty string.
var ErrEmptyInput = errors.New("analyze: empty input")

// sentencePunctuation disqualifies a text from the word path.
const sentencePunctuation = "。！？.!?;；、，,\n"

// DefaultMaxWordLength is the word/sentence routing threshold in runes.
// The surrounding system's documentation disagrees on the exact boundary,
// so it is configurable rather than fixed.
const DefaultMaxWordLength = 10

// Options configures an Analyzer. The zero value gives a lexicon-only
// analyzer with default limits.
type Options struct {
	// Tokenizer supplies a base-form hint for surfaces the rule table cannot
	// decompose. Optional; nil disables the hint path.
	Tokenizer *tokenizer.Tokenizer
	// Kanji enables furigana annotation on matches. Optional.
	Kanji *kanji.Map
	// MaxCandidates caps deconjugation fan-out (default 64).
	MaxCandidates int
	// MaxWordLength is the word-path routing threshold in runes (default 10).
	MaxWordLength int
	Logger        *slog.Logger
}

// Analyzer holds the shared read-only resources for analysis calls.
type Analyzer struct {
	store         *lexicon.Store
	tok           *tokenizer.Tokenizer
	kanji         *kanji.Map
	maxCandidates int
	maxWordLen    int
	log           *slog.Logger
}

// New creates an Analyzer over a loaded lexicon store.
func New(store *lexicon.Store, opts Options) *Analyzer {
	a := &Analyzer{
		store:         store,
		tok:           opts.Tokenizer,
		kanji:         opts.Kanji,
		maxCandidates: opts.MaxCandidates,
		maxWordLen:    opts.MaxWordLength,
		log:           opts.Logger,
	}
	if a.maxCandidates <= 0 {
		a.maxCandidates = deconjugate.DefaultMaxCandidates
	}
	if a.maxWordLen <= 0 {
		a.maxWordLen = DefaultMaxWordLength
	}
	if a.log == nil {
		a.log = slog.Default()
	}
	return a
}

// IsWordSized reports whether text should be routed to the word-analysis
// path rather than to whole-sentence handling.
func (a *Analyzer) IsWordSized(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, sentencePunctuation) {
		return false
	}
	return utf8.RuneCountInString(text) <= a.maxWordLen
}

// Analyze resolves text to ranked dictionary matches. An exact lexicon hit
// always outranks deconjugation-derived matches. No match is not an error:
// the result is simply empty and the caller decides on fallback.
func (a *Analyzer) Analyze(ctx context.Context, text string) (model.AnalysisResult, error) {
	result := model.AnalysisResult{ID: uuid.NewString(), Input: text}
	text = strings.TrimSpace(text)
	if text == "" {
		return result, ErrEmptyInput
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	result.Matches = a.direct(text)
	if len(result.Matches) == 0 {
		result.Matches = a.derived(text)
	}
	if len(result.Matches) == 0 && a.tok != nil {
		result.Matches = a.tokenizerHint(text)
	}
	for i := range result.Matches {
		a.annotate(&result.Matches[i])
	}
	a.log.Debug("analyzed word",
		slog.String("id", result.ID),
		slog.String("input", text),
		slog.Int("matches", len(result.Matches)))
	return result, nil
}

// direct performs the exact headword-then-reading lookup on the unmodified
// input.
func (a *Analyzer) direct(text string) []model.Match {
	var matches []model.Match
	seen := make(map[string]bool)
	for _, e := range a.store.LookupHeadword(text) {
		matches, _ = appendEntry(matches, seen, e, model.Match{Provenance: model.ProvenanceExact})
	}
	for _, e := range a.store.LookupReading(text) {
		matches, _ = appendEntry(matches, seen, e, model.Match{Provenance: model.ProvenanceExact})
	}
	return matches
}

// derived deconjugates text and keeps only hypotheses the lexicon
// corroborates: an entry must exist for the hypothesized dictionary form
// and classify to the assumed verb class. Candidate rank orders the output;
// entries sharing a hypothesized form keep their lexicon source order.
func (a *Analyzer) derived(text string) []model.Match {
	var matches []model.Match
	seen := make(map[string]bool)
	for _, c := range deconjugate.DeconjugateLimit(text, a.maxCandidates) {
		entries := a.store.LookupHeadword(c.DictionaryForm)
		entries = append(entries, a.store.LookupReading(c.DictionaryForm)...)
		for _, e := range entries {
			if conjugate.Classify(e) != c.Class {
				continue
			}
			proto := model.Match{
				Provenance:   model.ProvenanceDeconjugated,
				SurfaceForm:  text,
				MatchedForm:  c.Form,
				AssumedClass: c.Class,
			}
			var added bool
			if matches, added = appendEntry(matches, seen, e, proto); added {
				a.log.Debug("deconjugation hypothesis verified",
					slog.String("surface", text),
					slog.String("dictionary_form", c.DictionaryForm),
					slog.String("form", string(c.Form)))
			}
		}
	}
	return matches
}

// tokenizerHint asks the morphological tokenizer for a base form and looks
// that up. It runs only when rule inversion found nothing, so a hit means
// the surface uses morphology outside the verb rule table.
func (a *Analyzer) tokenizerHint(text string) []model.Match {
	tokens := a.tok.Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}
	base, ok := tokens[0].BaseForm()
	if !ok || base == "" || base == text {
		return nil
	}
	var matches []model.Match
	seen := make(map[string]bool)
	entries := a.store.LookupHeadword(base)
	entries = append(entries, a.store.LookupReading(base)...)
	for _, e := range entries {
		proto := model.Match{Provenance: model.ProvenanceTokenizer, SurfaceForm: text}
		matches, _ = appendEntry(matches, seen, e, proto)
	}
	return matches
}

// annotate fills in conjugation and furigana for a finished match.
// Classification failure degrades to "no conjugation", never an error.
func (a *Analyzer) annotate(m *model.Match) {
	class := conjugate.Classify(m.Entry)
	if class.IsVerb() {
		if p := conjugate.Conjugate(m.Entry); len(p) > 0 {
			m.Class = class
			m.Paradigm = p
			m.HasConjugation = true
		}
	}
	if a.kanji != nil && containsKanji(m.Entry.Headword) && m.Entry.Reading != "" {
		m.Furigana = kanji.FormatFurigana(a.kanji.Furigana(m.Entry.Headword, m.Entry.Reading))
	}
}

// appendEntry adds a match for e unless the same record was already matched
// through another lookup path. Keying on sequence+headword keeps homographs:
// they share a surface but never a sequence number.
func appendEntry(matches []model.Match, seen map[string]bool, e model.DictionaryEntry, proto model.Match) ([]model.Match, bool) {
	key := fmt.Sprintf("%d\x00%s", e.Sequence, e.Headword)
	if seen[key] {
		return matches, false
	}
	seen[key] = true
	proto.Entry = e
	return append(matches, proto), true
}

func containsKanji(s string) bool {
	for _, r := range s {
		if kanji.IsKanji(r) {
			return true
		}
	}
	return false
}
