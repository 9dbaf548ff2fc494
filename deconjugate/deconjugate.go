// Package deconjugate recovers dictionary-form hypotheses from an inflected
// surface string by running the conjugation rule table backward. Hypotheses
// are phonological only: callers must corroborate them against the lexicon
// before treating them as real words.
package deconjugate

import (
	"sort"
	"strings"
	"unicode/utf8"

	"japanesemorph/conjugate"
	"japanesemorph/model"
)

// DefaultMaxCandidates bounds hypothesis fan-out per surface. The current
// rule table stays far below this; the cap exists so extending the table
// cannot make a single query unbounded.
const DefaultMaxCandidates = 64

type scored struct {
	cand      model.Candidate
	irregular bool // literal row (来る table, 行く euphonic exception)
	suffixLen int  // matched suffix length in runes
}

// Deconjugate returns every dictionary-form hypothesis for surface, ranked
// best first. Multiple rules can share a trailing suffix (って alone maps
// back to う, つ and る stems), so all matches are enumerated; disambiguation
// belongs to the caller. Ranking: irregular literal rows before generative
// rows, then longer matched suffixes before shorter.
func Deconjugate(surface string) []model.Candidate {
	return DeconjugateLimit(surface, DefaultMaxCandidates)
}

// DeconjugateLimit is Deconjugate with an explicit fan-out cap.
func DeconjugateLimit(surface string, limit int) []model.Candidate {
	if surface == "" {
		return nil
	}
	var matches []scored
	seen := make(map[model.Candidate]bool)
	for _, rule := range conjugate.Rules() {
		if !strings.HasSuffix(surface, rule.Suffix) {
			continue
		}
		base := strings.TrimSuffix(surface, rule.Suffix) + baseEnding(rule)
		c := model.Candidate{
			DictionaryForm: base,
			Form:           rule.Form,
			Class:          rule.Class,
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		matches = append(matches, scored{
			cand:      c,
			irregular: rule.Irregular(),
			suffixLen: utf8.RuneCountInString(rule.Suffix),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].irregular != matches[j].irregular {
			return matches[i].irregular
		}
		return matches[i].suffixLen > matches[j].suffixLen
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]model.Candidate, len(matches))
	for i, m := range matches {
		out[i] = m.cand
		out[i].Rank = i
	}
	return out
}

// baseEnding is the dictionary-form tail reattached after stripping a
// matched suffix. Irregular rows carry their dictionary form literally, so
// compounds keep their prefix (持って来ます → 持って来る).
func baseEnding(rule conjugate.Rule) string {
	if rule.Irregular() {
		return rule.Dict
	}
	switch rule.Class {
	case model.Godan:
		return string(rule.Ending)
	case model.Ichidan:
		return "る"
	case model.SuruVerb:
		return "する"
	}
	return ""
}
