package model

// DictionaryEntry is one lexicon record. Entries are loaded once at startup
// and never mutated afterwards; every field is safe to share across
// concurrent analyses.
type DictionaryEntry struct {
	// Sequence is the source lexicon's unique record number. Homographs
	// share headword and reading but never a sequence.
	Sequence    int      `json:"sequence,omitempty"`
	Headword    string   `json:"headword"`
	Reading     string   `json:"reading,omitempty"`
	AltReadings []string `json:"alt_readings,omitempty"`
	POS         []string `json:"pos,omitempty"`
	Glosses     []string `json:"glosses,omitempty"`
	Level       string   `json:"level,omitempty"`
	Common      bool     `json:"is_common,omitempty"`
}

// VerbClass is the closed set of conjugation classes the engine knows about.
type VerbClass string

const (
	Godan    VerbClass = "godan"   // type 1, u-row ending shifts by vowel grade
	Ichidan  VerbClass = "ichidan" // type 2, drop final る
	SuruVerb VerbClass = "suru"    // サ行変格 (する and noun+する compounds)
	KuruVerb VerbClass = "kuru"    // カ行変格 (来る)
	NotAVerb VerbClass = "not_a_verb"
)

// IsVerb reports whether the class conjugates at all.
func (c VerbClass) IsVerb() bool { return c != NotAVerb && c != "" }

// ConjugationForm names one member of the verb paradigm. The string values
// double as the response keys of the serialized paradigm.
type ConjugationForm string

const (
	DictionaryForm   ConjugationForm = "dictionary_form"
	MasuForm         ConjugationForm = "masu_form"
	TeForm           ConjugationForm = "te_form"
	TaForm           ConjugationForm = "ta_form"
	NaiForm          ConjugationForm = "nai_form"
	NakattaForm      ConjugationForm = "nakatta_form"
	BaForm           ConjugationForm = "ba_form"
	CommandForm      ConjugationForm = "command_form"
	VolitionalForm   ConjugationForm = "volitional_form"
	PassiveForm      ConjugationForm = "passive_form"
	CausativeForm    ConjugationForm = "causative_form"
	PotentialForm    ConjugationForm = "potential_form"
	CausativePassive ConjugationForm = "causative_passive_form"
)

// Forms lists every paradigm member in presentation order.
var Forms = []ConjugationForm{
	DictionaryForm,
	MasuForm,
	TeForm,
	TaForm,
	NaiForm,
	NakattaForm,
	BaForm,
	CommandForm,
	VolitionalForm,
	PassiveForm,
	CausativeForm,
	PotentialForm,
	CausativePassive,
}

// Paradigm maps each conjugation form to its surface string. Empty for
// entries that are not verbs.
type Paradigm map[ConjugationForm]string

// Candidate is one deconjugation hypothesis: an unverified dictionary form
// plus the form and class that would produce the observed surface.
// Transient per query; Rank is ordinal, lower is better.
type Candidate struct {
	DictionaryForm string          `json:"dictionary_form"`
	Form           ConjugationForm `json:"form"`
	Class          VerbClass       `json:"class"`
	Rank           int             `json:"rank"`
}

// Provenance values for a Match.
const (
	ProvenanceExact        = "exact"        // direct lexicon hit
	ProvenanceDeconjugated = "deconjugated" // derived via rule inversion, verified against the lexicon
	ProvenanceTokenizer    = "tokenizer"    // base form suggested by the morphological tokenizer
)

// Match pairs a verified dictionary entry with its conjugation metadata.
type Match struct {
	Entry          DictionaryEntry `json:"entry"`
	HasConjugation bool            `json:"has_conjugation"`
	Class          VerbClass       `json:"verb_class,omitempty"`
	Paradigm       Paradigm        `json:"paradigm,omitempty"`
	Provenance     string          `json:"provenance"`

	// Set when the match was derived from an inflected surface.
	SurfaceForm  string          `json:"surface_form,omitempty"`
	MatchedForm  ConjugationForm `json:"matched_form,omitempty"`
	AssumedClass VerbClass       `json:"assumed_class,omitempty"`

	Furigana string `json:"furigana,omitempty"`
}

// AnalysisResult is the ranked outcome of one analyze call. Constructed
// fresh per request and discarded after serialization; an empty Matches
// slice means no match, which is a valid non-error outcome.
type AnalysisResult struct {
	ID      string  `json:"id"`
	Input   string  `json:"input"`
	Matches []Match `json:"matches"`
}

// Empty reports whether the analysis produced no matches.
func (r AnalysisResult) Empty() bool { return len(r.Matches) == 0 }
