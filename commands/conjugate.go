package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"japanesemorph/conjugate"
	"japanesemorph/logger"
	"japanesemorph/model"
)

// classTags maps the --class flag to a part-of-speech tag the classifier
// recognizes, for conjugating words that are not in the lexicon.
var classTags = map[string]string{
	"godan":   "Godan verb",
	"ichidan": "Ichidan verb",
	"suru":    "suru verb",
	"kuru":    "Kuru verb - special class",
}

func newConjugateCmd(configPath *string) *cobra.Command {
	var class string
	var dump string
	cmd := &cobra.Command{
		Use:   "conjugate <verb>",
		Short: "Print the full conjugation paradigm of a verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(*configPath)
			if err != nil {
				return err
			}
			word := args[0]

			entry, ok := findVerb(eng, word)
			if !ok {
				// Not in the lexicon: conjugate from the flag, or guess
				// from the final kana.
				tag, known := classTags[class]
				if !known {
					tag = "verb"
				}
				entry = model.DictionaryEntry{Headword: word, POS: []string{tag}}
			}

			verbClass := conjugate.Classify(entry)
			paradigm := conjugate.Conjugate(entry)
			if len(paradigm) == 0 {
				return fmt.Errorf("%q does not classify as a verb", word)
			}
			out := struct {
				Word     string          `json:"word"`
				Class    model.VerbClass `json:"verb_class"`
				Paradigm model.Paradigm  `json:"paradigm"`
			}{word, verbClass, paradigm}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			if dump != "" {
				if err := logger.DumpJSON(dump, word+"_paradigm", out); err != nil {
					eng.log.Warn("failed to dump paradigm", "error", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&class, "class", "", "verb class when the word is not in the lexicon: godan, ichidan, suru, kuru")
	cmd.Flags().StringVar(&dump, "dump-dir", "", "also write the paradigm as JSON into this directory")
	return cmd
}

// findVerb returns the first lexicon entry for word that classifies as a
// verb, preferring headword hits over reading hits.
func findVerb(eng *engine, word string) (model.DictionaryEntry, bool) {
	entries := eng.store.LookupHeadword(word)
	entries = append(entries, eng.store.LookupReading(word)...)
	for _, e := range entries {
		if conjugate.Classify(e).IsVerb() {
			return e, true
		}
	}
	return model.DictionaryEntry{}, false
}
