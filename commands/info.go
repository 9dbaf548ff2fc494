package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"japanesemorph/logger"
)

func newInfoCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show loaded lexicon statistics and effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(*configPath)
			if err != nil {
				return err
			}
			out := struct {
				LexiconEntries int    `json:"lexicon_entries"`
				LexiconPath    string `json:"lexicon_path"`
				KanjidicPath   string `json:"kanjidic_path,omitempty"`
				MaxWordLength  int    `json:"max_word_length"`
				MaxCandidates  int    `json:"max_candidates"`
				TokenizerDict  string `json:"tokenizer_dict,omitempty"`
			}{
				LexiconEntries: eng.store.Len(),
				LexiconPath:    eng.cfg.Lexicon.Path,
				KanjidicPath:   eng.cfg.Kanjidic.Path,
				MaxWordLength:  eng.cfg.Analysis.MaxWordLength,
				MaxCandidates:  eng.cfg.Analysis.MaxCandidates,
				TokenizerDict:  eng.cfg.Analysis.TokenizerDict,
			}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
}

// dumpResult writes an analysis result to dir for offline inspection.
func dumpResult(dir, id string, data any) error {
	return logger.DumpJSON(dir, id, data)
}
