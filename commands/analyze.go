package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var dump string
	cmd := &cobra.Command{
		Use:   "analyze <word>",
		Short: "Analyze a Japanese word: lexicon lookup, deconjugation, paradigm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := newEngine(*configPath)
			if err != nil {
				return err
			}
			word := args[0]
			if !eng.analyzer.IsWordSized(word) {
				return fmt.Errorf("input %q exceeds the word-analysis threshold (%d runes); route it to sentence analysis", word, eng.cfg.Analysis.MaxWordLength)
			}
			result, err := eng.analyzer.Analyze(cmd.Context(), word)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			if dump != "" {
				if err := dumpResult(dump, result.ID, result); err != nil {
					eng.log.Warn("failed to dump result", "error", err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dump, "dump-dir", "", "also write the result as JSON into this directory")
	return cmd
}
