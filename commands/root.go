// Package commands implements the japanesemorph CLI.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome-dict/uni"
	kagome "github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/spf13/cobra"

	"japanesemorph/analyze"
	"japanesemorph/config"
	"japanesemorph/kanji"
	"japanesemorph/lexicon"
	"japanesemorph/logger"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the root command and its subcommands.
func NewRootCmd() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:           "japanesemorph",
		Short:         "Japanese word analysis and verb conjugation engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	cmd.AddCommand(
		newAnalyzeCmd(&configPath),
		newConjugateCmd(&configPath),
		newInfoCmd(&configPath),
	)
	return cmd
}

// engine bundles the loaded resources behind the subcommands.
type engine struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *lexicon.Store
	analyzer *analyze.Analyzer
}

// newEngine loads config, lexicon, and the optional enrichments. A lexicon
// load failure is fatal: the engine never serves with a partial store.
func newEngine(configPath string) (*engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	store, err := lexicon.LoadWithCache(cfg.Lexicon.Path, cfg.Lexicon.CachePath)
	if err != nil {
		return nil, err
	}
	log.Info("lexicon loaded", slog.Int("entries", store.Len()))

	opts := analyze.Options{
		MaxCandidates: cfg.Analysis.MaxCandidates,
		MaxWordLength: cfg.Analysis.MaxWordLength,
		Logger:        log,
	}
	if cfg.Kanjidic.Path != "" {
		if m, err := kanji.Load(cfg.Kanjidic.Path); err == nil {
			opts.Kanji = m
			log.Info("kanjidic loaded", slog.Int("kanji", m.Len()))
		} else {
			log.Warn("kanjidic unavailable, furigana disabled", slog.String("error", err.Error()))
		}
	}
	if cfg.Analysis.TokenizerDict != "" {
		if tok, err := newTokenizer(cfg.Analysis.TokenizerDict); err == nil {
			opts.Tokenizer = tok
		} else {
			log.Warn("tokenizer unavailable, hint path disabled", slog.String("error", err.Error()))
		}
	}

	return &engine{
		cfg:      cfg,
		log:      log,
		store:    store,
		analyzer: analyze.New(store, opts),
	}, nil
}

func newTokenizer(dict string) (*kagome.Tokenizer, error) {
	switch dict {
	case "ipa":
		return kagome.New(ipa.Dict(), kagome.OmitBosEos())
	case "uni":
		return kagome.New(uni.Dict(), kagome.OmitBosEos())
	default:
		return nil, fmt.Errorf("unknown tokenizer dict %q", dict)
	}
}
