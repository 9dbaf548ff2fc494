// Package config provides configuration loading for the morphology engine.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the complete engine configuration.
type Config struct {
	Lexicon  LexiconConfig  `yaml:"lexicon"`
	Kanjidic KanjidicConfig `yaml:"kanjidic"`
	Analysis AnalysisConfig `yaml:"analysis"`
	Log      LogConfig      `yaml:"log"`
}

// LexiconConfig locates the JMdict source and its optional snapshot cache.
type LexiconConfig struct {
	// Path is the JMdict XML file.
	Path string `yaml:"path"`
	// CachePath, when set, holds a gob snapshot of the parsed lexicon;
	// loaded in preference to the XML when present, written after a parse.
	CachePath string `yaml:"cache_path"`
}

// KanjidicConfig locates kanjidic2.xml for furigana annotation. Optional.
type KanjidicConfig struct {
	Path string `yaml:"path"`
}

// AnalysisConfig tunes the word analyzer.
type AnalysisConfig struct {
	// MaxWordLength is the word/sentence routing threshold in runes.
	MaxWordLength int `yaml:"max_word_length"`
	// MaxCandidates caps deconjugation hypothesis fan-out per query.
	MaxCandidates int `yaml:"max_candidates"`
	// TokenizerDict selects the fallback tokenizer dictionary: "ipa",
	// "uni", or "" to disable the tokenizer hint entirely.
	TokenizerDict string `yaml:"tokenizer_dict"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Lexicon: LexiconConfig{
			Path: "dict/JMdict_e",
		},
		Kanjidic: KanjidicConfig{
			Path: "dict/kanjidic2.xml",
		},
		Analysis: AnalysisConfig{
			MaxWordLength: 10,
			MaxCandidates: 64,
			TokenizerDict: "ipa",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Lexicon.Path == "" {
		return fmt.Errorf("lexicon.path is required")
	}
	if c.Analysis.MaxWordLength < 1 {
		return fmt.Errorf("analysis.max_word_length must be at least 1")
	}
	if c.Analysis.MaxCandidates < 1 {
		return fmt.Errorf("analysis.max_candidates must be at least 1")
	}
	switch c.Analysis.TokenizerDict {
	case "", "ipa", "uni":
	default:
		return fmt.Errorf("analysis.tokenizer_dict must be ipa, uni or empty, got %q", c.Analysis.TokenizerDict)
	}
	return nil
}

// Merge overlays non-zero fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Lexicon.Path != "" {
		c.Lexicon.Path = other.Lexicon.Path
	}
	if other.Lexicon.CachePath != "" {
		c.Lexicon.CachePath = other.Lexicon.CachePath
	}
	if other.Kanjidic.Path != "" {
		c.Kanjidic.Path = other.Kanjidic.Path
	}
	if other.Analysis.MaxWordLength != 0 {
		c.Analysis.MaxWordLength = other.Analysis.MaxWordLength
	}
	if other.Analysis.MaxCandidates != 0 {
		c.Analysis.MaxCandidates = other.Analysis.MaxCandidates
	}
	if other.Analysis.TokenizerDict != "" {
		c.Analysis.TokenizerDict = other.Analysis.TokenizerDict
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
}

// LoadFromFile reads a YAML config file.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Load builds the effective configuration: defaults, then the optional file
// at path, then environment overrides, then validation.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg.Merge(fileCfg)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overlays JAPANESEMORPH_* environment variables, the highest
// precedence layer.
func (c *Config) applyEnv() {
	if v := os.Getenv("JAPANESEMORPH_LEXICON"); v != "" {
		c.Lexicon.Path = v
	}
	if v := os.Getenv("JAPANESEMORPH_LEXICON_CACHE"); v != "" {
		c.Lexicon.CachePath = v
	}
	if v := os.Getenv("JAPANESEMORPH_KANJIDIC"); v != "" {
		c.Kanjidic.Path = v
	}
	if v := os.Getenv("JAPANESEMORPH_MAX_WORD_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Analysis.MaxWordLength = n
		}
	}
	if v := os.Getenv("JAPANESEMORPH_TOKENIZER_DICT"); v != "" {
		c.Analysis.TokenizerDict = v
	}
	if v := os.Getenv("JAPANESEMORPH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}
