// Package config loads service configuration from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `default:"8080"`
	Environment string `default:"local"`

	// Vocabulary gate
	VocabPath     string  `envconfig:"VOCAB_PATH" default:"assets/english_vocab.txt"`
	GateThreshold float64 `envconfig:"GATE_THRESHOLD" default:"0.7"`

	// Lexical scorer
	VaderLexicon      string `envconfig:"VADER_LEXICON" default:"assets/vader_lexicon.txt"`
	VaderEmojiLexicon string `envconfig:"VADER_EMOJI_LEXICON" default:"assets/emoji_utf8_lexicon.txt"`

	// Statistical classifier artifacts. Both must already be trained.
	ModelPath      string   `envconfig:"MODEL_PATH" default:"assets/tanglish_classifier.onnx"`
	TokenizerPath  string   `envconfig:"TOKENIZER_PATH" default:"assets/tokenizer.json"`
	OrtLibraryPath string   `envconfig:"ORT_LIBRARY_PATH"`
	ModelLabels    []string `envconfig:"MODEL_LABELS" default:"Negative,Neutral,Positive"`
	MaxSeqLen      int      `envconfig:"MAX_SEQ_LEN" default:"128"`

	DBPath      string `envconfig:"DB_PATH" default:"feedback-insights.db"`
	RendererURL string `envconfig:"RENDERER_URL"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
