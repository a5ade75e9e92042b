package classifier

import (
	"fmt"

	"github.com/drankou/go-vader/vader"
)

// Scorer produces a continuous polarity score in [-1, 1] for a text.
type Scorer interface {
	Polarity(text string) float64
}

// VaderScorer scores primary-language text with the VADER lexicon.
type VaderScorer struct {
	analyzer vader.SentimentIntensityAnalyzer
}

// NewVaderScorer loads the word and emoji lexicons from disk.
func NewVaderScorer(lexiconPath, emojiLexiconPath string) (*VaderScorer, error) {
	s := &VaderScorer{}
	if err := s.analyzer.Init(lexiconPath, emojiLexiconPath); err != nil {
		return nil, fmt.Errorf("init vader lexicons: %w", err)
	}
	return s, nil
}

// Polarity returns the compound valence score for text.
func (s *VaderScorer) Polarity(text string) float64 {
	return s.analyzer.PolarityScores(text)["compound"]
}
