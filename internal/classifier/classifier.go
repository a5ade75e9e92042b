// Package classifier assigns a sentiment label and a provenance tag to each
// feedback text via a hybrid lexical/statistical approach.
package classifier

import (
	"fmt"

	"feedback-insights-go/internal/types"
	"feedback-insights-go/internal/vocab"
)

// Polarity cutoffs for the lexical path.
const (
	positiveCutoff = 0.1
	negativeCutoff = -0.1
)

// Classifier routes primary-language text to the lexical scorer and
// everything else to the pretrained statistical model. All dependencies are
// injected at construction and read-only afterwards.
type Classifier struct {
	vocab     *vocab.Reference
	scorer    Scorer
	model     Predictor
	threshold float64
}

func New(ref *vocab.Reference, scorer Scorer, model Predictor, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = vocab.DefaultThreshold
	}
	return &Classifier{vocab: ref, scorer: scorer, model: model, threshold: threshold}
}

// Classify returns exactly one label and one provenance for text. Statistical
// model failures propagate; there are no retries.
func (c *Classifier) Classify(text string) (types.SentimentLabel, types.Provenance, error) {
	if c.vocab.IsPrimary(text, c.threshold) {
		switch p := c.scorer.Polarity(text); {
		case p > positiveCutoff:
			return types.Positive, types.PrimaryLexical, nil
		case p < negativeCutoff:
			return types.Negative, types.PrimaryLexical, nil
		default:
			return types.Neutral, types.PrimaryLexical, nil
		}
	}
	label, err := c.model.Predict(text)
	if err != nil {
		return "", "", fmt.Errorf("statistical classify: %w", err)
	}
	return label, types.SecondaryStatistical, nil
}
