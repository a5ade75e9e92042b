package types

import "fmt"

// SentimentLabel is one of the three canonical sentiment classes.
type SentimentLabel string

const (
	Positive SentimentLabel = "Positive"
	Neutral  SentimentLabel = "Neutral"
	Negative SentimentLabel = "Negative"
)

// LabelOrder returns the fixed display order used everywhere counts or
// filtered lists are produced.
func LabelOrder() []SentimentLabel {
	return []SentimentLabel{Positive, Neutral, Negative}
}

// ParseLabel coerces an arbitrary string (typically raw model output) into a
// canonical SentimentLabel. Unrecognized values are an error, never passed on.
func ParseLabel(s string) (SentimentLabel, error) {
	switch SentimentLabel(s) {
	case Positive, Neutral, Negative:
		return SentimentLabel(s), nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// Provenance records which classification path produced a row's label.
type Provenance string

const (
	PrimaryLexical       Provenance = "PrimaryLexical"
	SecondaryStatistical Provenance = "SecondaryStatistical"
)

// FeedbackRow is one uploaded feedback entry. Extras carries any non-text
// columns untouched. Sentiment and Source are filled in by the classifier.
type FeedbackRow struct {
	Text      string            `json:"text"`
	Extras    map[string]string `json:"extras,omitempty"`
	Sentiment SentimentLabel    `json:"sentiment,omitempty"`
	Source    Provenance        `json:"source,omitempty"`
}

// EventContext is the event metadata accompanying an upload. All fields are
// opaque pass-through except Strength, which feeds the engagement score.
type EventContext struct {
	EventName   string `json:"eventName"`
	Club        string `json:"club"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Strength    string `json:"strength"`
}

// Keyword is a trending token with its batch frequency.
type Keyword struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// AggregateReport holds everything derived from one classified batch.
// It is created fresh per request and never persisted as-is.
type AggregateReport struct {
	Total          int                         `json:"total"`
	Counts         map[SentimentLabel]int      `json:"counts"`
	ByLabel        map[SentimentLabel][]string `json:"byLabel"`
	TopPositive    []string                    `json:"topPositive"`
	TopNegative    []string                    `json:"topNegative"`
	SampleFeedback []string                    `json:"sampleFeedback"`
	Trending       []Keyword                   `json:"trending"`
	Engagement     *float64                    `json:"engagement"`
	PositiveCorpus string                      `json:"-"`
	NegativeCorpus string                      `json:"-"`
}
