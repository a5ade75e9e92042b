package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-insights-go/internal/types"
)

func row(text string, label types.SentimentLabel) types.FeedbackRow {
	return types.FeedbackRow{Text: text, Sentiment: label}
}

func TestAggregateCounts(t *testing.T) {
	rows := []types.FeedbackRow{
		row("great event", types.Positive),
		row("it was fine", types.Neutral),
		row("loved it", types.Positive),
		row("awful queue", types.Negative),
	}
	agg := Aggregate(rows, "")

	assert.Equal(t, 4, agg.Total)
	assert.Equal(t, 2, agg.Counts[types.Positive])
	assert.Equal(t, 1, agg.Counts[types.Neutral])
	assert.Equal(t, 1, agg.Counts[types.Negative])

	sum := 0
	for _, l := range types.LabelOrder() {
		sum += agg.Counts[l]
	}
	assert.Equal(t, agg.Total, sum)
}

func TestAggregateMissingLabelsGetZero(t *testing.T) {
	agg := Aggregate([]types.FeedbackRow{row("nice", types.Positive)}, "")
	for _, l := range types.LabelOrder() {
		_, present := agg.Counts[l]
		assert.True(t, present, "label %s must never be omitted", l)
	}
	assert.Equal(t, 0, agg.Counts[types.Negative])
	assert.Equal(t, 0, agg.Counts[types.Neutral])
}

func TestAggregateEmptyBatch(t *testing.T) {
	agg := Aggregate(nil, "")
	assert.Equal(t, 0, agg.Total)
	assert.Empty(t, agg.TopPositive)
	assert.Empty(t, agg.TopNegative)
	assert.Empty(t, agg.SampleFeedback)
	assert.Empty(t, agg.Trending)
	assert.Nil(t, agg.Engagement)
	assert.Empty(t, agg.PositiveCorpus)
	assert.Empty(t, agg.NegativeCorpus)
}

func TestTopSamplesPreserveUploadOrder(t *testing.T) {
	rows := []types.FeedbackRow{
		row("p1", types.Positive),
		row("n1", types.Negative),
		row("p2", types.Positive),
		row("p3", types.Positive),
		row("p4", types.Positive),
	}
	agg := Aggregate(rows, "")

	assert.Equal(t, []string{"p1", "p2", "p3"}, agg.TopPositive, "first-k by upload order, not ranked")
	assert.Equal(t, []string{"n1"}, agg.TopNegative, "fewer than k returns all")
}

func TestSampleFeedbackFirstFiveAnyLabel(t *testing.T) {
	rows := []types.FeedbackRow{
		row("a", types.Positive),
		row("b", types.Negative),
		row("c", types.Neutral),
		row("d", types.Negative),
		row("e", types.Positive),
		row("f", types.Positive),
	}
	agg := Aggregate(rows, "")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, agg.SampleFeedback)
}

func TestTrendingFrequencyAndTieBreak(t *testing.T) {
	rows := []types.FeedbackRow{
		row("Food was great, food stall food!", types.Positive),
		row("music music was loud", types.Neutral),
		row("venue parking sound lights decor", types.Neutral),
	}
	kws := Trending(rows, 5)

	require.True(t, len(kws) <= 5)
	assert.Equal(t, types.Keyword{Token: "food", Count: 3}, kws[0])
	// "was" (2) appears before "music" (2) in the batch
	assert.Equal(t, types.Keyword{Token: "was", Count: 2}, kws[1])
	assert.Equal(t, types.Keyword{Token: "music", Count: 2}, kws[2])
	// remaining slots are count-1 tokens in first-occurrence order
	assert.Equal(t, types.Keyword{Token: "great", Count: 1}, kws[3])
	assert.Equal(t, types.Keyword{Token: "stall", Count: 1}, kws[4])
}

func TestTrendingStripsPunctuationAndCase(t *testing.T) {
	rows := []types.FeedbackRow{row("Great!!! great, GREAT.", types.Positive)}
	kws := Trending(rows, 5)
	require.Len(t, kws, 1)
	assert.Equal(t, types.Keyword{Token: "great", Count: 3}, kws[0])
}

func TestEngagement(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		strength string
		want     *float64
	}{
		{"half turnout", 50, "100", ptr(50.0)},
		{"rounded to two decimals", 1, "3", ptr(33.33)},
		{"over capacity", 120, "100", ptr(120.0)},
		{"zero strength", 10, "0", nil},
		{"negative strength", 10, "-5", nil},
		{"non numeric", 10, "abc", nil},
		{"missing", 10, "", nil},
		{"whitespace padded", 50, " 100 ", ptr(50.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Engagement(tt.total, tt.strength)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestWordCloudCorpora(t *testing.T) {
	rows := []types.FeedbackRow{
		row("loved the music", types.Positive),
		row("   ", types.Negative),
		row("great food", types.Positive),
	}
	agg := Aggregate(rows, "")

	assert.Equal(t, "loved the music great food", agg.PositiveCorpus)
	assert.Empty(t, agg.NegativeCorpus, "all-whitespace corpus signals no image")
}

func TestAggregateIdempotent(t *testing.T) {
	rows := []types.FeedbackRow{
		row("good show good vibes", types.Positive),
		row("meh", types.Neutral),
		row("bad sound bad seats", types.Negative),
	}
	first := Aggregate(rows, "40")
	second := Aggregate(rows, "40")
	assert.Equal(t, first, second)
}

func ptr(f float64) *float64 { return &f }
