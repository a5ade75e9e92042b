package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-insights-go/internal/types"
)

func sampleAggregate() types.AggregateReport {
	engagement := 75.0
	return types.AggregateReport{
		Total: 4,
		Counts: map[types.SentimentLabel]int{
			types.Positive: 2,
			types.Neutral:  1,
			types.Negative: 1,
		},
		ByLabel: map[types.SentimentLabel][]string{
			types.Positive: {"loved it", "great food"},
			types.Neutral:  {"it was okay"},
			types.Negative: {"too crowded"},
		},
		TopPositive: []string{"loved it", "great food"},
		TopNegative: []string{"too crowded"},
		Trending:    []types.Keyword{{Token: "food", Count: 2}, {Token: "crowded", Count: 1}},
		Engagement:  &engagement,
	}
}

func TestSummary(t *testing.T) {
	got := Summary(sampleAggregate())

	assert.True(t, strings.HasPrefix(got, "Total feedback entries: 4\n"))
	assert.Contains(t, got, "Positive: 2\n")
	assert.Contains(t, got, "Neutral: 1\n")
	assert.Contains(t, got, "Negative: 1\n")
	assert.Contains(t, got, "Positive Feedbacks:\n- loved it\n- great food\n")
	assert.Contains(t, got, "Negative Feedbacks:\n- too crowded\n")

	// fixed label order in the counts block
	pos := strings.Index(got, "Positive: ")
	neu := strings.Index(got, "Neutral: ")
	neg := strings.Index(got, "Negative: ")
	assert.True(t, pos < neu && neu < neg)
}

func TestNewRecord(t *testing.T) {
	event := types.EventContext{
		EventName:   "Tech Meetup",
		Club:        "Coding Club",
		Description: "monthly meetup",
		Date:        "2026-07-10",
		Strength:    "80",
	}
	agg := sampleAggregate()

	rec := NewRecord(event, agg, "reports/meetup.pdf")

	assert.Equal(t, "Tech Meetup", rec.EventName)
	assert.Equal(t, "Coding Club", rec.Club)
	assert.Equal(t, agg.Counts, rec.Counts)
	assert.Equal(t, 4, rec.Total)
	assert.Equal(t, []string{"loved it", "great food"}, rec.TopPositive)
	assert.Equal(t, []string{"food", "crowded"}, rec.Trending)
	require.NotNil(t, rec.Engagement)
	assert.InDelta(t, 75.0, *rec.Engagement, 1e-9)
	assert.Equal(t, "reports/meetup.pdf", rec.PDFPath)
	assert.Empty(t, rec.ID, "id assignment belongs to the store")
}
