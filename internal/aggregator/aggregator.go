// Package aggregator turns a classified batch into the per-event summary
// statistics: ordered counts, top-k samples, trending keywords and the
// engagement score.
package aggregator

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"feedback-insights-go/internal/types"
)

const (
	topKSamples      = 3
	sampleFeedbackN  = 5
	trendingKeywords = 5
)

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Aggregate consumes classified rows in original upload order and derives the
// full AggregateReport. It is pure: same rows, same order, same report.
func Aggregate(rows []types.FeedbackRow, strength string) types.AggregateReport {
	counts := make(map[types.SentimentLabel]int, 3)
	byLabel := make(map[types.SentimentLabel][]string, 3)
	for _, l := range types.LabelOrder() {
		counts[l] = 0
		byLabel[l] = nil
	}
	for _, r := range rows {
		counts[r.Sentiment]++
		byLabel[r.Sentiment] = append(byLabel[r.Sentiment], r.Text)
	}

	sample := make([]string, 0, sampleFeedbackN)
	for _, r := range rows {
		if len(sample) == sampleFeedbackN {
			break
		}
		sample = append(sample, r.Text)
	}

	return types.AggregateReport{
		Total:          len(rows),
		Counts:         counts,
		ByLabel:        byLabel,
		TopPositive:    firstK(byLabel[types.Positive], topKSamples),
		TopNegative:    firstK(byLabel[types.Negative], topKSamples),
		SampleFeedback: sample,
		Trending:       Trending(rows, trendingKeywords),
		Engagement:     Engagement(len(rows), strength),
		PositiveCorpus: corpus(byLabel[types.Positive]),
		NegativeCorpus: corpus(byLabel[types.Negative]),
	}
}

// firstK returns the first k items by original order, never more.
func firstK(items []string, k int) []string {
	if len(items) < k {
		k = len(items)
	}
	out := make([]string, k)
	copy(out, items[:k])
	return out
}

// Trending tokenizes every text (case-folded, word-boundary split, punctuation
// stripped) and returns the top-k tokens by descending frequency. Ties break
// by first occurrence in the batch, so the ranking is stable.
func Trending(rows []types.FeedbackRow, k int) []types.Keyword {
	freq := map[string]int{}
	firstSeen := map[string]int{}
	pos := 0
	for _, r := range rows {
		for _, tok := range tokenPattern.FindAllString(strings.ToLower(r.Text), -1) {
			if _, seen := freq[tok]; !seen {
				firstSeen[tok] = pos
			}
			freq[tok]++
			pos++
		}
	}

	ranked := make([]types.Keyword, 0, len(freq))
	for tok, n := range freq {
		ranked = append(ranked, types.Keyword{Token: tok, Count: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Token] < firstSeen[ranked[j].Token]
	})
	if len(ranked) > k {
		ranked = ranked[:k]
	}
	return ranked
}

// Engagement computes round(100*total/strength, 2). A missing, non-numeric or
// non-positive strength degrades to nil rather than an error.
func Engagement(total int, strength string) *float64 {
	n, err := strconv.Atoi(strings.TrimSpace(strength))
	if err != nil || n <= 0 {
		return nil
	}
	score := math.Round(100*float64(total)/float64(n)*100) / 100
	return &score
}

// corpus joins label texts for the word-cloud renderer. An all-whitespace
// result collapses to "" so the boundary can skip the image entirely.
func corpus(texts []string) string {
	joined := strings.TrimSpace(strings.Join(texts, " "))
	return joined
}
