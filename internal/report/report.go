// Package report shapes an aggregate into the human-readable summary and the
// persistence record consumed by the boundary layers.
package report

import (
	"fmt"
	"strings"

	"feedback-insights-go/internal/types"
)

// Summary renders the plain-text report body: totals, counts in fixed label
// order, then the full feedback listing per label.
func Summary(agg types.AggregateReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total feedback entries: %d\n\n", agg.Total)
	for _, l := range types.LabelOrder() {
		fmt.Fprintf(&b, "%s: %d\n", l, agg.Counts[l])
	}
	b.WriteString("\n---\n\n")
	for _, l := range types.LabelOrder() {
		fmt.Fprintf(&b, "%s Feedbacks:\n", l)
		for _, text := range agg.ByLabel[l] {
			fmt.Fprintf(&b, "- %s\n", text)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// NewRecord shapes the persisted report, keyed by club for later retrieval.
// The store assigns id and timestamp.
func NewRecord(event types.EventContext, agg types.AggregateReport, pdfPath string) types.ReportRecord {
	topics := make([]string, 0, len(agg.Trending))
	for _, kw := range agg.Trending {
		topics = append(topics, kw.Token)
	}
	return types.ReportRecord{
		EventName:   event.EventName,
		Club:        event.Club,
		Description: event.Description,
		Date:        event.Date,
		Counts:      agg.Counts,
		Total:       agg.Total,
		TopPositive: agg.TopPositive,
		TopNegative: agg.TopNegative,
		Trending:    topics,
		Engagement:  agg.Engagement,
		PDFPath:     pdfPath,
	}
}
