// Package processor orchestrates one analysis request: classify every row in
// upload order, aggregate the batch, persist the report record and dispatch
// the aggregate to the renderer.
package processor

import (
	"fmt"
	"time"

	"feedback-insights-go/internal/aggregator"
	"feedback-insights-go/internal/classifier"
	"feedback-insights-go/internal/logger"
	"feedback-insights-go/internal/renderer"
	"feedback-insights-go/internal/report"
	"feedback-insights-go/internal/store"
	"feedback-insights-go/internal/types"
)

type Processor struct {
	classifier *classifier.Classifier
	store      *store.Store
	renderer   *renderer.Client
}

func New(c *classifier.Classifier, s *store.Store, r *renderer.Client) *Processor {
	return &Processor{classifier: c, store: s, renderer: r}
}

// Process runs the full pipeline for one batch. A classifier or persistence
// failure fails the whole batch; renderer failures degrade to an analysis
// without rendered artifacts.
func (p *Processor) Process(rows []types.FeedbackRow, event types.EventContext) (types.Analysis, error) {
	start := time.Now()
	log := logger.New().WithField("component", "processor").
		WithField("club", event.Club).WithField("rows", len(rows))

	for i := range rows {
		label, source, err := p.classifier.Classify(rows[i].Text)
		if err != nil {
			return types.Analysis{}, fmt.Errorf("classify row %d: %w", i, err)
		}
		rows[i].Sentiment = label
		rows[i].Source = source
	}

	agg := aggregator.Aggregate(rows, event.Strength)
	summary := report.Summary(agg)

	topics := make([]string, 0, len(agg.Trending))
	for _, kw := range agg.Trending {
		topics = append(topics, kw.Token)
	}
	analysis := types.Analysis{
		SentimentCounts: agg.Counts,
		Summary:         summary,
		TopPositive:     agg.TopPositive,
		TopNegative:     agg.TopNegative,
		TrendingTopics:  topics,
		SampleFeedback:  agg.SampleFeedback,
		EngagementScore: agg.Engagement,
	}

	if p.renderer.Enabled() {
		rendered, err := p.renderer.Render(renderer.NewRequest(event, agg, summary))
		if err != nil {
			log.WithError(err).Warn("renderer failed; returning analysis without artifacts")
		} else {
			analysis.PieChart = rendered.PieChart
			analysis.WordCloud = rendered.WordCloud
			analysis.PositiveKeywords = rendered.PositiveKeywords
			analysis.NegativeKeywords = rendered.NegativeKeywords
			analysis.PDFPath = rendered.PDFPath
		}
	}

	rec := report.NewRecord(event, agg, analysis.PDFPath)
	saved, err := p.store.SaveReport(rec)
	if err != nil {
		return types.Analysis{}, fmt.Errorf("persist report: %w", err)
	}
	log.WithField("report_id", saved.ID).Info("analysis complete")

	analysis.DurationMs = time.Since(start).Milliseconds()
	return analysis, nil
}
