package types

// --------------------------------------------
// FINAL analysis payload delivered to frontend
// --------------------------------------------
type Analysis struct {
	SentimentCounts map[SentimentLabel]int `json:"sentimentCounts"`
	Summary         string                 `json:"summary"`
	TopPositive     []string               `json:"topPositive"`
	TopNegative     []string               `json:"topNegative"`
	TrendingTopics  []string               `json:"trendingTopics"`
	SampleFeedback  []string               `json:"sampleFeedback"`
	EngagementScore *float64               `json:"engagementScore,omitempty"`

	// Filled in by the external renderer when one is configured.
	PieChart         string `json:"pieChart,omitempty"`
	WordCloud        string `json:"wordCloud,omitempty"`
	PositiveKeywords string `json:"positiveKeywords,omitempty"`
	NegativeKeywords string `json:"negativeKeywords,omitempty"`
	PDFPath          string `json:"pdfPath,omitempty"`

	DurationMs int64 `json:"duration_ms"`
}

// --------------------------------------------
// Persisted report record, keyed by club
// --------------------------------------------
type ReportRecord struct {
	ID          string                 `json:"id"`
	EventName   string                 `json:"eventName"`
	Club        string                 `json:"club"`
	Description string                 `json:"description"`
	Date        string                 `json:"date"`
	Counts      map[SentimentLabel]int `json:"counts"`
	Total       int                    `json:"total"`
	TopPositive []string               `json:"topPositive"`
	TopNegative []string               `json:"topNegative"`
	Trending    []string               `json:"trendingTopics"`
	Engagement  *float64               `json:"engagementScore,omitempty"`
	PDFPath     string                 `json:"pdfPath,omitempty"`
	CreatedAt   string                 `json:"createdAt"`
}
