// Package renderer is the client for the external document renderer that
// turns an aggregate into a PDF report plus chart and word-cloud images.
package renderer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"feedback-insights-go/internal/logger"
	"feedback-insights-go/internal/types"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// Request is the payload sent to the renderer. Word-cloud corpora are omitted
// when empty so the renderer skips those images instead of drawing blanks.
type Request struct {
	Event          types.EventContext           `json:"event"`
	Total          int                          `json:"total"`
	Counts         map[types.SentimentLabel]int `json:"counts"`
	Summary        string                       `json:"summary"`
	TrendingTopics []string                     `json:"trendingTopics"`
	Engagement     *float64                     `json:"engagementScore,omitempty"`
	PositiveCorpus string                       `json:"positiveCorpus,omitempty"`
	NegativeCorpus string                       `json:"negativeCorpus,omitempty"`
}

// Response carries the rendered artifacts: a server-side PDF path and
// base64-encoded PNGs.
type Response struct {
	PDFPath          string `json:"pdfPath"`
	PieChart         string `json:"pieChart"`
	WordCloud        string `json:"wordCloud"`
	PositiveKeywords string `json:"positiveKeywords"`
	NegativeKeywords string `json:"negativeKeywords"`
}

type Client struct {
	baseURL      string
	maxRetryTime time.Duration
}

// New returns a client for baseURL. An empty baseURL yields a disabled client.
func New(baseURL string) *Client {
	return &Client{baseURL: baseURL, maxRetryTime: 20 * time.Second}
}

// Enabled reports whether a renderer endpoint is configured.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != ""
}

// Render posts the aggregate to the renderer with retry/backoff. Client
// errors (4xx) are permanent and not retried.
func (c *Client) Render(req Request) (Response, error) {
	log := logger.New().WithField("component", "renderer").WithField("url", c.baseURL)

	data, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("encode render request: %w", err)
	}

	var out Response
	op := func() error {
		resp, err := httpClient.Post(c.baseURL, "application/json", bytes.NewReader(data))
		if err != nil {
			log.WithError(err).Warn("render request failed")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("renderer rejected request: %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("renderer status %s", resp.Status)
		}
		if err := json.Unmarshal(body, &out); err != nil {
			return backoff.Permanent(fmt.Errorf("decode render response: %w", err))
		}
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = c.maxRetryTime
	if err := backoff.Retry(op, b); err != nil {
		return Response{}, fmt.Errorf("render failed: %w", err)
	}
	return out, nil
}

// NewRequest shapes the renderer payload from an aggregate and its summary.
func NewRequest(event types.EventContext, agg types.AggregateReport, summary string) Request {
	topics := make([]string, 0, len(agg.Trending))
	for _, kw := range agg.Trending {
		topics = append(topics, kw.Token)
	}
	return Request{
		Event:          event,
		Total:          agg.Total,
		Counts:         agg.Counts,
		Summary:        summary,
		TrendingTopics: topics,
		Engagement:     agg.Engagement,
		PositiveCorpus: agg.PositiveCorpus,
		NegativeCorpus: agg.NegativeCorpus,
	}
}
