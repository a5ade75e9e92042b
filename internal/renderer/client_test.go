package renderer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-insights-go/internal/types"
)

func TestEnabled(t *testing.T) {
	assert.False(t, New("").Enabled())
	assert.False(t, (*Client)(nil).Enabled())
	assert.True(t, New("http://localhost:9000/render").Enabled())
}

func TestRender(t *testing.T) {
	var got Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(Response{
			PDFPath:  "reports/out.pdf",
			PieChart: "cGll",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Render(Request{Total: 3, Summary: "Total feedback entries: 3"})
	require.NoError(t, err)
	assert.Equal(t, "reports/out.pdf", resp.PDFPath)
	assert.Equal(t, "cGll", resp.PieChart)
	assert.Equal(t, 3, got.Total)
}

func TestRenderClientErrorIsNotRetried(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.maxRetryTime = 2 * time.Second
	_, err := c.Render(Request{})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "4xx is permanent")
}

func TestRenderRetriesServerErrors(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(Response{PDFPath: "ok.pdf"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.maxRetryTime = 10 * time.Second
	resp, err := c.Render(Request{})
	require.NoError(t, err)
	assert.Equal(t, "ok.pdf", resp.PDFPath)
	assert.Equal(t, 3, calls)
}

func TestNewRequestOmitsEmptyCorpora(t *testing.T) {
	agg := types.AggregateReport{
		Total:          2,
		Counts:         map[types.SentimentLabel]int{types.Positive: 2, types.Neutral: 0, types.Negative: 0},
		Trending:       []types.Keyword{{Token: "music", Count: 2}},
		PositiveCorpus: "loved the music twice",
	}
	req := NewRequest(types.EventContext{Club: "Music Club"}, agg, "summary")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	body := string(data)
	assert.Contains(t, body, "positiveCorpus")
	assert.NotContains(t, body, "negativeCorpus", "empty corpus means no image request")
	assert.Equal(t, []string{"music"}, req.TrendingTopics)
}
