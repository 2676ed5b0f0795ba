package saramin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-jobdash-backend/pkg/saramin"
)

func newClient(t *testing.T, handler http.Handler) *saramin.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := saramin.NewClient(saramin.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	_, err := saramin.NewClient(saramin.Config{})
	assert.Error(t, err)
}

func TestRecommendedJobsDecodes(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recommended-jobs", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"recommendedJobs": [
				{"id": 1, "companyName": "네이버", "match_score": 92}
			]
		}`))
	}))

	resp, err := client.RecommendedJobs(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.RecommendedJobs, 1)
	assert.Equal(t, "네이버", resp.RecommendedJobs[0]["companyName"])
}

func TestAllJobsSurfacesHTTPError(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "scraper busy", http.StatusServiceUnavailable)
	}))

	resp, err := client.AllJobs(context.Background())
	assert.Nil(t, resp)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "scraper busy")
}

func TestTriggerScrapeRejectsBadJSON(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))

	_, err := client.TriggerScrape(context.Background())
	assert.Error(t, err)
}

func TestRequestHonorsContext(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.RunAutoMatching(ctx)
	assert.Error(t, err)
}
