package stars

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/pkg/shared/config"
)

func intPtr(v int) *int { return &v }

func testClient(t *testing.T, server *httptest.Server, token string) *Client {
	t.Helper()
	cfg := &config.Config{}
	cfg.GitHub.APIBaseURL = server.URL
	cfg.GitHub.RequestDelay = time.Millisecond
	cfg.GitHub.Token = token
	return NewClient(hclog.NewNullLogger(), cfg)
}

func TestStarsFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/acme/shell", r.URL.Path)
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stargazers_count": 1234}`))
	}))
	defer server.Close()

	client := testClient(t, server, "secret")

	stars, err := client.Stars(context.Background(), "acme/shell")
	require.NoError(t, err)
	assert.Equal(t, 1234, stars)
}

func TestStarsNonOKCountsAsZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := testClient(t, server, "")

	stars, err := client.Stars(context.Background(), "acme/missing")
	require.NoError(t, err)
	assert.Equal(t, 0, stars)
}

func TestEnrichStoreSkipsKnownStars(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"stargazers_count": 7}`))
	}))
	defer server.Close()

	store := metadata.NewStore([]metadata.Record{
		{GitHubURL: "https://github.com/acme/known", Stars: intPtr(99)},
		{GitHubURL: "https://github.com/acme/unknown"},
		{GitHubURL: "not a github url"},
	})

	client := testClient(t, server, "")

	updated, err := client.EnrichStore(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	assert.Equal(t, 1, requests)

	records := store.Records()
	assert.Equal(t, 99, *records[0].Stars)
	require.NotNil(t, records[1].Stars)
	assert.Equal(t, 7, *records[1].Stars)
	assert.Nil(t, records[2].Stars)
}
