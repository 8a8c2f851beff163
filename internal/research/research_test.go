package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_SuccessfulCycle(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Editorial Archive</title></head><body>
			<p>The artist describes a generative practice built on daily constraint systems and code.</p>
			<a href="/essays/constraint-systems">Essay</a>
		</body></html>`))
	}))
	defer server.Close()

	result := Fetch(context.Background(), server.URL, "a1-maximalist-poet", Options{})
	require.True(t, result.OK)
	assert.Equal(t, server.URL, result.URL)
	assert.Equal(t, "Editorial Archive", result.Title)
	assert.NotEmpty(t, result.Takeaways)
	require.Len(t, result.DiscoveredLinks, 1)
	assert.Equal(t, server.URL+"/essays/constraint-systems", result.DiscoveredLinks[0])
	assert.Equal(t, server.URL+"/essays/constraint-systems", result.NextURL)
}

func TestFetch_HTTPStatusFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result := Fetch(context.Background(), server.URL, "a2-systems-minimalist", Options{})
	require.False(t, result.OK)
	assert.Equal(t, "Fetch failed", result.Title)
	require.Len(t, result.Takeaways, 1)
	assert.Contains(t, result.Takeaways[0], "HTTP 404")
	assert.Empty(t, result.DiscoveredLinks)
	assert.Empty(t, result.NextURL)
}

func TestFetch_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	result := Fetch(context.Background(), url, "a3-glitch-documentarian", Options{})
	require.False(t, result.OK)
	assert.Equal(t, "Fetch exception", result.Title)
	require.Len(t, result.Takeaways, 1)
	assert.NotEmpty(t, result.Takeaways[0])
	assert.Empty(t, result.NextURL)
}
