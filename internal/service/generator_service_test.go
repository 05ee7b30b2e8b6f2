package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

// redirectTransport sends every request to target, keeping path and query.
type redirectTransport struct {
	target *url.URL
}

func (rt redirectTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = rt.target.Scheme
	r.URL.Host = rt.target.Host
	r.Host = rt.target.Host
	return http.DefaultTransport.RoundTrip(r)
}

func newTestGemini(t *testing.T, handler http.HandlerFunc) *GeminiGenerator {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	target, err := url.Parse(srv.URL)
	require.NoError(t, err)

	g, err := NewGeminiGenerator(context.Background(), "test-key", "gemini-test",
		option.WithHTTPClient(&http.Client{Transport: redirectTransport{target: target}}))
	require.NoError(t, err)
	t.Cleanup(g.Close)
	return g
}

func TestGeminiGenerator_Generate(t *testing.T) {
	var prompt, system string
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/models/gemini-test:streamGenerateContent") {
			http.NotFound(w, r)
			return
		}
		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			SystemInstruction struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"systemInstruction"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			if len(body.Contents) > 0 && len(body.Contents[0].Parts) > 0 {
				prompt = body.Contents[0].Parts[0].Text
			}
			if len(body.SystemInstruction.Parts) > 0 {
				system = body.SystemInstruction.Parts[0].Text
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"candidates":[{"index":0,"content":{"role":"model","parts":[{"text":"First post\n---\nSecond post"}]}}]}]`))
	})

	out, err := g.Generate(context.Background(), "write about hiring")
	require.NoError(t, err)
	assert.Equal(t, "First post\n---\nSecond post", out)
	assert.Equal(t, "write about hiring", prompt)
	assert.Equal(t, generatorSystemInstruction, system)
	assert.Equal(t, []string{"First post", "Second post"}, SplitVariations(out, 0))
}

func TestGeminiGenerator_NoCandidates(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"candidates":[]}]`))
	})

	out, err := g.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestGeminiGenerator_UpstreamError(t *testing.T) {
	g := newTestGemini(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded","status":"RESOURCE_EXHAUSTED"}}`))
	})

	_, err := g.Generate(context.Background(), "anything")
	assert.Error(t, err)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), "", "gemini-test")
	assert.Error(t, err)
}
