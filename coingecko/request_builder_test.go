package coingecko

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestBuilder_BuildURL(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *RequestBuilder
		wantPath string
		wantVals url.Values
	}{
		{
			name: "markets with pagination",
			build: func() *RequestBuilder {
				return NewRequestBuilder("https://api.example.com", MARKETS_API_PATH).
					WithCurrency("usd").
					WithOrder("market_cap_desc").
					WithPage(2).
					WithPerPage(11).
					WithSparkline(false)
			},
			wantPath: MARKETS_API_PATH,
			wantVals: url.Values{
				"vs_currency": {"usd"},
				"order":       {"market_cap_desc"},
				"page":        {"2"},
				"per_page":    {"11"},
				"sparkline":   {"false"},
			},
		},
		{
			name: "category filter only when set",
			build: func() *RequestBuilder {
				return NewRequestBuilder("https://api.example.com", MARKETS_API_PATH).
					WithCategory("")
			},
			wantPath: MARKETS_API_PATH,
			wantVals: url.Values{},
		},
		{
			name: "trailing slash on base url",
			build: func() *RequestBuilder {
				return NewRequestBuilder("https://api.example.com/", CATEGORIES_LIST_API_PATH)
			},
			wantPath: CATEGORIES_LIST_API_PATH,
			wantVals: url.Values{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			built := tt.build().BuildURL()

			parsed, err := url.Parse(built)
			require.NoError(t, err)

			assert.Equal(t, "api.example.com", parsed.Host)
			assert.Equal(t, tt.wantPath, parsed.Path)
			assert.Equal(t, tt.wantVals, parsed.Query())
			assert.False(t, strings.Contains(built, "//api/"), "no double slash in path")
		})
	}
}

func TestRequestBuilder_Build(t *testing.T) {
	req, err := NewRequestBuilder("https://api.example.com", MARKETS_API_PATH).
		WithApiKey("secret-key").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "GET", req.Method)
	assert.Equal(t, "secret-key", req.Header.Get("x-cg-demo-api-key"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.NotEmpty(t, req.Header.Get("User-Agent"))

	// Key must be carried only in the header, never the query
	assert.NotContains(t, req.URL.String(), "secret-key")
}

func TestRequestBuilder_NoApiKeyHeaderWhenUnset(t *testing.T) {
	req, err := NewRequestBuilder("https://api.example.com", MARKETS_API_PATH).Build()
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("x-cg-demo-api-key"))
}

func TestRequestBuilder_CustomUserAgent(t *testing.T) {
	req, err := NewRequestBuilder("https://api.example.com", MARKETS_API_PATH).
		WithUserAgent("custom-agent/2.0").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "custom-agent/2.0", req.Header.Get("User-Agent"))
}
