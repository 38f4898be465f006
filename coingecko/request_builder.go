package coingecko

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	// Complete path for the markets API endpoint
	MARKETS_API_PATH = "/api/v3/coins/markets"
	// Complete path for the category list API endpoint
	CATEGORIES_LIST_API_PATH = "/api/v3/coins/categories/list"
	// Path prefix for the category detail API endpoint
	CATEGORY_DETAIL_API_PATH = "/api/v3/coins/categories"
	// Path prefix for the coin detail API endpoint
	COIN_DETAIL_API_PATH = "/api/v3/coins"
)

// Header carrying the demo API key, as documented by the provider
const apiKeyHeader = "x-cg-demo-api-key"

// buildURL safely combines a base URL with a path
func buildURL(baseURL, path string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	trimmedPath := strings.TrimLeft(path, "/")

	return baseURL + "/" + trimmedPath
}

// RequestBuilder implements the Builder pattern for provider API requests
type RequestBuilder struct {
	baseURL    string
	httpMethod string
	apiPath    string
	params     map[string]string
	apiKey     string
	userAgent  string
	headers    map[string]string
}

// NewRequestBuilder creates a new request builder for the given endpoint path
func NewRequestBuilder(baseURL, apiPath string) *RequestBuilder {
	rb := &RequestBuilder{
		baseURL:    baseURL,
		apiPath:    apiPath,
		httpMethod: http.MethodGet,
		params:     make(map[string]string),
		headers:    make(map[string]string),
		userAgent:  "Mozilla/5.0 Market-API",
	}

	rb.headers["Accept"] = "application/json"

	return rb
}

// With adds a custom parameter to the URL query
func (rb *RequestBuilder) With(key, value string) *RequestBuilder {
	rb.params[key] = value
	return rb
}

// WithCurrency adds the vs_currency parameter
func (rb *RequestBuilder) WithCurrency(currency string) *RequestBuilder {
	if currency != "" {
		rb.params["vs_currency"] = currency
	}
	return rb
}

// WithOrder adds the ordering parameter
func (rb *RequestBuilder) WithOrder(order string) *RequestBuilder {
	if order != "" {
		rb.params["order"] = order
	}
	return rb
}

// WithPage adds the page parameter for pagination
func (rb *RequestBuilder) WithPage(page int) *RequestBuilder {
	rb.params["page"] = strconv.Itoa(page)
	return rb
}

// WithPerPage adds the per_page parameter
func (rb *RequestBuilder) WithPerPage(perPage int) *RequestBuilder {
	rb.params["per_page"] = strconv.Itoa(perPage)
	return rb
}

// WithCategory adds the category filter parameter
func (rb *RequestBuilder) WithCategory(category string) *RequestBuilder {
	if category != "" {
		rb.params["category"] = category
	}
	return rb
}

// WithSparkline adds the sparkline parameter
func (rb *RequestBuilder) WithSparkline(enabled bool) *RequestBuilder {
	rb.params["sparkline"] = strconv.FormatBool(enabled)
	return rb
}

// WithApiKey sets the API key carried in the request header
func (rb *RequestBuilder) WithApiKey(apiKey string) *RequestBuilder {
	if apiKey != "" {
		rb.apiKey = apiKey
	}
	return rb
}

// WithUserAgent sets the User-Agent header
func (rb *RequestBuilder) WithUserAgent(userAgent string) *RequestBuilder {
	rb.userAgent = userAgent
	return rb
}

// BuildURL builds the complete URL for the request
func (rb *RequestBuilder) BuildURL() string {
	fullPath := buildURL(rb.baseURL, rb.apiPath)

	query := url.Values{}
	for key, value := range rb.params {
		query.Add(key, value)
	}

	finalURL := fullPath
	queryString := query.Encode()
	if queryString != "" {
		finalURL = fmt.Sprintf("%s?%s", finalURL, queryString)
	}

	return finalURL
}

// Build creates an http.Request object
func (rb *RequestBuilder) Build() (*http.Request, error) {
	req, err := http.NewRequest(rb.httpMethod, rb.BuildURL(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", rb.userAgent)

	for key, value := range rb.headers {
		req.Header.Set(key, value)
	}

	if rb.apiKey != "" {
		req.Header.Set(apiKeyHeader, rb.apiKey)
	}

	return req, nil
}
