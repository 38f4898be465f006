package api

import "github.com/cryptomarket/market-api/coingecko"

// RootResponse describes the service to a caller hitting the root path
type RootResponse struct {
	Message       string `json:"message"`
	Version       string `json:"version"`
	Documentation string `json:"documentation"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Status string `json:"status"`
}

// CoinListResponse is the paginated coin listing envelope. Total is
// synthesized from page-fullness, not reported by the provider, and
// must not be treated as an exact count.
type CoinListResponse struct {
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
	Total   int              `json:"total"`
	Items   []coingecko.Coin `json:"items"`
}

// CategoryListResponse wraps the category listing
type CategoryListResponse struct {
	Categories []coingecko.Category `json:"categories"`
}

// CategoryCoinsResponse is the category-filtered coin listing. It carries
// the same synthesized pagination fields as CoinListResponse.
type CategoryCoinsResponse struct {
	Category string           `json:"category"`
	Page     int              `json:"page"`
	PerPage  int              `json:"per_page"`
	Total    int              `json:"total"`
	Coins    []coingecko.Coin `json:"coins"`
}

// ErrorResponse carries the textual detail of a failed request
type ErrorResponse struct {
	Detail string `json:"detail"`
}
