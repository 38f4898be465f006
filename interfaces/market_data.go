package interfaces

import "github.com/cryptomarket/market-api/coingecko"

//go:generate mockgen -destination=mocks/market_data.go . IMarketDataService

// IMarketDataService defines the upstream gateway operations the HTTP
// layer depends on
type IMarketDataService interface {
	// ListCoins fetches one page of coins ordered by descending market cap
	ListCoins(page, perPage int) ([]coingecko.Coin, error)

	// ListCategories fetches the full category list
	ListCategories() ([]coingecko.Category, error)

	// GetCoin fetches reshaped detail data for a single coin
	GetCoin(coinID string) (*coingecko.CoinDetail, error)

	// ListCoinsByCategory fetches a category-filtered coin listing along
	// with the resolved category name
	ListCoinsByCategory(categoryID string, page, perPage int) (*coingecko.CategoryCoins, error)
}
