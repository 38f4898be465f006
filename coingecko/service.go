package coingecko

import (
	"encoding/json"
	"log"
	"net/url"

	"github.com/cryptomarket/market-api/config"
	"github.com/cryptomarket/market-api/metrics"
)

// Service is the gateway to the upstream provider. It holds only fixed
// configuration and can be instantiated freely; no state survives a request.
type Service struct {
	cfg           config.CoinGeckoConfig
	httpClient    *HTTPClient
	metricsWriter *metrics.MetricsWriter
}

// NewService creates a new gateway for the given provider configuration
func NewService(cfg config.CoinGeckoConfig) *Service {
	opts := DefaultClientOptions()
	opts.LogPrefix = "CoinGecko"
	if cfg.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = cfg.ConnectionTimeout
	}
	if cfg.RequestTimeout > 0 {
		opts.RequestTimeout = cfg.RequestTimeout
	}

	metricsWriter := metrics.NewMetricsWriter(metrics.ServiceCoinGecko)

	return &Service{
		cfg:           cfg,
		httpClient:    NewHTTPClient(opts, metricsWriter),
		metricsWriter: metricsWriter,
	}
}

// ListCoins fetches one page of coins ordered by descending market cap.
// It requests perPage+1 items so the caller can infer whether a next
// page exists, then truncates the result to perPage.
func (s *Service) ListCoins(page, perPage int) ([]Coin, error) {
	return s.fetchMarkets(page, perPage, "")
}

// ListCategories fetches the full category list. Malformed payloads
// degrade to an empty list instead of failing.
func (s *Service) ListCategories() ([]Category, error) {
	request, err := NewRequestBuilder(s.cfg.BaseURL, CATEGORIES_LIST_API_PATH).
		WithApiKey(s.cfg.APIKey).
		Build()
	if err != nil {
		return nil, NewInternalError(err)
	}

	body, duration, err := s.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}
	s.metricsWriter.RecordUpstreamLatency("coins/categories/list", duration)

	categories := decodeCategoryList(body)
	log.Printf("CoinGecko: Fetched %d categories", len(categories))

	return categories, nil
}

// GetCoin fetches full detail for one coin with market data enabled and
// auxiliary data disabled, flattening nested market data into the Coin
// shape for the configured currency. Upstream 404s and any parse or
// reshape failure collapse into a not-found error for the coin id.
func (s *Service) GetCoin(coinID string) (*CoinDetail, error) {
	request, err := NewRequestBuilder(s.cfg.BaseURL, COIN_DETAIL_API_PATH+"/"+url.PathEscape(coinID)).
		WithCurrency(s.cfg.Currency).
		With("localization", "false").
		With("tickers", "false").
		With("market_data", "true").
		With("community_data", "false").
		With("developer_data", "false").
		WithSparkline(false).
		WithApiKey(s.cfg.APIKey).
		Build()
	if err != nil {
		return nil, NewNotFoundError(coinID)
	}

	body, duration, err := s.httpClient.ExecuteRequest(request)
	if err != nil {
		if gatewayErr, ok := AsError(err); ok && gatewayErr.Kind == KindUpstream && gatewayErr.StatusCode == 404 {
			return nil, NewNotFoundError(coinID)
		}
		return nil, err
	}
	s.metricsWriter.RecordUpstreamLatency("coins/{id}", duration)

	var data coinDetailData
	if err := json.Unmarshal(body, &data); err != nil {
		log.Printf("CoinGecko: Error parsing coin detail for %s: %v", coinID, err)
		return nil, NewNotFoundError(coinID)
	}
	if data.ID == "" {
		return nil, NewNotFoundError(coinID)
	}

	return reshapeCoinDetail(data, s.cfg.Currency), nil
}

// ListCoinsByCategory resolves the category name, then fetches the
// category-filtered coin listing with the same over-fetch-by-one
// pagination as ListCoins. A category the provider does not know yields
// an empty listing named after the raw category id, not an error.
func (s *Service) ListCoinsByCategory(categoryID string, page, perPage int) (*CategoryCoins, error) {
	name, found, err := s.resolveCategoryName(categoryID)
	if err != nil {
		return nil, err
	}
	if !found {
		log.Printf("CoinGecko: Category %s not found upstream, returning empty listing", categoryID)
		return &CategoryCoins{Category: categoryID, Coins: []Coin{}}, nil
	}

	coins, err := s.fetchMarkets(page, perPage, categoryID)
	if err != nil {
		return nil, err
	}

	return &CategoryCoins{Category: name, Coins: coins}, nil
}

// fetchMarkets fetches one page from coins/markets, over-fetching by one
// item and truncating so page-fullness reveals whether more results exist.
func (s *Service) fetchMarkets(page, perPage int, category string) ([]Coin, error) {
	request, err := NewRequestBuilder(s.cfg.BaseURL, MARKETS_API_PATH).
		WithCurrency(s.cfg.Currency).
		WithOrder("market_cap_desc").
		WithPage(page).
		WithPerPage(perPage + 1).
		WithCategory(category).
		WithSparkline(false).
		WithApiKey(s.cfg.APIKey).
		Build()
	if err != nil {
		return nil, NewInternalError(err)
	}

	body, duration, err := s.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}
	s.metricsWriter.RecordUpstreamLatency("coins/markets", duration)

	var entries []marketData
	if err := json.Unmarshal(body, &entries); err != nil {
		log.Printf("CoinGecko: Error parsing markets response: %v", err)
		return nil, NewInternalError(err)
	}

	if len(entries) > perPage {
		entries = entries[:perPage]
	}

	coins := make([]Coin, 0, len(entries))
	for _, entry := range entries {
		coins = append(coins, reshapeMarketData(entry))
	}

	log.Printf("CoinGecko: Fetched page %d with %d coins", page, len(coins))

	return coins, nil
}

// resolveCategoryName fetches category metadata; found is false when the
// provider reports the category as absent (404 or an empty payload).
func (s *Service) resolveCategoryName(categoryID string) (string, bool, error) {
	request, err := NewRequestBuilder(s.cfg.BaseURL, CATEGORY_DETAIL_API_PATH+"/"+url.PathEscape(categoryID)).
		WithApiKey(s.cfg.APIKey).
		Build()
	if err != nil {
		return "", false, NewInternalError(err)
	}

	body, duration, err := s.httpClient.ExecuteRequest(request)
	if err != nil {
		if gatewayErr, ok := AsError(err); ok && gatewayErr.Kind == KindUpstream && gatewayErr.StatusCode == 404 {
			return "", false, nil
		}
		return "", false, err
	}
	s.metricsWriter.RecordUpstreamLatency("coins/categories/{id}", duration)

	var data categoryDetailData
	if err := json.Unmarshal(body, &data); err != nil {
		return "", false, nil
	}
	if data.ID == "" && data.Name == "" {
		return "", false, nil
	}

	if data.Name == "" {
		return categoryID, true, nil
	}
	return data.Name, true, nil
}
