package coingecko

import "encoding/json"

// Coin is the reduced market entry exposed by this API. Numeric fields
// are pointers so that values the provider omits serialize as null.
type Coin struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
}

// Category is a coin category; ID may be empty when the provider omits category_id
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CoinLinks is the fixed-key subset of provider link data
type CoinLinks struct {
	Homepage         []string `json:"homepage"`
	BlockchainSite   []string `json:"blockchain_site"`
	OfficialForumURL []string `json:"official_forum_url"`
}

// CoinDetail extends Coin with descriptive data for the detail endpoint
type CoinDetail struct {
	Coin
	Description map[string]string `json:"description"`
	Categories  []string          `json:"categories"`
	Links       CoinLinks         `json:"links"`
}

// CategoryCoins pairs a resolved category name with its coin listing
type CategoryCoins struct {
	Category string
	Coins    []Coin
}

// marketData is the upstream coins/markets entry. Only a subset survives
// reshaping; the rest is decoded so partial payloads are still valid.
type marketData struct {
	ID                       string   `json:"id"`
	Symbol                   string   `json:"symbol"`
	Name                     string   `json:"name"`
	Image                    string   `json:"image"`
	CurrentPrice             *float64 `json:"current_price"`
	MarketCap                *float64 `json:"market_cap"`
	MarketCapRank            *int     `json:"market_cap_rank"`
	TotalVolume              *float64 `json:"total_volume"`
	High24h                  *float64 `json:"high_24h"`
	Low24h                   *float64 `json:"low_24h"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	LastUpdated              string   `json:"last_updated"`
}

// categoryData is the upstream coins/categories/list entry
type categoryData struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
}

// categoryDetailData is the upstream coins/categories/{id} payload
type categoryDetailData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// coinDetailData is the upstream coins/{id} payload with nested market data
type coinDetailData struct {
	ID            string            `json:"id"`
	Symbol        string            `json:"symbol"`
	Name          string            `json:"name"`
	MarketCapRank *int              `json:"market_cap_rank"`
	Description   map[string]string `json:"description"`
	Categories    []string          `json:"categories"`
	Links         struct {
		Homepage         []string `json:"homepage"`
		BlockchainSite   []string `json:"blockchain_site"`
		OfficialForumURL []string `json:"official_forum_url"`
	} `json:"links"`
	MarketData *struct {
		CurrentPrice             map[string]float64 `json:"current_price"`
		MarketCap                map[string]float64 `json:"market_cap"`
		PriceChange24h           *float64           `json:"price_change_24h"`
		PriceChangePercentage24h *float64           `json:"price_change_percentage_24h"`
	} `json:"market_data"`
}

// reshapeMarketData reduces an upstream market entry to the exposed Coin fields
func reshapeMarketData(data marketData) Coin {
	return Coin{
		ID:                       data.ID,
		Symbol:                   data.Symbol,
		Name:                     data.Name,
		CurrentPrice:             data.CurrentPrice,
		MarketCap:                data.MarketCap,
		MarketCapRank:            data.MarketCapRank,
		PriceChange24h:           data.PriceChange24h,
		PriceChangePercentage24h: data.PriceChangePercentage24h,
	}
}

// reshapeCategoryData maps an upstream category entry to the local shape
func reshapeCategoryData(data categoryData) Category {
	return Category{
		ID:   data.CategoryID,
		Name: data.Name,
	}
}

// reshapeCoinDetail flattens the nested market_data fields into the Coin
// shape using the given quote currency. Link sequences the provider
// omits default to empty slices.
func reshapeCoinDetail(data coinDetailData, currency string) *CoinDetail {
	detail := &CoinDetail{
		Coin: Coin{
			ID:            data.ID,
			Symbol:        data.Symbol,
			Name:          data.Name,
			MarketCapRank: data.MarketCapRank,
		},
		Description: data.Description,
		Categories:  data.Categories,
		Links: CoinLinks{
			Homepage:         emptyIfNil(data.Links.Homepage),
			BlockchainSite:   emptyIfNil(data.Links.BlockchainSite),
			OfficialForumURL: emptyIfNil(data.Links.OfficialForumURL),
		},
	}

	if md := data.MarketData; md != nil {
		if price, ok := md.CurrentPrice[currency]; ok {
			detail.CurrentPrice = &price
		}
		if marketCap, ok := md.MarketCap[currency]; ok {
			detail.MarketCap = &marketCap
		}
		detail.PriceChange24h = md.PriceChange24h
		detail.PriceChangePercentage24h = md.PriceChangePercentage24h
	}

	return detail
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// decodeCategoryList parses the upstream category list leniently:
// a payload that is not a JSON array yields an empty list, and entries
// that are not well-formed objects are skipped.
func decodeCategoryList(body []byte) []Category {
	var rawEntries []json.RawMessage
	if err := json.Unmarshal(body, &rawEntries); err != nil {
		return []Category{}
	}

	categories := make([]Category, 0, len(rawEntries))
	for _, raw := range rawEntries {
		var entry categoryData
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}
		categories = append(categories, reshapeCategoryData(entry))
	}

	return categories
}
