package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// handleListCoins lists coins with pagination. The total in the envelope
// is synthesized from page-fullness because the provider reports no
// count for this endpoint shape.
func (s *Server) handleListCoins(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePagination(r)

	coins, err := s.marketData.ListCoins(page, perPage)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.sendJSONResponse(w, CoinListResponse{
		Page:    page,
		PerPage: perPage,
		Total:   synthesizeTotal(page, perPage, len(coins)),
		Items:   coins,
	})
}

// handleGetCoin returns detailed information about a specific coin
func (s *Server) handleGetCoin(w http.ResponseWriter, r *http.Request) {
	coinID := mux.Vars(r)["coin_id"]

	detail, err := s.marketData.GetCoin(coinID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.sendJSONResponse(w, detail)
}
