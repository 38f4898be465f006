package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

// handleListCategories lists all coin categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.marketData.ListCategories()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.sendJSONResponse(w, CategoryListResponse{Categories: categories})
}

// handleCategoryCoins lists the coins of one category with pagination.
// An unknown category yields an empty listing named after the raw id.
func (s *Server) handleCategoryCoins(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["category_id"]
	page, perPage := parsePagination(r)

	result, err := s.marketData.ListCoinsByCategory(categoryID, page, perPage)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.sendJSONResponse(w, CategoryCoinsResponse{
		Category: result.Category,
		Page:     page,
		PerPage:  perPage,
		Total:    synthesizeTotal(page, perPage, len(result.Coins)),
		Coins:    result.Coins,
	})
}
