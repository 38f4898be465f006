package api

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/cryptomarket/market-api/coingecko"
	"github.com/cryptomarket/market-api/pagination"
)

// sendJSONResponse is a common wrapper for JSON responses that sets
// Content-Type, Content-Length and ETag headers
func (s *Server) sendJSONResponse(w http.ResponseWriter, data interface{}) {
	responseBytes, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Error encoding response", http.StatusInternalServerError)
		return
	}

	// ETag is the MD5 hash of the response
	hash := md5.Sum(responseBytes)
	etag := hex.EncodeToString(hash[:])

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(responseBytes)))
	w.Header().Set("ETag", "\""+etag+"\"")

	if _, err := w.Write(responseBytes); err != nil {
		log.Printf("Error writing response: %v", err)
		return
	}
}

// writeError is the single boundary translating gateway errors into HTTP
// responses. Anything that is not a typed gateway error becomes a 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	if gatewayErr, ok := coingecko.AsError(err); ok {
		switch gatewayErr.Kind {
		case coingecko.KindRateLimited:
			status = http.StatusTooManyRequests
		case coingecko.KindUpstream:
			status = gatewayErr.StatusCode
		case coingecko.KindUnavailable:
			status = http.StatusServiceUnavailable
		case coingecko.KindNotFound:
			status = http.StatusNotFound
		case coingecko.KindInternal:
			status = http.StatusInternalServerError
		}
	}

	log.Printf("Server: Request failed with status %d: %v", status, err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{Detail: err.Error()}); encodeErr != nil {
		log.Printf("Error writing error response: %v", encodeErr)
	}
}

// parsePagination reads and normalizes page and per_page query parameters.
// Unparseable values fall back to the defaults; the result is always valid.
func parsePagination(r *http.Request) (int, int) {
	page := pagination.DefaultPage
	if pageParam := r.URL.Query().Get("page"); pageParam != "" {
		if parsed, err := strconv.Atoi(pageParam); err == nil {
			page = parsed
		}
	}

	perPage := pagination.DefaultPerPage
	if perPageParam := r.URL.Query().Get("per_page"); perPageParam != "" {
		if parsed, err := strconv.Atoi(perPageParam); err == nil {
			perPage = parsed
		}
	}

	return pagination.Normalize(page, perPage, pagination.MaxPerPage)
}

// synthesizeTotal approximates a total count from page-fullness: a
// non-empty page means at least one more page's worth may exist.
func synthesizeTotal(page, perPage, count int) int {
	if count > 0 {
		return page*perPage + perPage
	}
	return page * perPage
}
