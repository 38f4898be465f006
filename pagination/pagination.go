package pagination

const (
	// DefaultPage is the page used when the caller sends none or a non-positive one
	DefaultPage = 1
	// DefaultPerPage is the fallback page size when per_page is below 1
	DefaultPerPage = 10
	// MaxPerPage caps the page size accepted from callers
	MaxPerPage = 100
)

// Normalize validates and normalizes pagination parameters.
// Non-positive pages clamp to 1; per_page below 1 falls back to the
// default of 10 rather than clamping; per_page is capped at maxPerPage.
// It never fails and always returns a usable pair.
func Normalize(page, perPage, maxPerPage int) (int, int) {
	if page < DefaultPage {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// Paginate returns the window of items for an already-normalized
// (page, perPage) pair along with the true total length of the sequence.
// A start index past the end of the sequence yields an empty window.
func Paginate[T any](items []T, page, perPage int) ([]T, int) {
	total := len(items)

	start := (page - 1) * perPage
	if start >= total {
		return []T{}, total
	}

	end := start + perPage
	if end > total {
		end = total
	}

	return items[start:end], total
}
