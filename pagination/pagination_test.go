package pagination

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		page            int
		perPage         int
		maxPerPage      int
		expectedPage    int
		expectedPerPage int
	}{
		{
			name:            "valid parameters pass through",
			page:            3,
			perPage:         25,
			maxPerPage:      100,
			expectedPage:    3,
			expectedPerPage: 25,
		},
		{
			name:            "zero page clamps to 1",
			page:            0,
			perPage:         10,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "negative page clamps to 1",
			page:            -5,
			perPage:         10,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "zero per_page falls back to default 10",
			page:            1,
			perPage:         0,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "negative per_page falls back to default 10 not 1",
			page:            1,
			perPage:         -1,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 10,
		},
		{
			name:            "per_page above max caps at max",
			page:            1,
			perPage:         500,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 100,
		},
		{
			name:            "per_page equal to max is kept",
			page:            1,
			perPage:         100,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 100,
		},
		{
			name:            "both parameters invalid",
			page:            -10,
			perPage:         -10,
			maxPerPage:      100,
			expectedPage:    1,
			expectedPerPage: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, perPage := Normalize(tt.page, tt.perPage, tt.maxPerPage)
			assert.Equal(t, tt.expectedPage, page)
			assert.Equal(t, tt.expectedPerPage, perPage)
		})
	}
}

func TestNormalize_NonPositivePagesAlwaysClampToOne(t *testing.T) {
	for page := -100; page <= 0; page += 7 {
		normalized, _ := Normalize(page, 10, MaxPerPage)
		assert.Equal(t, 1, normalized, "page %d should normalize to 1", page)
	}
}

func TestPaginate(t *testing.T) {
	items := make([]string, 25)
	for i := range items {
		items[i] = fmt.Sprintf("item-%d", i)
	}

	tests := []struct {
		name          string
		page          int
		perPage       int
		expectedItems []string
		expectedTotal int
	}{
		{
			name:          "first page",
			page:          1,
			perPage:       10,
			expectedItems: items[0:10],
			expectedTotal: 25,
		},
		{
			name:          "partial last page",
			page:          3,
			perPage:       10,
			expectedItems: items[20:25],
			expectedTotal: 25,
		},
		{
			name:          "page beyond sequence is empty",
			page:          4,
			perPage:       10,
			expectedItems: []string{},
			expectedTotal: 25,
		},
		{
			name:          "exact page boundary",
			page:          5,
			perPage:       5,
			expectedItems: items[20:25],
			expectedTotal: 25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window, total := Paginate(items, tt.page, tt.perPage)
			assert.Equal(t, tt.expectedItems, window)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	window, total := Paginate([]int{}, 1, 10)
	assert.Empty(t, window)
	assert.Equal(t, 0, total)
}
