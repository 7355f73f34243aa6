package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	type TestCase struct {
		Name      string
		Filter    Filter
		Paginated bool
		Offset    int
	}

	testCases := []TestCase{
		{Name: "Nothing supplied", Filter: Filter{}, Paginated: false},
		{Name: "Page without limit", Filter: Filter{Page: 3}, Paginated: false},
		{Name: "Limit without page", Filter: Filter{Limit: 2}, Paginated: true, Offset: 0},
		{Name: "First page", Filter: Filter{Limit: 2, Page: 1}, Paginated: true, Offset: 0},
		{Name: "Second page", Filter: Filter{Limit: 2, Page: 2}, Paginated: true, Offset: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Paginated, tc.Filter.Paginated())
			if tc.Paginated {
				assert.Equal(t, tc.Offset, tc.Filter.Offset())
			}
		})
	}
}
