package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		size       int
		total      int64
		totalPages int
	}{
		{"exact fit", 1, 10, 30, 3},
		{"partial last page", 3, 10, 25, 3},
		{"single page", 1, 10, 7, 1},
		{"empty", 1, 10, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.size, tc.total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.page, p.CurrentPage)
			assert.Equal(t, tc.total, p.TotalCount)
		})
	}
}

func TestPageParamsNormalize(t *testing.T) {
	p := PageParams{PageNumber: 0, PageSize: 0}
	p.Normalize()
	assert.Equal(t, 1, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)

	p = PageParams{PageNumber: 2, PageSize: 500}
	p.Normalize()
	assert.Equal(t, 2, p.PageNumber)
	assert.Equal(t, 10, p.PageSize)

	p = PageParams{PageNumber: 4, PageSize: 25}
	p.Normalize()
	assert.Equal(t, 4, p.PageNumber)
	assert.Equal(t, 25, p.PageSize)
}
