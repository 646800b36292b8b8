package common

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// Pagination describes one page of a larger result set
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	PageSize    int   `json:"pageSize"`
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
}

// NewPagination computes pagination metadata for a page of results
func NewPagination(page, size int, total int64) *Pagination {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &Pagination{
		CurrentPage: page,
		PageSize:    size,
		TotalCount:  total,
		TotalPages:  totalPages,
	}
}

// AddPaginationHeader writes pagination metadata to response headers
func AddPaginationHeader(c *gin.Context, p *Pagination) {
	c.Header("Pagination-CurrentPage", strconv.Itoa(p.CurrentPage))
	c.Header("Pagination-PageSize", strconv.Itoa(p.PageSize))
	c.Header("Pagination-TotalCount", strconv.FormatInt(p.TotalCount, 10))
	c.Header("Pagination-TotalPages", strconv.Itoa(p.TotalPages))
	c.Header("Access-Control-Expose-Headers",
		"Pagination-CurrentPage, Pagination-PageSize, Pagination-TotalCount, Pagination-TotalPages")
}

// PageParams holds pageNumber/pageSize query parameters
type PageParams struct {
	PageNumber int
	PageSize   int
}

// Normalize clamps page parameters to valid ranges
func (p *PageParams) Normalize() {
	if p.PageNumber < 1 {
		p.PageNumber = 1
	}
	if p.PageSize < 1 || p.PageSize > maxPageSize {
		p.PageSize = defaultPageSize
	}
}

// ParsePageParams reads pageNumber/pageSize from the query string
func ParsePageParams(c *gin.Context) PageParams {
	params := PageParams{PageNumber: 1, PageSize: defaultPageSize}
	if v, err := strconv.Atoi(c.Query("pageNumber")); err == nil {
		params.PageNumber = v
	}
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil {
		params.PageSize = v
	}
	params.Normalize()
	return params
}
