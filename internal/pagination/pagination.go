// Package pagination computes page windows and navigation links for list endpoints
package pagination

import (
	"fmt"
	"strconv"

	"github.com/bizreview/backend/internal/models"
)

// DefaultPageSize is the number of items returned per page
const DefaultPageSize = 10

// Page describes the window of a list that should be returned
type Page struct {
	Number   int
	Size     int
	Offset   int
	LastPage int
	Links    models.Links
}

// Paginate computes the page window for totalCount items.
//
// Page numbers below 1 are clamped to 1. There is no upper clamp on the reported
// page: a page past the last one keeps its number but its offset is pinned just
// past the final row, so it selects no rows and cannot overflow.
// Links are rendered as "<basePath>?page=N".
func Paginate(totalCount, page, pageSize int, basePath string) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if totalCount < 0 {
		totalCount = 0
	}

	lastPage := (totalCount + pageSize - 1) / pageSize

	offset := lastPage * pageSize
	if page <= lastPage {
		offset = (page - 1) * pageSize
	}

	p := Page{
		Number:   page,
		Size:     pageSize,
		Offset:   offset,
		LastPage: lastPage,
	}

	if page < lastPage {
		p.Links.NextPage = link(basePath, page+1)
		p.Links.LastPage = link(basePath, lastPage)
	}
	if page > 1 {
		p.Links.PrevPage = link(basePath, page-1)
		p.Links.FirstPage = link(basePath, 1)
	}

	return p
}

// ParsePage reads a page number from a query string value, falling back to 1
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func link(basePath string, page int) string {
	return fmt.Sprintf("%s?page=%d", basePath, page)
}
