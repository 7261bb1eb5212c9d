package utils

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// Gap markers inside a page window. Two distinct sentinels so a renderer can
// tell the leading gap from the trailing one when both are present.
const (
	PageGapBefore = -1
	PageGapAfter  = -2
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageWindow returns the page indices to render for a pager with `total`
// pages, centered on `current`, with `visible` indices between the fixed
// first and last pages. When everything fits no gaps are emitted.
func PageWindow(current, total, visible int) []int {
	if total <= 0 {
		return []int{}
	}
	if total <= visible+2 {
		pages := make([]int, total)
		for i := range pages {
			pages[i] = i
		}
		return pages
	}

	pages := []int{0}

	windowStart := current - visible/2
	if windowStart < 1 {
		windowStart = 1
	} else if windowStart > total-visible-1 {
		windowStart = total - visible - 1
		if windowStart < 1 {
			windowStart = 1
		}
	}

	if windowStart > 1 {
		pages = append(pages, PageGapBefore)
	}

	for i := 0; i < visible; i++ {
		pageNum := windowStart + i
		if pageNum > 0 && pageNum < total-1 {
			pages = append(pages, pageNum)
		}
	}

	if windowStart+visible < total-1 {
		pages = append(pages, PageGapAfter)
	}

	if total > 1 {
		pages = append(pages, total-1)
	}

	return pages
}

// TotalPages rounds the row count up to full pages.
func TotalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 0
	}
	return int((totalElements + int64(size) - 1) / int64(size))
}

// ValidPage reports whether a 0-based page index may be fetched. Requests
// outside the range must be rejected before any row query is issued.
func ValidPage(page, totalPages int) bool {
	if page < 0 {
		return false
	}
	if totalPages == 0 {
		return page == 0
	}
	return page < totalPages
}

type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Page is the list envelope the console consumes. Pages carries the
// precomputed window (with gap sentinels) for the pager widget.
type Page struct {
	Content       interface{} `json:"content"`
	Pageable      Pageable    `json:"pageable"`
	TotalPages    int         `json:"totalPages"`
	TotalElements int64       `json:"totalElements"`
	Pages         []int       `json:"pages"`
}

func NewPage(content interface{}, page, size int, totalElements int64) Page {
	totalPages := TotalPages(totalElements, size)
	return Page{
		Content:       content,
		Pageable:      Pageable{PageNumber: page, PageSize: size},
		TotalPages:    totalPages,
		TotalElements: totalElements,
		Pages:         PageWindow(page, totalPages, 3),
	}
}

// ParsePageRequest reads page/size query params with defaults and bounds.
func ParsePageRequest(ctx *fiber.Ctx) (page int, size int) {
	page, err := strconv.Atoi(ctx.Query("page", "0"))
	if err != nil || page < 0 {
		page = 0
	}
	size, err = strconv.Atoi(ctx.Query("size", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
