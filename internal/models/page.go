package models

// Pagination carries normalized page/size query parameters. Page is 0-based.
type Pagination struct {
	Page int
	Size int
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps page and size to usable values
func (p Pagination) Normalize() Pagination {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size < 1 || p.Size > MaxPageSize {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns the row offset for the page
func (p Pagination) Offset() int {
	return p.Page * p.Size
}

// Page is one page of results plus pagination metadata
type Page[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
}

// NewPage builds a page envelope around content. Content must never be nil
// so an empty page serializes as [] rather than null.
func NewPage[T any](content []T, p Pagination, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := int(total) / p.Size
	if int(total)%p.Size != 0 {
		totalPages++
	}
	return Page[T]{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
