package utils

import "math"

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
	TotalPages int   `json:"totalPages"`
}

// GetPaginationParams normalizes page and limit. Page numbering starts
// at 1; a limit of 0 means everything.
func GetPaginationParams(page, limit int) PaginationParams {
	if page < 1 {
		page = 1
	}
	if limit < 0 {
		limit = 0
	}
	return PaginationParams{Page: page, Limit: limit}
}

// CalculateOffset returns the SQL offset
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata for a list response
func CalculateMeta(totalCount int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		// Unpaginated: the whole result set is one page.
		return PaginationMeta{
			Page:       1,
			Limit:      int(totalCount),
			TotalCount: totalCount,
			TotalPages: 1,
		}
	}

	totalPages := int(math.Ceil(float64(totalCount) / float64(limit)))
	if totalPages < 0 {
		totalPages = 0
	}
	if page < 1 {
		page = 1
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages,
	}
}
