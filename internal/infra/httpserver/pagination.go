package httpserver

import (
	"net/http"
	"strconv"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type PaginationParams struct {
	Page  int
	Limit int
}

type PaginatedResponse struct {
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func DefaultPaginationParams() PaginationParams {
	return PaginationParams{Page: defaultPage, Limit: defaultLimit}
}

// ExtractPaginationParams reads page and limit from the query string, falling
// back to defaults on absent, malformed, or out-of-range values.
func ExtractPaginationParams(r *http.Request) PaginationParams {
	params := DefaultPaginationParams()

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			params.Page = page
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 && limit <= maxLimit {
			params.Limit = limit
		}
	}

	return params
}

func ReplyWithPaginatedData(w http.ResponseWriter, statusCode int, data any, total int, params PaginationParams) {
	totalPages := total / params.Limit
	if total%params.Limit > 0 {
		totalPages++
	}

	ReplyJSONResponse(w, statusCode, PaginatedResponse{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
	})
}
