package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

// Pagination is recomputed per request and never persisted.
type Pagination struct {
	CurrentPage     int   `json:"currentPage" example:"1"`
	PageSize        int   `json:"pageSize" example:"12"`
	TotalItems      int64 `json:"totalItems" example:"42"`
	TotalPages      int   `json:"totalPages" example:"4"`
	HasNextPage     bool  `json:"hasNextPage" example:"true"`
	HasPreviousPage bool  `json:"hasPreviousPage" example:"false"`
}

// NewPagination derives the pagination block shared by every listing path.
func NewPagination(currentPage, pageSize int, totalCount int64) Pagination {
	totalPages := 0
	if pageSize > 0 && totalCount > 0 {
		size := int64(pageSize)
		totalPages = int((totalCount + size - 1) / size)
	}
	return Pagination{
		CurrentPage:     currentPage,
		PageSize:        pageSize,
		TotalItems:      totalCount,
		TotalPages:      totalPages,
		HasNextPage:     currentPage < totalPages,
		HasPreviousPage: currentPage > 1,
	}
}

type ListResponse struct {
	Data       any               `json:"data"`
	Pagination Pagination        `json:"pagination"`
	Facets     FacetDistribution `json:"facets,omitempty"`
	Rate       *RateLimiter      `json:"rate_limit,omitempty"`
}

type DataResponse struct {
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data"`
	Rate    *RateLimiter `json:"rate_limit,omitempty"`
}

type ErrorBody struct {
	Error  string       `json:"error"`
	Issues []FieldIssue `json:"issues,omitempty"`
	Rate   *RateLimiter `json:"rate_limit,omitempty"`
}

// FieldIssue describes one failing field of a payload.
type FieldIssue struct {
	Field   string `json:"field" example:"price"`
	Message string `json:"message" example:"must be greater than 0"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// RateLimiterContextKey is where the rate limiter middleware stores its state.
const RateLimiterContextKey = "rateLimiter"

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get(RateLimiterContextKey); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) DataResponse {
	return DataResponse{
		Message: message,
		Data:    data,
		Rate:    getRateFromContext(c),
	}
}

func PaginatedResponse(c *gin.Context, data any, meta Pagination) ListResponse {
	return ListResponse{
		Data:       data,
		Pagination: meta,
		Rate:       getRateFromContext(c),
	}
}

// FacetedResponse is a listing page with the live facet counts of the
// search path.
func FacetedResponse(c *gin.Context, data any, meta Pagination, facets FacetDistribution) ListResponse {
	resp := PaginatedResponse(c, data, meta)
	resp.Facets = facets
	return resp
}

func ErrorResponse(c *gin.Context, message string) ErrorBody {
	return ErrorBody{
		Error: message,
		Rate:  getRateFromContext(c),
	}
}

func ValidationErrorResponse(c *gin.Context, message string, issues []FieldIssue) ErrorBody {
	return ErrorBody{
		Error:  message,
		Issues: issues,
		Rate:   getRateFromContext(c),
	}
}
