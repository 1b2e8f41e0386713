package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillswap/skillswap-api/internal/core/domain"
	"github.com/skillswap/skillswap-api/internal/core/ports"
)

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func toPaginationResponse(p ports.Pagination) paginationResponse {
	return paginationResponse{Total: p.Total, Page: p.Page, Limit: p.Limit, TotalPages: p.TotalPages}
}

// queryPage reads ?page and ?limit. Both are optional; limit absent means
// the whole collection.
func queryPage(c echo.Context) (ports.Page, error) {
	var p ports.Page
	var err error
	if p.Page, err = queryInt(c, "page"); err != nil {
		return p, err
	}
	if p.Limit, err = queryInt(c, "limit"); err != nil {
		return p, err
	}
	return p, nil
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(name, name+" must be a non-negative integer")
	}
	return n, nil
}

// queryBool reads an optional boolean filter such as ?is_offering=true.
func queryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.NewValidationError(name, name+" must be a boolean")
	}
	return &b, nil
}
