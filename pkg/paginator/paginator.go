// Package paginator implements offset-based pagination with a total count.
package paginator

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

var (
	ErrInvalidPage  = errors.New("page must be a positive integer")
	ErrInvalidLimit = errors.New("limit must be a positive integer")

	// ErrNoResult is returned by a CountFunc whose count query produced no row.
	ErrNoResult = errors.New("paginator: count yielded no result")
)

// PageRequest is the requested window.
type PageRequest struct {
	Page  int
	Limit int
}

// PageResult is advisory metadata echoed next to the page rows.
type PageResult struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"totalCount"`
}

// CountFunc counts the rows matched by the same predicates as the page query.
type CountFunc func() (int64, error)

// NewPageRequest applies defaults to zero values and clamps limit to MaxLimit.
func NewPageRequest(page, limit int) PageRequest {
	if page == 0 {
		page = DefaultPage
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return PageRequest{Page: page, Limit: limit}
}

// ParsePageRequest parses raw query values. Absent or non-numeric values
// fall back to the defaults, numeric values below 1 are rejected, and so is
// a page whose offset does not fit in an int.
func ParsePageRequest(rawPage, rawLimit string) (PageRequest, error) {
	var errs []error

	page, ok := parseInt(rawPage)
	if !ok {
		page = DefaultPage
	} else if page < 1 {
		errs = append(errs, ErrInvalidPage)
	}

	limit, ok := parseInt(rawLimit)
	if !ok {
		limit = DefaultLimit
	} else if limit < 1 {
		errs = append(errs, ErrInvalidLimit)
	}

	if len(errs) > 0 {
		return PageRequest{}, errors.Join(errs...)
	}

	req := NewPageRequest(page, limit)
	if req.Page-1 > math.MaxInt/req.Limit {
		return PageRequest{}, ErrInvalidPage
	}
	return req, nil
}

// Offset is the number of rows to skip.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}

// Paginate calls count once and builds the page metadata. A count that
// yields no row resolves to zero.
func Paginate(req PageRequest, count CountFunc) (PageResult, error) {
	total, err := count()
	if err != nil {
		if !errors.Is(err, ErrNoResult) {
			return PageResult{}, err
		}
		total = 0
	}

	return PageResult{
		Page:       req.Page,
		Limit:      req.Limit,
		TotalCount: total,
	}, nil
}

func parseInt(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
