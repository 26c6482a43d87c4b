package models

import (
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/Temutjin2k/ubar/pkg/validator"
)

var ErrEmptySafelist = errors.New("sort safelist must not be empty")

// Filters carries client pagination and sorting of a list endpoint.
type Filters struct {
	Page         int
	PageSize     int
	Sort         string
	SortSafelist []string
}

func NewFilters(page, pageSize int, sort string, sortSafelist []string) (Filters, error) {
	if len(sortSafelist) == 0 {
		return Filters{}, ErrEmptySafelist
	}
	if sort == "" {
		sort = sortSafelist[0]
	}
	return Filters{
		Page:         page,
		PageSize:     pageSize,
		Sort:         sort,
		SortSafelist: sortSafelist,
	}, nil
}

func (f Filters) Validate(v *validator.Validator) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 1000, "page", "must be a maximum of 1000")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= 50, "page_size", "must be a maximum of 50")
	v.Check(validator.PermittedValue(f.Sort, f.SortSafelist...), "sort", "invalid sort value")
}

// SortKey is the safelisted sort key without its direction prefix.
func (f Filters) SortKey() string {
	if slices.Contains(f.SortSafelist, f.Sort) {
		return strings.TrimPrefix(f.Sort, "-")
	}
	return strings.TrimPrefix(f.SortSafelist[0], "-")
}

func (f Filters) Descending() bool {
	return strings.HasPrefix(f.Sort, "-")
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Window returns the [start, end) slice bounds of the current page over total items.
func (f Filters) Window(total int) (int, int) {
	start := min(f.Offset(), total)
	end := min(start+f.Limit(), total)
	return start, end
}

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	PageSize     int `json:"page_size"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	TotalRecords int `json:"total_records"`
}

// CalculateMetadata returns an empty page range when there are no records.
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{CurrentPage: page, PageSize: pageSize}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}
