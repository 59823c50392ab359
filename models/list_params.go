package models

import (
	"net/url"
	"strconv"
	"strings"
)

// ListParams mirrors the query args of the venue and event list endpoints.
// Zero values are omitted.
type ListParams struct {
	City     string
	Limit    int
	Genre    string
	Category string
	Tags     []string
	Page     int
}

func (p ListParams) ToValues() url.Values {
	q := url.Values{}

	if p.City != "" {
		q.Set("city", p.City)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Genre != "" {
		q.Set("genre", p.Genre)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if len(p.Tags) > 0 {
		q.Set("tags", strings.Join(p.Tags, ","))
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}

	return q
}
