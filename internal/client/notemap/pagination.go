package notemap

import (
	"net/url"
	"strconv"
)

type ListParams struct {
	Limit  int
	Cursor string
}

func (p *ListParams) values() url.Values {
	v := make(url.Values)
	if p == nil {
		return v
	}

	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Cursor != "" {
		v.Set("cursor", p.Cursor)
	}

	return v
}

type Page[T any] struct {
	Records    []T     `json:"records"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func (p *Page[T]) HasMore() bool {
	return p.NextCursor != nil && *p.NextCursor != ""
}

// Next returns params for the following page, or nil when there is none.
func (p *Page[T]) Next(limit int) *ListParams {
	if !p.HasMore() {
		return nil
	}
	return &ListParams{Limit: limit, Cursor: *p.NextCursor}
}
