package models

// Pagination bounds for every list and feed.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is a limit/offset window over an ordered list.
type Page struct {
	Limit  int
	Offset int
}

// NewPage clamps limit to (0, MaxPageLimit] and offset to >= 0.
// A non-positive limit falls back to DefaultPageLimit.
func NewPage(limit, offset int) Page {
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return Page{Limit: limit, Offset: offset}
}

// Normalized returns p with NewPage's bounds applied.
func (p Page) Normalized() Page {
	return NewPage(p.Limit, p.Offset)
}
