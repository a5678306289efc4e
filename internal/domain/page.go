package domain

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest is a 1-based page window for list operations.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest applies defaults to the optional page and limit values and
// rejects values out of range.
func NewPageRequest(page, limit *int) (PageRequest, error) {
	p := PageRequest{Page: 1, Limit: DefaultPageLimit}
	fields := map[string]string{}
	if page != nil {
		if *page < 1 {
			fields["page"] = "must be at least 1"
		}
		p.Page = *page
	}
	if limit != nil {
		if *limit < 1 || *limit > MaxPageLimit {
			fields["limit"] = "must be between 1 and 100"
		}
		p.Limit = *limit
	}
	if len(fields) > 0 {
		return PageRequest{}, ValidationError("invalid pagination", fields)
	}
	return p, nil
}

func (p PageRequest) Offset() int { return (p.Page - 1) * p.Limit }

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// Page is one window of a list result.
type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewPage[T any](items []T, req PageRequest, total int) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Limit > 0 {
		pages = (total + req.Limit - 1) / req.Limit
	}
	return Page[T]{
		Data:       items,
		Pagination: Pagination{Page: req.Page, Limit: req.Limit, Total: total, TotalPages: pages},
	}
}
