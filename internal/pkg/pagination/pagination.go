package pagination

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params is a validated page request.
type Params struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is the pagination block returned next to list data.
type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewMeta derives page counts from the total row count.
func NewMeta(p Params, total int) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = (total + p.Limit - 1) / p.Limit
	}
	return Meta{
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     p.Page < totalPages,
		HasPreviousPage: p.Page > 1,
	}
}
