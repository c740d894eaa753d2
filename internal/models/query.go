package models

// SearchQuery represents a search request with optional filters.
// An empty Query is allowed; the engine treats it as "no usable signal"
// rather than an error.
type SearchQuery struct {
	Query          string  `json:"query"`
	MaxResults     int     `json:"max_results,omitempty"`
	Threshold      float64 `json:"threshold,omitempty"`
	CategoryFilter string  `json:"category_filter,omitempty"`
	SourceFilter   string  `json:"source_filter,omitempty"`
}

// Normalize fills defaults and caps limits in place.
func (q *SearchQuery) Normalize() {
	if q.MaxResults <= 0 {
		q.MaxResults = 5
	}
	if q.MaxResults > 50 {
		q.MaxResults = 50
	}
	if q.Threshold <= 0 {
		q.Threshold = 1.0
	}
}

// IdeaQuery is the input for the multi-strategy discovery flow: a free-text
// startup idea plus result sizing.
type IdeaQuery struct {
	Idea       string `json:"idea"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Normalize fills defaults in place.
func (q *IdeaQuery) Normalize() {
	if q.MaxResults <= 0 {
		q.MaxResults = 5
	}
	if q.MaxResults > 20 {
		q.MaxResults = 20
	}
}
