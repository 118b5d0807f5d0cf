package domain

// SearchFilters is the filter set recorded alongside a search.
type SearchFilters struct {
	Genres  []string `json:"genres,omitempty"`
	MinYear int      `json:"min_year,omitempty"`
	MaxYear int      `json:"max_year,omitempty"`
}

// SearchHistoryEntry is one recorded search. Username is only populated in
// the admin view; the caller's own history omits it.
type SearchHistoryEntry struct {
	ID           int           `json:"id"`
	Username     string        `json:"username,omitempty"`
	QueryText    string        `json:"query_text"`
	Filters      SearchFilters `json:"filters"`
	ResultsCount int           `json:"results_count"`
	CreatedAt    Timestamp     `json:"created_at"`
}

type SearchHistoryList struct {
	History []SearchHistoryEntry `json:"history"`
}
