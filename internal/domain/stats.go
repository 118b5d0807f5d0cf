package domain

// CatalogStats is the public aggregate from /stats, shown on the search page.
type CatalogStats struct {
	TotalFilms      int    `json:"total_films"`
	TotalEmbeddings int    `json:"total_embeddings"`
	MinYear         int    `json:"min_year,omitempty"`
	MaxYear         int    `json:"max_year,omitempty"`
	UniqueGenres    int    `json:"unique_genres"`
	IndexSize       string `json:"index_size,omitempty"`
}

// DashboardKPI is the aggregate counter block of the admin dashboard.
type DashboardKPI struct {
	TotalUsers     int `json:"total_users"`
	TotalAdmins    int `json:"total_admins"`
	ActiveSessions int `json:"active_sessions"`
	TotalSearches  int `json:"total_searches"`
	TotalWatched   int `json:"total_watched"`
	ActiveToday    int `json:"active_today"`
	SearchesToday  int `json:"searches_today"`
}

// DayCount is one point of a per-day time series.
type DayCount struct {
	Date  Timestamp `json:"date"`
	Count int       `json:"count"`
}

// Dashboard is recomputed wholesale by the backend on every load; the
// frontend never updates it incrementally.
type Dashboard struct {
	KPI           DashboardKPI `json:"kpi"`
	UsersByDay    []DayCount   `json:"users_by_day"`
	SearchesByDay []DayCount   `json:"searches_by_day"`
}
