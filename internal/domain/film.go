package domain

// Film is the view model served by the search backend. The frontend never
// mutates it; a similarity distance is attached per search result.
type Film struct {
	ID       int                    `json:"id"`
	Title    string                 `json:"title"`
	Year     int                    `json:"year,omitempty"`
	Genres   []string               `json:"genres,omitempty"`
	Cast     []string               `json:"cast,omitempty"`
	Synopsis string                 `json:"synopsis,omitempty"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
}

// Recommendation pairs a film with its similarity distance. Zero means
// identical; the displayed similarity is 1 - distance.
type Recommendation struct {
	Film     Film    `json:"film"`
	Distance float64 `json:"distance"`
}

func (r Recommendation) Similarity() float64 {
	return 1 - r.Distance
}

// RecommendationResponse is the envelope shared by the free-text search and
// the by-film recommendation endpoints.
type RecommendationResponse struct {
	QueryFilmID     *int             `json:"query_film_id,omitempty"`
	QueryText       string           `json:"query_text,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
}
