package domain

import (
	"fmt"
	"net/url"
)

// StreamingPlatform is a provider the film is available on.
type StreamingPlatform struct {
	Name       string `json:"name"`
	LogoURL    string `json:"logo_url,omitempty"`
	ProviderID int    `json:"provider_id,omitempty"`
}

// FilmMetadata is the lazily fetched artwork enrichment for a film. Every
// field may be absent; absence falls back to a generated placeholder.
type FilmMetadata struct {
	PosterURL          string              `json:"poster_url,omitempty"`
	BackdropURL        string              `json:"backdrop_url,omitempty"`
	TrailerURL         string              `json:"trailer_url,omitempty"`
	TrailerYouTubeID   string              `json:"trailer_youtube_id,omitempty"`
	StreamingPlatforms []StreamingPlatform `json:"streaming_platforms,omitempty"`
	TMDBID             int                 `json:"tmdb_id,omitempty"`
}

// PosterResult is the envelope of the by-title poster fallback endpoint.
type PosterResult struct {
	PosterURL string `json:"poster_url"`
}

// PlaceholderPosterURL builds the generated fallback artwork carrying the
// film title.
func PlaceholderPosterURL(title string) string {
	return fmt.Sprintf("https://via.placeholder.com/300x450/6366f1/ffffff?text=%s", url.PathEscape(title))
}
