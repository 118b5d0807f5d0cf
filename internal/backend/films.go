package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/orchids/cinesearch/internal/domain"
)

// SearchParams are the query parameters of the ranked film search. Zero
// values for the optional filters mean "not set" and are omitted from the
// request, matching the backend contract.
type SearchParams struct {
	Query   string
	K       int
	MinYear int
	MaxYear int
	Genres  string
}

func (p SearchParams) values() url.Values {
	query := url.Values{}
	query.Set("q", p.Query)
	query.Set("k", strconv.Itoa(p.K))
	if p.MinYear > 0 {
		query.Set("min_year", strconv.Itoa(p.MinYear))
	}
	if p.MaxYear > 0 {
		query.Set("max_year", strconv.Itoa(p.MaxYear))
	}
	if p.Genres != "" {
		query.Set("genres", p.Genres)
	}
	return query
}

// Search runs the ranked semantic search. Credentialed so the backend can
// record the caller's search history.
func (c *Client) Search(ctx context.Context, cookies []*http.Cookie, params SearchParams) (*domain.RecommendationResponse, error) {
	var result domain.RecommendationResponse
	if err := c.do(ctx, http.MethodGet, "/search", params.values(), cookies, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Film fetches full detail for one film.
func (c *Client) Film(ctx context.Context, id int) (*domain.Film, error) {
	var film domain.Film
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/films/%d", id), nil, nil, nil, &film); err != nil {
		return nil, err
	}
	return &film, nil
}

// RecommendByFilm fetches the k films most similar to the given one.
func (c *Client) RecommendByFilm(ctx context.Context, id, k int) (*domain.RecommendationResponse, error) {
	query := url.Values{}
	query.Set("k", strconv.Itoa(k))

	var result domain.RecommendationResponse
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/recommend/by-film/%d", id), query, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// FilmMetadata fetches artwork, trailer and streaming enrichment by film id.
func (c *Client) FilmMetadata(ctx context.Context, id int) (*domain.FilmMetadata, error) {
	var metadata domain.FilmMetadata
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/film/%d/metadata", id), nil, nil, nil, &metadata); err != nil {
		return nil, err
	}
	return &metadata, nil
}

// PosterByTitle is the fallback poster lookup when the by-id metadata yields
// nothing.
func (c *Client) PosterByTitle(ctx context.Context, title string, year int) (*domain.PosterResult, error) {
	query := url.Values{}
	if year > 0 {
		query.Set("year", strconv.Itoa(year))
	}

	var result domain.PosterResult
	if err := c.do(ctx, http.MethodGet, "/api/poster/"+url.PathEscape(title), query, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Stats fetches the public catalog aggregate for the search page.
func (c *Client) Stats(ctx context.Context) (*domain.CatalogStats, error) {
	var stats domain.CatalogStats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// SearchHistory fetches the caller's own recorded searches.
func (c *Client) SearchHistory(ctx context.Context, cookies []*http.Cookie) ([]domain.SearchHistoryEntry, error) {
	var list domain.SearchHistoryList
	if err := c.do(ctx, http.MethodGet, "/api/search-history", nil, cookies, nil, &list); err != nil {
		return nil, err
	}
	return list.History, nil
}
