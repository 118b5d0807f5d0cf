package view

import (
	"fmt"
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/orchids/cinesearch/internal/domain"
)

// FilmCard is the render model of one result card. It starts out pointing at
// the local poster route (which resolves artwork lazily) and may be upgraded
// to a direct artwork URL by the enricher before rendering.
type FilmCard struct {
	Film     domain.Film
	Distance *float64
	DetailK  int

	mu        sync.Mutex
	posterURL string
}

func NewFilmCard(film domain.Film, distance *float64, detailK int) *FilmCard {
	card := &FilmCard{
		Film:     film,
		Distance: distance,
		DetailK:  detailK,
	}
	card.posterURL = localPosterURL(film)
	return card
}

// CardsFromRecommendations builds one card per result, keeping the backend's
// ranking order. detailK is carried into the detail links so recursive
// navigation keeps the caller's result limit.
func CardsFromRecommendations(recs []domain.Recommendation, detailK int) []*FilmCard {
	cards := make([]*FilmCard, 0, len(recs))
	for _, rec := range recs {
		distance := rec.Distance
		cards = append(cards, NewFilmCard(rec.Film, &distance, detailK))
	}
	return cards
}

func (c *FilmCard) SetPoster(posterURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posterURL = posterURL
}

func (c *FilmCard) PosterURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.posterURL
}

// localPosterURL routes the browser through this service's enrichment
// redirect, so first paint never waits on artwork lookups.
func localPosterURL(film domain.Film) string {
	query := url.Values{}
	query.Set("title", film.Title)
	if film.Year > 0 {
		query.Set("year", strconv.Itoa(film.Year))
	}
	return fmt.Sprintf("/posters/%d?%s", film.ID, query.Encode())
}

// RenderFilmCard renders one clickable result card.
func RenderFilmCard(card *FilmCard) template.HTML {
	film := card.Film

	var b strings.Builder
	fmt.Fprintf(&b, `<a class="film-card" data-film-id="%d" href="/films/%d?k=%d">`, film.ID, film.ID, card.DetailK)
	b.WriteString(`<div class="film-poster-container">`)
	fmt.Fprintf(&b, `<img src="%s" alt="%s" class="film-poster" loading="lazy" onerror="this.onerror=null;this.src='%s';">`,
		Escape(card.PosterURL()), Escape(film.Title), Escape(domain.PlaceholderPosterURL(film.Title)))
	b.WriteString(`<div class="film-overlay">`)
	if film.Year > 0 {
		fmt.Fprintf(&b, `<div class="film-year-badge">%d</div>`, film.Year)
	}
	if card.Distance != nil {
		fmt.Fprintf(&b, `<div class="similarity-badge">%s</div>`, SimilarityPercent(*card.Distance))
	}
	b.WriteString(`</div></div>`)

	b.WriteString(`<div class="film-card-content">`)
	fmt.Fprintf(&b, `<h3 class="film-title">%s</h3>`, Escape(film.Title))
	if genres := renderGenreTags(film.Genres); genres != "" {
		fmt.Fprintf(&b, `<div class="film-genres">%s</div>`, genres)
	}
	if film.Synopsis != "" {
		fmt.Fprintf(&b, `<p class="film-synopsis">%s</p>`, Escape(Truncate(film.Synopsis, SynopsisLimit)))
	}
	if card.Distance != nil {
		fmt.Fprintf(&b, `<div class="film-distance">Similarité: <span class="distance-value">%s</span></div>`, SimilarityValue(*card.Distance))
	}
	b.WriteString(`</div></a>`)
	return template.HTML(b.String())
}

// RenderFilmGrid renders a grid of cards; an empty slice renders to nothing.
func RenderFilmGrid(cards []*FilmCard) template.HTML {
	var b strings.Builder
	for _, card := range cards {
		if card == nil {
			continue
		}
		b.WriteString(string(RenderFilmCard(card)))
	}
	return template.HTML(b.String())
}

func renderGenreTags(genres []string) string {
	if len(genres) == 0 {
		return ""
	}
	var b strings.Builder
	for _, genre := range genres {
		fmt.Fprintf(&b, `<span class="genre-tag">%s</span>`, Escape(genre))
	}
	return b.String()
}

// RenderStats renders the public catalog aggregate strip.
func RenderStats(stats *domain.CatalogStats) template.HTML {
	if stats == nil {
		return ""
	}

	var b strings.Builder
	writeStatItem(&b, strconv.Itoa(stats.TotalFilms), "Films")
	writeStatItem(&b, strconv.Itoa(stats.TotalEmbeddings), "Embeddings")
	writeStatItem(&b, yearOrNA(stats.MinYear), "Année min")
	writeStatItem(&b, yearOrNA(stats.MaxYear), "Année max")
	writeStatItem(&b, strconv.Itoa(stats.UniqueGenres), "Genres")
	return template.HTML(b.String())
}

func writeStatItem(b *strings.Builder, value, label string) {
	fmt.Fprintf(b, `<div class="stat-item"><span class="stat-value">%s</span><span class="stat-label">%s</span></div>`,
		Escape(value), Escape(label))
}

func yearOrNA(year int) string {
	if year <= 0 {
		return "N/A"
	}
	return strconv.Itoa(year)
}

// RenderFilmDetails renders the modal body of the detail page. metadata may
// be nil; every absent field falls back rather than failing.
func RenderFilmDetails(film *domain.Film, metadata *domain.FilmMetadata) template.HTML {
	if film == nil {
		return ""
	}
	if metadata == nil {
		metadata = &domain.FilmMetadata{}
	}

	posterURL := metadata.PosterURL
	if posterURL == "" {
		posterURL = domain.PlaceholderPosterURL(film.Title)
	}

	genres := "Non spécifié"
	if len(film.Genres) > 0 {
		genres = strings.Join(film.Genres, ", ")
	}
	cast := ""
	if len(film.Cast) > 0 {
		cast = strings.Join(film.Cast, ", ")
	}
	synopsis := film.Synopsis
	if synopsis == "" {
		synopsis = "Aucune description disponible"
	}

	var b strings.Builder
	b.WriteString(`<div class="film-details">`)
	b.WriteString(`<div class="film-details-header">`)
	fmt.Fprintf(&b, `<div class="film-details-poster"><img src="%s" alt="%s" class="film-details-poster-img"></div>`,
		Escape(posterURL), Escape(film.Title))
	b.WriteString(`<div class="film-details-info">`)
	fmt.Fprintf(&b, `<h2 class="film-details-title">%s</h2>`, Escape(film.Title))
	if film.Year > 0 {
		fmt.Fprintf(&b, `<div class="film-details-year">Année: %d</div>`, film.Year)
	}
	if metadata.TrailerURL != "" {
		b.WriteString(`<div class="film-details-trailer">`)
		fmt.Fprintf(&b, `<a href="%s" target="_blank" rel="noopener" class="trailer-btn">Voir la bande annonce</a>`,
			Escape(metadata.TrailerURL))
		if metadata.TrailerYouTubeID != "" {
			fmt.Fprintf(&b, `<div class="trailer-embed"><iframe width="560" height="315" src="https://www.youtube.com/embed/%s" frameborder="0" allowfullscreen></iframe></div>`,
				Escape(metadata.TrailerYouTubeID))
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div></div>`)

	if len(metadata.StreamingPlatforms) > 0 {
		b.WriteString(`<div class="film-details-section"><h3>Disponible sur</h3><div class="streaming-platforms">`)
		for _, platform := range metadata.StreamingPlatforms {
			b.WriteString(`<div class="streaming-platform">`)
			if platform.LogoURL != "" {
				fmt.Fprintf(&b, `<img src="%s" alt="%s" class="platform-logo">`, Escape(platform.LogoURL), Escape(platform.Name))
			}
			fmt.Fprintf(&b, `<span>%s</span>`, Escape(platform.Name))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div></div>`)
	}

	fmt.Fprintf(&b, `<div class="film-details-section"><h3>Genres</h3><p>%s</p></div>`, Escape(genres))
	if cast != "" {
		fmt.Fprintf(&b, `<div class="film-details-section"><h3>Cast</h3><p>%s</p></div>`, Escape(cast))
	}
	fmt.Fprintf(&b, `<div class="film-details-section"><h3>Synopsis</h3><p>%s</p></div>`, Escape(synopsis))
	b.WriteString(`</div>`)
	return template.HTML(b.String())
}

// FilterSummary renders a history entry's filter set as a single line,
// matching the recorded filter order.
func FilterSummary(filters domain.SearchFilters) string {
	var b strings.Builder
	if len(filters.Genres) > 0 {
		fmt.Fprintf(&b, "Genres: %s ", strings.Join(filters.Genres, ", "))
	}
	if filters.MinYear > 0 {
		fmt.Fprintf(&b, "Année min: %d ", filters.MinYear)
	}
	if filters.MaxYear > 0 {
		fmt.Fprintf(&b, "Année max: %d", filters.MaxYear)
	}
	return strings.TrimRight(b.String(), " ")
}

// RenderHistoryList renders the caller's search history panel. Entries link
// back to the search page so a click replays the query.
func RenderHistoryList(entries []domain.SearchHistoryEntry) template.HTML {
	if len(entries) == 0 {
		return `<p class="history-empty">Aucune recherche effectuée</p>`
	}

	var b strings.Builder
	for _, entry := range entries {
		query := url.Values{}
		query.Set("q", entry.QueryText)
		fmt.Fprintf(&b, `<a class="history-item" href="/search?%s">`, query.Encode())
		fmt.Fprintf(&b, `<div class="history-item-header"><strong>%s</strong><span class="history-date">%s</span></div>`,
			Escape(entry.QueryText), FormatDateTime(entry.CreatedAt.Time))
		if summary := FilterSummary(entry.Filters); summary != "" {
			fmt.Fprintf(&b, `<div class="history-filters">%s</div>`, Escape(summary))
		}
		fmt.Fprintf(&b, `<div class="history-results">%d résultat(s)</div>`, entry.ResultsCount)
		b.WriteString(`</a>`)
	}
	return template.HTML(b.String())
}

// ResultsCountLine renders the "N résultat(s) trouvé(s)" line over the grid.
func ResultsCountLine(count int) string {
	return fmt.Sprintf("%d résultat(s) trouvé(s)", count)
}

// RecommendationSubtitle captions the similar-films grid on the detail page.
func RecommendationSubtitle(filmID int) string {
	return fmt.Sprintf(`Films similaires au film ID "%d"`, filmID)
}
