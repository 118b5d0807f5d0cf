package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/orchids/cinesearch/internal/backend"
	"github.com/orchids/cinesearch/internal/config"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/internal/enrich"
	"github.com/orchids/cinesearch/internal/view"
	"github.com/orchids/cinesearch/pkg/logger"
	"github.com/orchids/cinesearch/pkg/response"
	"github.com/orchids/cinesearch/pkg/validator"
)

// PageHandler drives the public pages: search, film detail, history and the
// poster enrichment routes.
type PageHandler struct {
	backend  *backend.Client
	enricher *enrich.Enricher
	cfg      *config.Config
	log      *logger.Logger
}

func NewPageHandler(
	backendClient *backend.Client,
	enricher *enrich.Enricher,
	cfg *config.Config,
	log *logger.Logger,
) *PageHandler {
	return &PageHandler{
		backend:  backendClient,
		enricher: enricher,
		cfg:      cfg,
		log:      log,
	}
}

// searchPageData assembles the common payload of the search shell.
func (h *PageHandler) searchPageData(c *gin.Context) gin.H {
	ctx := c.Request.Context()

	data := gin.H{
		"User":    currentUser(c),
		"Query":   c.Query("q"),
		"MinYear": c.Query("min_year"),
		"MaxYear": c.Query("max_year"),
		"Genres":  c.Query("genres"),
		"K":       validator.ParseResultCount(c.Query("k"), h.cfg.Search.DefaultResults, h.cfg.Search.MaxResults),
	}

	// Stats are decorative; a failing load just leaves the strip empty.
	stats, err := h.backend.Stats(ctx)
	if err != nil {
		h.log.Debug(ctx, "stats load failed", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		data["StatsHTML"] = view.RenderStats(stats)
	}

	if flash := takeFlash(c); flash != "" {
		data["ErrorMessage"] = flash
	}
	return data
}

// SearchPage renders the search form and the public stats strip.
func (h *PageHandler) SearchPage(c *gin.Context) {
	c.HTML(http.StatusOK, "search.html", h.searchPageData(c))
}

// SearchResults validates the query, runs the ranked search, and renders the
// result cards. Posters are group-enriched before render; cards that stay
// unresolved point at the lazy poster route.
func (h *PageHandler) SearchResults(c *gin.Context) {
	ctx := c.Request.Context()
	data := h.searchPageData(c)

	query := c.Query("q")
	if err := validator.ValidateSearchQuery(query); err != nil {
		data["ErrorMessage"] = err.Error()
		c.HTML(http.StatusOK, "search.html", data)
		return
	}

	k := validator.ParseResultCount(c.Query("k"), h.cfg.Search.DefaultResults, h.cfg.Search.MaxResults)
	params := backend.SearchParams{
		Query:   query,
		K:       k,
		MinYear: validator.ParseOptionalYear(c.Query("min_year")),
		MaxYear: validator.ParseOptionalYear(c.Query("max_year")),
		Genres:  c.Query("genres"),
	}

	result, err := h.backend.Search(ctx, c.Request.Cookies(), params)
	if err != nil {
		h.log.Error(ctx, "search failed", map[string]interface{}{
			"query": query,
			"error": err.Error(),
		})
		data["ErrorMessage"] = "Erreur: " + backend.Detail(err, "Erreur lors de la recherche")
		c.HTML(http.StatusOK, "search.html", data)
		return
	}

	if len(result.Recommendations) == 0 {
		data["ErrorMessage"] = "Aucun résultat trouvé"
		c.HTML(http.StatusOK, "search.html", data)
		return
	}

	cards := view.CardsFromRecommendations(result.Recommendations, k)
	h.enrichWithBudget(c, cards)

	data["HasResults"] = true
	data["ResultsCount"] = view.ResultsCountLine(result.Count)
	data["ResultsHTML"] = view.RenderFilmGrid(cards)
	c.HTML(http.StatusOK, "search.html", data)
}

// enrichWithBudget runs the poster group under the configured budget so a
// slow lookup cannot hold the page; unresolved cards keep their lazy URL.
func (h *PageHandler) enrichWithBudget(c *gin.Context, cards []*view.FilmCard) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.cfg.Enrichment.LookupTimeout)
	defer cancel()
	h.enricher.EnrichCards(ctx, cards)
}

// FilmDetails renders the detail modal plus the similar-films grid. Detail
// is fatal to the page; metadata and recommendations are best-effort.
func (h *PageHandler) FilmDetails(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{
		"User":  currentUser(c),
		"Title": "Film",
	}

	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		data["ErrorMessage"] = "Erreur lors du chargement des détails: film invalide"
		c.HTML(http.StatusNotFound, "detail.html", data)
		return
	}
	k := validator.ParseResultCount(c.Query("k"), h.cfg.Search.DefaultResults, h.cfg.Search.MaxResults)

	var (
		film     *domain.Film
		metadata *domain.FilmMetadata
		recs     *domain.RecommendationResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := h.backend.Film(gctx, id)
		if err != nil {
			return err
		}
		film = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := h.backend.FilmMetadata(gctx, id)
		if err != nil {
			h.log.Debug(gctx, "metadata load failed", map[string]interface{}{
				"film_id": id,
				"error":   err.Error(),
			})
			return nil
		}
		metadata = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := h.backend.RecommendByFilm(gctx, id, k)
		if err != nil {
			h.log.Debug(gctx, "recommendations load failed", map[string]interface{}{
				"film_id": id,
				"error":   err.Error(),
			})
			return nil
		}
		recs = loaded
		return nil
	})

	if err := g.Wait(); err != nil {
		h.log.Error(ctx, "film details failed", map[string]interface{}{
			"film_id": id,
			"error":   err.Error(),
		})
		data["ErrorMessage"] = "Erreur lors du chargement des détails: " + backend.Detail(err, "Failed to load film details")
		c.HTML(statusForError(err), "detail.html", data)
		return
	}

	data["Title"] = film.Title
	data["DetailsHTML"] = view.RenderFilmDetails(film, metadata)

	if recs != nil && len(recs.Recommendations) > 0 {
		cards := view.CardsFromRecommendations(recs.Recommendations, k)
		h.enrichWithBudget(c, cards)

		data["HasRecommendations"] = true
		data["RecommendationSubtitle"] = view.RecommendationSubtitle(id)
		data["RecommendationsHTML"] = view.RenderFilmGrid(cards)
	}
	c.HTML(http.StatusOK, "detail.html", data)
}

// History renders the caller's own search history.
func (h *PageHandler) History(c *gin.Context) {
	ctx := c.Request.Context()
	data := gin.H{"User": currentUser(c)}

	entries, err := h.backend.SearchHistory(ctx, c.Request.Cookies())
	if err != nil {
		h.log.Error(ctx, "history load failed", map[string]interface{}{
			"error": err.Error(),
		})
		data["ErrorMessage"] = "Erreur lors du chargement de l'historique: " + backend.Detail(err, "Failed to load history")
		c.HTML(statusForError(err), "history.html", data)
		return
	}

	data["HistoryHTML"] = view.RenderHistoryList(entries)
	c.HTML(http.StatusOK, "history.html", data)
}

// Poster resolves a card's artwork and redirects to it. This route is what
// placeholder-bearing cards point at, so failure still redirects somewhere
// renderable.
func (h *PageHandler) Poster(c *gin.Context) {
	title := c.Query("title")

	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusFound, domain.PlaceholderPosterURL(title))
		return
	}

	posterURL := h.enricher.PosterURL(c.Request.Context(), id, title, validator.ParseOptionalYear(c.Query("year")))
	c.Redirect(http.StatusFound, posterURL)
}

// PosterAPI is the JSON flavor of the poster route.
func (h *PageHandler) PosterAPI(c *gin.Context) {
	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		response.ValidationError(c, "Invalid film ID")
		return
	}

	posterURL := h.enricher.PosterURL(c.Request.Context(), id, c.Query("title"), validator.ParseOptionalYear(c.Query("year")))
	response.Success(c, http.StatusOK, gin.H{"poster_url": posterURL})
}

// statusForError mirrors the backend's status on error pages where one is
// available, defaulting to 502 for network-level failures.
func statusForError(err error) int {
	if status := backend.StatusCode(err); status > 0 {
		return status
	}
	return http.StatusBadGateway
}
