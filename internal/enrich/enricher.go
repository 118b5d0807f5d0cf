package enrich

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/orchids/cinesearch/internal/cache"
	"github.com/orchids/cinesearch/internal/config"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/internal/view"
	"github.com/orchids/cinesearch/pkg/logger"
)

// MetadataSource is the slice of the backend client the enricher needs.
type MetadataSource interface {
	FilmMetadata(ctx context.Context, id int) (*domain.FilmMetadata, error)
	PosterByTitle(ctx context.Context, title string, year int) (*domain.PosterResult, error)
}

// Enricher resolves real artwork for rendered film cards. Every lookup is
// best-effort: failures are logged and the card keeps its placeholder.
type Enricher struct {
	source        MetadataSource
	store         cache.Store
	lookupTimeout time.Duration
	cacheTTL      time.Duration
	log           *logger.Logger
}

func New(source MetadataSource, store cache.Store, cfg config.EnrichmentConfig, log *logger.Logger) *Enricher {
	return &Enricher{
		source:        source,
		store:         store,
		lookupTimeout: cfg.LookupTimeout,
		cacheTTL:      cfg.CacheTTL,
		log:           log,
	}
}

// PosterURL resolves artwork for one film: cache, then metadata by id, then
// poster by title, then the generated placeholder. Placeholders are never
// cached so a later lookup can still succeed.
func (e *Enricher) PosterURL(ctx context.Context, id int, title string, year int) string {
	key := fmt.Sprintf("poster:%d", id)
	if cached, ok := e.store.Get(ctx, key); ok {
		return cached
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.lookupTimeout)
	defer cancel()

	metadata, err := e.source.FilmMetadata(lookupCtx, id)
	if err == nil && metadata != nil && metadata.PosterURL != "" {
		e.store.Set(ctx, key, metadata.PosterURL, e.cacheTTL)
		return metadata.PosterURL
	}
	if err != nil {
		e.log.Debug(ctx, "metadata lookup failed", map[string]interface{}{
			"film_id": id,
			"error":   err.Error(),
		})
	}

	poster, err := e.source.PosterByTitle(lookupCtx, title, year)
	if err == nil && poster != nil && poster.PosterURL != "" {
		e.store.Set(ctx, key, poster.PosterURL, e.cacheTTL)
		return poster.PosterURL
	}
	if err != nil {
		e.log.Debug(ctx, "poster lookup failed", map[string]interface{}{
			"film_id": id,
			"title":   title,
			"error":   err.Error(),
		})
	}

	return domain.PlaceholderPosterURL(title)
}

// EnrichCards upgrades the placeholder artwork of rendered cards. All lookups
// run concurrently and are jointly awaited; each one is independent, so a
// failing card leaves the others untouched. A card whose render target is
// already gone (nil entry, or the context expired before the lookup resolved)
// is skipped silently.
func (e *Enricher) EnrichCards(ctx context.Context, cards []*view.FilmCard) {
	var wg sync.WaitGroup
	for _, card := range cards {
		if card == nil {
			continue
		}
		wg.Add(1)
		go func(card *view.FilmCard) {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			posterURL := e.PosterURL(ctx, card.Film.ID, card.Film.Title, card.Film.Year)
			if ctx.Err() != nil {
				// Page already rendered; discard the stale result.
				return
			}
			card.SetPoster(posterURL)
		}(card)
	}
	wg.Wait()
}
