package view

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/orchids/cinesearch/internal/domain"
)

func daySeries(counts ...int) []domain.DayCount {
	base := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	series := make([]domain.DayCount, 0, len(counts))
	for i, count := range counts {
		series = append(series, domain.DayCount{
			Date:  domain.Timestamp{Time: base.AddDate(0, 0, i)},
			Count: count,
		})
	}
	return series
}

func TestUsersByDayChart(t *testing.T) {
	html := string(UsersByDayChart(daySeries(1, 4, 2, 8)))

	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "</svg>")
}

func TestUsersByDayChart_TooFewPoints(t *testing.T) {
	assert.Empty(t, string(UsersByDayChart(nil)))
	assert.Empty(t, string(UsersByDayChart(daySeries(5))))
}

func TestSearchesByDayChart(t *testing.T) {
	html := string(SearchesByDayChart(daySeries(3, 7)))

	assert.Contains(t, html, "<svg")
	assert.Contains(t, html, "01/03/2024")
}

func TestSearchesByDayChart_Empty(t *testing.T) {
	assert.Empty(t, string(SearchesByDayChart(nil)))
}
