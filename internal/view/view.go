// Package view maps domain objects to HTML fragments. Every fragment builder
// is a pure function; all interpolated text, whether user- or
// server-originated, goes through Escape before insertion.
package view

import (
	"html"
	"html/template"
	"math"
	"strconv"
	"time"
)

const (
	// SynopsisLimit is the character budget for synopsis excerpts on cards.
	SynopsisLimit = 120
	// UserAgentLimit is the character budget for user agents in the
	// sessions table.
	UserAgentLimit = 50
)

// Escape HTML-escapes untrusted text for element content and attribute
// values.
func Escape(s string) string {
	return template.HTMLEscapeString(s)
}

// Unescape reverses Escape; exported for round-trip checks.
func Unescape(s string) string {
	return html.UnescapeString(s)
}

// Truncate cuts s to at most limit characters, appending an ellipsis only
// when something was cut.
func Truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

// SimilarityPercent renders 1-distance as a whole percentage.
func SimilarityPercent(distance float64) string {
	return strconv.Itoa(int(math.Round((1-distance)*100))) + "%"
}

// SimilarityValue renders 1-distance with exactly three decimals.
func SimilarityValue(distance float64) string {
	return strconv.FormatFloat(1-distance, 'f', 3, 64)
}

// FormatDate renders a date the way the UI shows them (fr-FR order).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatDateTime renders a timestamp with time of day.
func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006 15:04:05")
}
