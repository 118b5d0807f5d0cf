package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orchids/cinesearch/internal/domain"
)

func TestRenderKPIGrid(t *testing.T) {
	html := string(RenderKPIGrid(domain.DashboardKPI{
		TotalUsers:     12,
		TotalAdmins:    2,
		ActiveSessions: 4,
		TotalSearches:  321,
	}))

	assert.Contains(t, html, "Utilisateurs totaux")
	assert.Contains(t, html, "Administrateurs")
	assert.Contains(t, html, "Sessions actives")
	assert.Contains(t, html, "Recherches totales")
	assert.Contains(t, html, `<div class="kpi-value">321</div>`)
	assert.Equal(t, 7, strings.Count(html, "kpi-card"))
}

func TestRenderUsersTable_ActiveUser(t *testing.T) {
	users := []domain.User{
		{ID: 3, Username: "alice", Email: "alice@example.com", Role: domain.RoleUser, IsActive: true},
	}

	html := string(RenderUsersTable(users))

	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "Actif")
	assert.Contains(t, html, `action="/admin/users/3/block"`)
	assert.Contains(t, html, `action="/admin/users/3/delete"`)
	assert.NotContains(t, html, "/unblock")
	assert.Contains(t, html, "Êtes-vous sûr de vouloir bloquer cet utilisateur ?")
	assert.Contains(t, html, "Cette action est irréversible.")
}

func TestRenderUsersTable_BlockedUser(t *testing.T) {
	users := []domain.User{
		{ID: 3, Username: "mallory", Email: "m@example.com", Role: domain.RoleUser, IsBlocked: true},
	}

	html := string(RenderUsersTable(users))

	assert.Contains(t, html, "Bloqué")
	assert.Contains(t, html, `action="/admin/users/3/unblock"`)
	assert.NotContains(t, html, `action="/admin/users/3/block"`)

	// Unblock is not destructive, so its form fires without confirmation.
	unblockForm := html[strings.Index(html, "/unblock")-60 : strings.Index(html, "/unblock")]
	assert.NotContains(t, unblockForm, "confirm(")
}

func TestRenderSessionsTable_Fallbacks(t *testing.T) {
	sessions := []domain.Session{
		{ID: 1, Username: "bob"},
	}

	html := string(RenderSessionsTable(sessions))

	assert.Contains(t, html, "bob")
	assert.Equal(t, 2, strings.Count(html, "N/A"))
}

func TestRenderSessionsTable_TruncatesUserAgent(t *testing.T) {
	sessions := []domain.Session{
		{ID: 1, Username: "bob", UserAgent: strings.Repeat("x", 80)},
	}

	html := string(RenderSessionsTable(sessions))

	assert.Contains(t, html, strings.Repeat("x", UserAgentLimit)+"...")
	assert.NotContains(t, html, strings.Repeat("x", UserAgentLimit+1))
}

func TestRenderAdminHistoryTable_NoFilters(t *testing.T) {
	entries := []domain.SearchHistoryEntry{
		{ID: 9, Username: "alice", QueryText: "western", ResultsCount: 3},
	}

	html := string(RenderAdminHistoryTable(entries))

	assert.Contains(t, html, "western")
	assert.Contains(t, html, "Aucun")
	assert.Contains(t, html, "<td>3</td>")
}
