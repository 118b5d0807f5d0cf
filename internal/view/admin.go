package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/orchids/cinesearch/internal/domain"
)

const (
	confirmBlock  = "Êtes-vous sûr de vouloir bloquer cet utilisateur ?"
	confirmDelete = "Êtes-vous sûr de vouloir supprimer cet utilisateur ? Cette action est irréversible."
)

// RenderKPIGrid renders the dashboard counter cards.
func RenderKPIGrid(kpi domain.DashboardKPI) template.HTML {
	var b strings.Builder
	writeKPICard(&b, kpi.TotalUsers, "Utilisateurs totaux")
	writeKPICard(&b, kpi.TotalAdmins, "Administrateurs")
	writeKPICard(&b, kpi.ActiveSessions, "Sessions actives")
	writeKPICard(&b, kpi.TotalSearches, "Recherches totales")
	writeKPICard(&b, kpi.TotalWatched, "Films visionnés")
	writeKPICard(&b, kpi.ActiveToday, "Actifs aujourd'hui")
	writeKPICard(&b, kpi.SearchesToday, "Recherches aujourd'hui")
	return template.HTML(b.String())
}

func writeKPICard(b *strings.Builder, value int, label string) {
	fmt.Fprintf(b, `<div class="kpi-card"><div class="kpi-value">%d</div><div class="kpi-label">%s</div></div>`,
		value, Escape(label))
}

func userStatus(user domain.User) (class, label string) {
	switch {
	case user.IsBlocked:
		return "status-blocked", "Bloqué"
	case user.IsActive:
		return "status-active", "Actif"
	default:
		return "status-inactive", "Inactif"
	}
}

// RenderUsersTable renders the user rows including the moderation actions.
// Block and delete carry a destructive-action confirmation; unblock fires
// directly.
func RenderUsersTable(users []domain.User) template.HTML {
	var b strings.Builder
	for _, user := range users {
		statusClass, statusLabel := userStatus(user)

		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td>%d</td>`, user.ID)
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(user.Username))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(user.Email))
		fmt.Fprintf(&b, `<td><span class="status-badge">%s</span></td>`, Escape(user.Role.String()))
		fmt.Fprintf(&b, `<td><span class="status-badge %s">%s</span></td>`, statusClass, statusLabel)
		fmt.Fprintf(&b, `<td>%s</td>`, FormatDate(user.CreatedAt.Time))
		b.WriteString(`<td><div class="action-buttons">`)
		if user.IsBlocked {
			writeActionForm(&b, fmt.Sprintf("/admin/users/%d/unblock", user.ID), "Débloquer", "action-btn", "")
		} else {
			writeActionForm(&b, fmt.Sprintf("/admin/users/%d/block", user.ID), "Bloquer", "action-btn danger", confirmBlock)
		}
		writeActionForm(&b, fmt.Sprintf("/admin/users/%d/delete", user.ID), "Supprimer", "action-btn danger", confirmDelete)
		b.WriteString(`</div></td></tr>`)
	}
	return template.HTML(b.String())
}

func writeActionForm(b *strings.Builder, action, label, class, confirm string) {
	if confirm != "" {
		fmt.Fprintf(b, `<form method="post" action="%s" onsubmit="return confirm('%s')">`, Escape(action), Escape(confirm))
	} else {
		fmt.Fprintf(b, `<form method="post" action="%s">`, Escape(action))
	}
	fmt.Fprintf(b, `<button type="submit" class="%s">%s</button></form>`, class, Escape(label))
}

// RenderSessionsTable renders the active backend sessions.
func RenderSessionsTable(sessions []domain.Session) template.HTML {
	var b strings.Builder
	for _, session := range sessions {
		ip := session.IPAddress
		if ip == "" {
			ip = "N/A"
		}
		userAgent := session.UserAgent
		if userAgent == "" {
			userAgent = "N/A"
		} else {
			userAgent = Truncate(userAgent, UserAgentLimit)
		}

		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td>%d</td>`, session.ID)
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(session.Username))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(ip))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(userAgent))
		fmt.Fprintf(&b, `<td>%s</td>`, FormatDateTime(session.CreatedAt.Time))
		fmt.Fprintf(&b, `<td>%s</td>`, FormatDateTime(session.ExpiresAt.Time))
		b.WriteString(`</tr>`)
	}
	return template.HTML(b.String())
}

// RenderAdminHistoryTable renders the global search history rows.
func RenderAdminHistoryTable(entries []domain.SearchHistoryEntry) template.HTML {
	var b strings.Builder
	for _, entry := range entries {
		summary := FilterSummary(entry.Filters)
		if summary == "" {
			summary = "Aucun"
		}

		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td>%d</td>`, entry.ID)
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(entry.Username))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(entry.QueryText))
		fmt.Fprintf(&b, `<td>%s</td>`, Escape(summary))
		fmt.Fprintf(&b, `<td>%d</td>`, entry.ResultsCount)
		fmt.Fprintf(&b, `<td>%s</td>`, FormatDateTime(entry.CreatedAt.Time))
		b.WriteString(`</tr>`)
	}
	return template.HTML(b.String())
}
