package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/orchids/cinesearch/internal/backend"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/internal/view"
	"github.com/orchids/cinesearch/pkg/logger"
	"github.com/orchids/cinesearch/pkg/validator"
)

// adminListLimit caps every dashboard listing, matching the page size the
// backend expects.
const adminListLimit = 100

// AdminHandler drives the dashboard. Every mutating action round-trips
// through a full reload; the handler never patches previously rendered
// state.
type AdminHandler struct {
	backend *backend.Client
	log     *logger.Logger
}

func NewAdminHandler(backendClient *backend.Client, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		backend: backendClient,
		log:     log,
	}
}

// Dashboard issues the four dashboard fetches as one all-or-nothing group:
// a single failure renders the error banner and nothing else, never a
// partial table set.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	cookies := c.Request.Cookies()
	data := gin.H{"User": currentUser(c)}

	var (
		dashboard *domain.Dashboard
		users     []domain.User
		sessions  []domain.Session
		history   []domain.SearchHistoryEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := h.backend.AdminDashboard(gctx, cookies)
		if err != nil {
			return err
		}
		dashboard = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := h.backend.AdminUsers(gctx, cookies, adminListLimit)
		if err != nil {
			return err
		}
		users = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := h.backend.AdminSessions(gctx, cookies, adminListLimit)
		if err != nil {
			return err
		}
		sessions = loaded
		return nil
	})
	g.Go(func() error {
		loaded, err := h.backend.AdminSearchHistory(gctx, cookies, adminListLimit)
		if err != nil {
			return err
		}
		history = loaded
		return nil
	})

	if err := g.Wait(); err != nil {
		h.log.Error(ctx, "dashboard load failed", map[string]interface{}{
			"error": err.Error(),
		})
		data["ErrorMessage"] = "Erreur lors du chargement: " + backend.Detail(err, "Erreur lors du chargement du tableau de bord")
		c.HTML(statusForError(err), "admin.html", data)
		return
	}

	if flash := takeFlash(c); flash != "" {
		data["ErrorMessage"] = flash
	}

	data["Loaded"] = true
	data["KPIHTML"] = view.RenderKPIGrid(dashboard.KPI)
	data["UsersChartHTML"] = view.UsersByDayChart(dashboard.UsersByDay)
	data["SearchesChartHTML"] = view.SearchesByDayChart(dashboard.SearchesByDay)
	data["UsersRowsHTML"] = view.RenderUsersTable(users)
	data["SessionsRowsHTML"] = view.RenderSessionsTable(sessions)
	data["HistoryRowsHTML"] = view.RenderAdminHistoryTable(history)
	c.HTML(http.StatusOK, "admin.html", data)
}

// BlockUser suspends an account, then reloads the dashboard. On failure the
// server message rides a flash cookie to the next render.
func (h *AdminHandler) BlockUser(c *gin.Context) {
	h.action(c, "Erreur lors du blocage", h.backend.BlockUser)
}

func (h *AdminHandler) UnblockUser(c *gin.Context) {
	h.action(c, "Erreur lors du déblocage", h.backend.UnblockUser)
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	h.action(c, "Erreur lors de la suppression", h.backend.DeleteUser)
}

func (h *AdminHandler) action(c *gin.Context, fallback string, call func(ctx context.Context, cookies []*http.Cookie, id int) error) {
	ctx := c.Request.Context()

	id, err := validator.ParseID(c.Param("id"))
	if err != nil {
		setFlash(c, "Erreur: utilisateur invalide")
		c.Redirect(http.StatusSeeOther, "/admin")
		return
	}

	if err := call(ctx, c.Request.Cookies(), id); err != nil {
		h.log.Error(ctx, "admin action failed", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
		setFlash(c, "Erreur: "+backend.Detail(err, fallback))
	}
	c.Redirect(http.StatusSeeOther, "/admin")
}
