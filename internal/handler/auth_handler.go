package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/orchids/cinesearch/internal/backend"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/pkg/logger"
	"github.com/orchids/cinesearch/pkg/validator"
)

// AuthHandler drives the login/register page. Credential checking itself is
// entirely the backend's job; this side only validates form completeness and
// relays session cookies.
type AuthHandler struct {
	backend *backend.Client
	log     *logger.Logger
}

func NewAuthHandler(backendClient *backend.Client, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		backend: backendClient,
		log:     log,
	}
}

// LoginPage renders the combined login/register page, or sends an already
// authenticated visitor home.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if _, err := h.backend.Me(c.Request.Context(), c.Request.Cookies()); err == nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// Login validates the form, forwards the credentials, and relays the
// backend's session cookies to the browser.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if err := validator.ValidateLogin(username, password); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"ErrorMessage": err.Error(),
			"Username":     username,
		})
		return
	}

	cookies, err := h.backend.Login(ctx, domain.Credentials{
		Username: username,
		Password: password,
	})
	if err != nil {
		h.log.Info(ctx, "login rejected", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		c.HTML(http.StatusOK, "login.html", gin.H{
			"ErrorMessage": backend.Detail(err, "Erreur de connexion"),
			"Username":     username,
		})
		return
	}

	relayCookies(c, cookies)
	c.Redirect(http.StatusSeeOther, "/")
}

// Register validates the form locally before forwarding, then opens the new
// session like a login.
func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	renderError := func(message string) {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"ErrorMessage":     message,
			"RegisterUsername": username,
			"RegisterEmail":    email,
		})
	}

	if err := validator.ValidateRegistration(username, email, password); err != nil {
		renderError(err.Error())
		return
	}

	registration := domain.Registration{
		Username: username,
		Email:    email,
		Password: password,
	}
	if gender := c.PostForm("gender"); gender != "" {
		registration.Gender = &gender
	}

	cookies, err := h.backend.Register(ctx, registration)
	if err != nil {
		h.log.Info(ctx, "registration rejected", map[string]interface{}{
			"username": username,
			"error":    err.Error(),
		})
		renderError(backend.Detail(err, "Erreur lors de l'inscription"))
		return
	}

	relayCookies(c, cookies)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout terminates the backend session; a failing backend call still sends
// the visitor to the login page.
func (h *AuthHandler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	cookies, err := h.backend.Logout(ctx, c.Request.Cookies())
	if err != nil {
		h.log.Debug(ctx, "logout failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	relayCookies(c, cookies)
	c.Redirect(http.StatusSeeOther, "/login")
}

// relayCookies forwards the backend's Set-Cookie headers to the browser.
func relayCookies(c *gin.Context, cookies []*http.Cookie) {
	for _, cookie := range cookies {
		http.SetCookie(c.Writer, cookie)
	}
}
