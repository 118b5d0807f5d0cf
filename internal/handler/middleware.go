package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/orchids/cinesearch/internal/backend"
	"github.com/orchids/cinesearch/internal/domain"
	"github.com/orchids/cinesearch/pkg/logger"
)

const contextUserKey = "current_user"

// AuthMiddleware gates pages behind the backend identity check. The check
// always runs before any page data is fetched.
type AuthMiddleware struct {
	backend *backend.Client
	log     *logger.Logger
}

func NewAuthMiddleware(backendClient *backend.Client, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		backend: backendClient,
		log:     log,
	}
}

// RequireUser redirects unauthenticated visitors to the login page.
func (m *AuthMiddleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

// RequireAdmin additionally redirects authenticated non-admins to the home
// page.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := m.resolve(c)
		if !ok {
			return
		}
		if !user.Role.IsAdmin() {
			c.Redirect(http.StatusSeeOther, "/")
			c.Abort()
			return
		}
		c.Set(contextUserKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) resolve(c *gin.Context) (*domain.User, bool) {
	ctx := c.Request.Context()

	user, err := m.backend.Me(ctx, c.Request.Cookies())
	if err != nil {
		m.log.Debug(ctx, "identity check failed", map[string]interface{}{
			"path":  c.Request.URL.Path,
			"error": err.Error(),
		})
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
		return nil, false
	}
	return user, true
}

func currentUser(c *gin.Context) *domain.User {
	value, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
