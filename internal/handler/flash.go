package handler

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "cinesearch_flash"

// setFlash stores a banner message across the redirect that follows a failed
// mutating action.
func setFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 30, "/", "", false, true)
}

// takeFlash reads and clears the pending banner message, if any.
func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return message
}
