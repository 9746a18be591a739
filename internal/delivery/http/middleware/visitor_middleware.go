package middleware

import (
	"net/http"
	"time"

	"optika/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// visitorCookieMaxAge keeps the anonymous cart alive for a year.
const visitorCookieMaxAge = 365 * 24 * time.Hour

// VisitorMiddleware assigns an opaque visitor token to every request. The
// token keys the anonymous shopping cart; first-time visitors get a fresh
// uuid set as a long-lived cookie.
type VisitorMiddleware struct{}

// NewVisitorMiddleware is the constructor for VisitorMiddleware.
func NewVisitorMiddleware() *VisitorMiddleware {
	return &VisitorMiddleware{}
}

// Handle ensures the visitor cookie exists and exposes the token on the
// request context under the cookie name.
func (m *VisitorMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		visitorID := ""
		if cookie, err := c.Cookie(constants.VisitorCookieName); err == nil && cookie.Value != "" {
			visitorID = cookie.Value
		}

		if visitorID == "" {
			visitorID = uuid.NewString()
			c.SetCookie(&http.Cookie{
				Name:     constants.VisitorCookieName,
				Value:    visitorID,
				Path:     "/",
				MaxAge:   int(visitorCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(constants.VisitorCookieName, visitorID)

		return next(c)
	}
}

// VisitorID reads the visitor token placed on the context by Handle.
func VisitorID(c echo.Context) string {
	visitorID, _ := c.Get(constants.VisitorCookieName).(string)

	return visitorID
}
