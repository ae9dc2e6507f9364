package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aboayman-oss/Sakr-Store/services"
)

const (
	// SessionCookie names the cookie carrying the signed session id.
	SessionCookie = "cart_session"

	sessionContextKey = "sessionID"

	sessionMaxAge = 30 * 24 * 60 * 60 // seconds, matches token expiry
)

// CartSession gives every visitor an anonymous session id, carried in
// a signed cookie. The id namespaces their cart and theme keys in the
// store; there is no account and no login behind it. Missing, expired,
// or tampered cookies just get a fresh session (and an empty cart).
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := services.GetSessionService()

		if token, err := c.Cookie(SessionCookie); err == nil {
			if sid, err := svc.VerifySessionToken(token); err == nil {
				c.Set(sessionContextKey, sid)
				c.Next()
				return
			}
		}

		sid := uuid.NewString()
		token, err := svc.IssueSessionToken(sid)
		if err != nil {
			// Session still works for this request; only the cookie is lost.
			log.Printf("[session] failed to issue session token: %v", err)
		} else {
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, token, sessionMaxAge, "/", "", false, true)
		}
		c.Set(sessionContextKey, sid)
		c.Next()
	}
}

// SessionID returns the session id set by CartSession.
func SessionID(c *gin.Context) string {
	if sid, ok := c.Get(sessionContextKey); ok {
		if s, ok := sid.(string); ok {
			return s
		}
	}
	return ""
}
