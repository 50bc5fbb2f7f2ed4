package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie = "sid"
	// Browser-session lifetime for the cart cookie, in seconds (30 days).
	sessionMaxAge = 30 * 24 * 60 * 60

	SessionKey = "session_id"
)

// SessionMiddleware assigns a cart session identifier to every request.
// The cart is scoped to this id; a returning browser keeps its cart, a
// fresh one starts empty.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(sessionCookie)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(sessionCookie, sid, sessionMaxAge, "/", "", false, true)
		}
		c.Set(SessionKey, sid)
		c.Next()
	}
}

// RequestIDMiddleware tags every request for the response envelope.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("X-Request-ID", requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}
