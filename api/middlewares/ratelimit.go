package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// PublicRateLimit bounds requests on the public share route. Tokens are
// unguessable, but a device on the same network can still hammer the endpoint
// trying to enumerate them; the bucket keeps that bounded while leaving room
// for legitimate download retries.
func PublicRateLimit(perSecond rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(perSecond, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.String(http.StatusTooManyRequests, "Too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
