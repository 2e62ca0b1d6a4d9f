package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds a whole request, upstream round trip included. The deadline
// goes on the request context, so an upstream call still in flight when it
// fires is cancelled through the proxied http.Client instead of running on
// behind a reply the caller already received. Timed-out requests answer 504;
// a 502 means the upstream itself failed, a 504 means it ran out of time.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)

		done := make(chan struct{})
		go func() {
			defer close(done)
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
			})
			c.Abort()
		}
	}
}
