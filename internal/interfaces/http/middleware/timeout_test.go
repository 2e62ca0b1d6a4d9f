package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func timeoutRouter(d time.Duration, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Timeout(d))
	r.GET("/slow", handler)
	return r
}

func TestTimeout_SlowHandlerAnswers504(t *testing.T) {
	r := timeoutRouter(20*time.Millisecond, func(c *gin.Context) {
		// Writing after the deadline would race the timeout reply, so the
		// handler just waits for the cancellation it is expected to honor.
		<-c.Request.Context().Done()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("Expected 504, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	r := timeoutRouter(time.Second, func(c *gin.Context) {
		if _, ok := c.Request.Context().Deadline(); !ok {
			t.Error("Expected a deadline on the request context")
		}
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/slow", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
