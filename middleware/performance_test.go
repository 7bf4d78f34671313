package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRateLimitedRouter(rpm int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(rpm))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	r := newRateLimitedRouter(2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
		assert.Equal(t, "pong", w.Body.String())
	}

	// 超限后走统一响应码
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Contains(t, w.Body.String(), `"code":20005`)
}

func TestRateLimitConcurrentRequestsCounted(t *testing.T) {
	const rpm = 5
	r := newRateLimitedRouter(rpm)

	var allowed int64
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
			if w.Body.String() == "pong" {
				atomic.AddInt64(&allowed, 1)
			}
		}()
	}
	wg.Wait()

	// 同一IP并发打满时放行数与限额严格一致
	assert.Equal(t, int64(rpm), allowed)
}
