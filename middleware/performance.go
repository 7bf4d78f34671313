package middleware

import (
	"log"
	"sync"
	"time"

	"aigc-audit-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// 慢请求阈值
const slowThreshold = 500 * time.Millisecond

// 跳过监控的路径
var skipPaths = []string{"/health", "/metrics", "/favicon.ico"}

// Performance 慢请求日志中间件
func Performance() gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, path := range skipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		if latency > slowThreshold {
			log.Printf("[SLOW REQUEST] %s %s - Status: %d, Latency: %v",
				method, path, c.Writer.Status(), latency)
		}
	}
}

// RateLimit 内存限流中间件，按客户端IP每分钟限流
// 同一IP的读改写在互斥锁内完成，避免并发请求漏计数
func RateLimit(rpm int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		requests = make(map[string][]time.Time)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()

		// 清理一分钟前的请求记录
		var valid []time.Time
		cutoff := now.Add(-time.Minute)
		for _, ts := range requests[ip] {
			if ts.After(cutoff) {
				valid = append(valid, ts)
			}
		}

		if len(valid) >= rpm {
			requests[ip] = valid
			mu.Unlock()
			response.Abort(c, response.TOO_MANY_REQUESTS)
			return
		}

		requests[ip] = append(valid, now)
		mu.Unlock()

		c.Next()
	}
}
