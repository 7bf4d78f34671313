package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"aigc-audit-admin/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery 自定义恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		// 生产环境不外泄堆栈
		if gin.Mode() == gin.DebugMode {
			response.Error(c, response.INTERNAL_ERROR, err)
		} else {
			response.Error(c, response.INTERNAL_ERROR, "服务器内部错误")
		}
	})
}
