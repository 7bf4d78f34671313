package admin

import (
	"errors"

	"aigc-audit-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Resp 为了兼容性保留，但推荐直接使用 response 包
var Resp = &rps{}

type rps struct{}

// Succ 成功响应 - 兼容旧接口
func (rps) Succ(c *gin.Context, data interface{}) {
	response.Success(c, data)
}

// Err 错误响应 - 兼容旧接口
func (rps) Err(c *gin.Context, errCode int, message string) {
	response.Error(c, errCode, message)
}

// errCode 把服务层错误翻译成响应码，记录不存在与其它错误区分开
func errCode(err error) int {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response.NOT_FOUND
	}
	return response.ERROR
}
