package admin

import (
	"aigc-audit-admin/inout"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var userManageService = &audit_service.UserManageService{}

// DisableUser 封禁用户
func DisableUser(c *gin.Context) {
	var req inout.UserActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := userManageService.DisableUser(req.UserID, req.Reason, req.Operator); err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, nil)
}

// EnableUser 申诉通过后解封用户
func EnableUser(c *gin.Context) {
	var req inout.UserActionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := userManageService.EnableUser(req.UserID, req.Reason, req.Operator); err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, nil)
}

// GetUserStatus 查询用户状态和累计违规次数
func GetUserStatus(c *gin.Context) {
	userID := c.Query("user_id")
	if userID == "" {
		Resp.Err(c, response.INVALID_PARAMS, "user_id参数错误")
		return
	}
	status, err := userManageService.GetUserStatus(userID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	violationCount, err := violationService.CountByUser(userID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, gin.H{
		"user_id":         userID,
		"status":          status,
		"violation_count": violationCount,
	})
}
