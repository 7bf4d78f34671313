package router

import (
	"aigc-audit-admin/controllers/admin"
	"aigc-audit-admin/middleware"

	"github.com/gin-gonic/gin"
)

// InitAdmin 注册审核后台路由
// 鉴权由上游网关负责，这里不挂登录中间件
func InitAdmin(r *gin.Engine) {
	r.Use(middleware.Cors())

	api := r.Group("/api")
	{
		api.POST("/audit/machine", admin.MachineAudit)
		api.POST("/audit/manual", admin.ManualAudit)
		api.GET("/audit/pending", admin.GetPendingList)
		api.GET("/audit/detail", admin.GetContentDetail)

		api.POST("/report/submit", admin.SubmitReport)
		api.POST("/report/start", admin.StartProcessing)
		api.POST("/report/process", admin.ProcessReport)
		api.GET("/report/list", admin.GetReportList)
		api.GET("/report/by-content", admin.GetReportsByContent)
		api.GET("/report/malicious-check", admin.CheckMalicious)

		api.GET("/violation/list", admin.GetViolationList)

		api.GET("/keyword", admin.GetKeywordList)
		api.POST("/keyword", admin.AddKeyword)
		api.PUT("/keyword", admin.UpdateKeyword)
		api.DELETE("/keyword", admin.DeleteKeyword)
		api.POST("/keyword/refresh", admin.RefreshKeywordCache)

		api.GET("/statistics/dashboard", admin.GetDashboard)
		api.GET("/statistics/report-trend", admin.GetReportTrend)

		api.POST("/user/disable", admin.DisableUser)
		api.POST("/user/enable", admin.EnableUser)
		api.GET("/user/status", admin.GetUserStatus)
	}
}
