package admin

import (
	"aigc-audit-admin/inout"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var statisticsService = &audit_service.StatisticsService{}

// GetDashboard 审核看板
func GetDashboard(c *gin.Context) {
	data, err := statisticsService.GetDashboard()
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, data)
}

// GetReportTrend 举报趋势
func GetReportTrend(c *gin.Context) {
	var req inout.GetReportTrendReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := statisticsService.GetReportTrend(req.Days)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, data)
}
