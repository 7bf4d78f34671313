package admin

import (
	"aigc-audit-admin/inout"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var reportService = &audit_service.ReportService{}

// SubmitReport 提交举报
func SubmitReport(c *gin.Context) {
	var req inout.SubmitReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	report, err := reportService.SubmitReport(req.ContentID, req.ReporterUserID, req.Reason)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, formatReport(report))
}

// StartProcessing 领取举报开始处理
func StartProcessing(c *gin.Context) {
	var req inout.StartProcessingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	report, err := reportService.StartProcessing(req.ReportID, req.Operator)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, formatReport(report))
}

// ProcessReport 完成举报处理
func ProcessReport(c *gin.Context) {
	var req inout.ProcessReportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	report, err := reportService.ProcessReport(req.ReportID, req.Result, req.Operator)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, formatReport(report))
}

// GetReportList 举报列表
func GetReportList(c *gin.Context) {
	var req inout.GetReportListReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}

	var status *audit_model.ReportStatus
	if req.Status != nil {
		s := audit_model.ReportStatus(*req.Status)
		status = &s
	}
	data, total, err := reportService.GetReportList(req.Page, req.PageSize, status)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	items := make([]inout.ReportItem, len(data))
	for i := range data {
		items[i] = *formatReport(&data[i])
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	Resp.Succ(c, inout.ReportListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

// GetReportsByContent 查询针对某条内容的全部举报
func GetReportsByContent(c *gin.Context) {
	var req inout.GetReportsByContentReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := reportService.GetReportsByContent(req.ContentID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	items := make([]inout.ReportItem, len(data))
	for i := range data {
		items[i] = *formatReport(&data[i])
	}
	Resp.Succ(c, items)
}

// CheckMalicious 恶意举报检测
func CheckMalicious(c *gin.Context) {
	var req inout.MaliciousCheckReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	malicious, err := reportService.CheckMaliciousReporting(req.UserID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, gin.H{"user_id": req.UserID, "malicious": malicious})
}

// formatReport 模型转响应条目
func formatReport(report *audit_model.Report) *inout.ReportItem {
	item := &inout.ReportItem{
		ID:             report.ID,
		ReporterUserID: report.ReporterUserID,
		ContentID:      report.ContentID,
		ReportTime:     report.ReportTime.Format("2006-01-02 15:04:05"),
		ReportReason:   report.ReportReason,
		ProcessStatus:  int(report.ProcessStatus),
	}
	if report.ProcessTime != nil {
		item.ProcessTime = report.ProcessTime.Format("2006-01-02 15:04:05")
	}
	if report.ProcessResult != nil {
		item.ProcessResult = *report.ProcessResult
	}
	return item
}
