package admin

import (
	"aigc-audit-admin/inout"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var auditService = &audit_service.AuditService{}

// MachineAudit 机器审核入口，由内容生成链路调用
func MachineAudit(c *gin.Context) {
	var req inout.MachineAuditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	content, err := auditService.MachineAudit(req.InputText, req.OutputText, req.UserID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, formatContent(content))
}

// ManualAudit 人工审核结论提交
func ManualAudit(c *gin.Context) {
	var req inout.ManualAuditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	content, err := auditService.ManualAudit(req.ContentID, audit_model.AuditResult(req.Result), req.Operator)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, formatContent(content))
}

// GetPendingList 待人工审核队列
func GetPendingList(c *gin.Context) {
	var req inout.GetPendingListReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, total, err := auditService.GetPendingList(req.Page, req.PageSize)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	items := make([]inout.ContentItem, len(data))
	for i := range data {
		items[i] = *formatContent(&data[i])
	}
	page := req.Page
	if page <= 0 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 10
	}
	Resp.Succ(c, inout.ContentListResponse{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Items:    items,
	})
}

// GetContentDetail 内容详情，附带命中关键词和针对该内容的举报
func GetContentDetail(c *gin.Context) {
	var req inout.GetContentDetailReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	content, err := auditService.GetContent(req.ID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	matched, err := audit_service.MatchedKeywords(content.InputText+"\n"+content.OutputText, content.MachineAuditResult)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	reports, err := reportService.GetReportsByContent(content.ID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	reportItems := make([]inout.ReportItem, len(reports))
	for i := range reports {
		reportItems[i] = *formatReport(&reports[i])
	}

	Resp.Succ(c, inout.ContentDetailResponse{
		Content:         *formatContent(content),
		MatchedKeywords: matched,
		Reports:         reportItems,
	})
}

// formatContent 模型转响应条目
func formatContent(content *audit_model.GeneratedContent) *inout.ContentItem {
	item := &inout.ContentItem{
		ID:                 content.ID,
		UserID:             content.UserID,
		InputText:          content.InputText,
		OutputText:         content.OutputText,
		MachineAuditResult: int(content.MachineAuditResult),
		MachineAuditTime:   content.MachineAuditTime.Format("2006-01-02 15:04:05"),
		NeedManualAudit:    content.NeedManualAudit(),
	}
	if content.ManualAuditResult != nil {
		result := int(*content.ManualAuditResult)
		item.ManualAuditResult = &result
	}
	if content.ManualAuditTime != nil {
		item.ManualAuditTime = content.ManualAuditTime.Format("2006-01-02 15:04:05")
	}
	return item
}
