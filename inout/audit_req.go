package inout

// MachineAuditReq 机器审核请求
// 输入输出允许为空串，空文本按无风险分级
type MachineAuditReq struct {
	UserID     string `json:"user_id" binding:"required"`
	InputText  string `json:"input_text"`
	OutputText string `json:"output_text"`
}

// ManualAuditReq 人工审核请求
// result 取值：1通过 2修改 3删除，非法取值在绑定层拒绝
type ManualAuditReq struct {
	ContentID int    `json:"content_id" binding:"required"`
	Result    int    `json:"result" binding:"required,oneof=1 2 3"`
	Operator  string `json:"operator" binding:"required"`
}

// GetPendingListReq 待审核队列查询
type GetPendingListReq struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// GetContentDetailReq 内容详情查询
type GetContentDetailReq struct {
	ID int `form:"id" binding:"required"`
}

// ContentItem 内容条目
type ContentItem struct {
	ID                 int    `json:"id"`
	UserID             string `json:"user_id"`
	InputText          string `json:"input_text"`
	OutputText         string `json:"output_text"`
	MachineAuditResult int    `json:"machine_audit_result"`
	MachineAuditTime   string `json:"machine_audit_time"`
	ManualAuditResult  *int   `json:"manual_audit_result"`
	ManualAuditTime    string `json:"manual_audit_time,omitempty"`
	NeedManualAudit    bool   `json:"need_manual_audit"`
}

// ContentListResponse 内容分页响应
type ContentListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []ContentItem `json:"items"`
}

// ContentDetailResponse 内容详情，附带命中关键词和针对该内容的举报
type ContentDetailResponse struct {
	Content         ContentItem  `json:"content"`
	MatchedKeywords []string     `json:"matched_keywords"`
	Reports         []ReportItem `json:"reports"`
}
