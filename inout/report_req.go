package inout

// SubmitReportReq 提交举报请求，原因允许为空
type SubmitReportReq struct {
	ContentID      int    `json:"content_id" binding:"required"`
	ReporterUserID string `json:"reporter_user_id" binding:"required"`
	Reason         string `json:"reason"`
}

// StartProcessingReq 领取举报请求
type StartProcessingReq struct {
	ReportID int    `json:"report_id" binding:"required"`
	Operator string `json:"operator" binding:"required"`
}

// ProcessReportReq 完成举报处理请求
type ProcessReportReq struct {
	ReportID int    `json:"report_id" binding:"required"`
	Result   string `json:"result" binding:"required"`
	Operator string `json:"operator" binding:"required"`
}

// GetReportListReq 举报列表查询
// status 为空时查询全部，取值：0待处理 1处理中 2已处理
type GetReportListReq struct {
	Page     int  `form:"page"`
	PageSize int  `form:"page_size"`
	Status   *int `form:"status" binding:"omitempty,oneof=0 1 2"`
}

// GetReportsByContentReq 按内容查询举报请求
type GetReportsByContentReq struct {
	ContentID int `form:"content_id" binding:"required"`
}

// MaliciousCheckReq 恶意举报检测请求
type MaliciousCheckReq struct {
	UserID string `form:"user_id" binding:"required"`
}

// ReportItem 举报条目
type ReportItem struct {
	ID             int    `json:"id"`
	ReporterUserID string `json:"reporter_user_id"`
	ContentID      int    `json:"content_id"`
	ReportTime     string `json:"report_time"`
	ReportReason   string `json:"report_reason"`
	ProcessStatus  int    `json:"process_status"`
	ProcessTime    string `json:"process_time,omitempty"`
	ProcessResult  string `json:"process_result,omitempty"`
}

// ReportListResponse 举报分页响应
type ReportListResponse struct {
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Items    []ReportItem `json:"items"`
}
