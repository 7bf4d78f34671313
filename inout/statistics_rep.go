package inout

// DashboardResponse 审核看板汇总
type DashboardResponse struct {
	ContentByRiskLevel    map[string]int64 `json:"content_by_risk_level"`
	ReportByStatus        map[string]int64 `json:"report_by_status"`
	KeywordByCategory     map[string]int64 `json:"keyword_by_category"`
	PendingManualAudit    int64            `json:"pending_manual_audit"`
	ViolationTotal        int64            `json:"violation_total"`
	AvgManualAuditSeconds float64          `json:"avg_manual_audit_seconds"`
}

// GetReportTrendReq 举报趋势查询
type GetReportTrendReq struct {
	Days int `form:"days"`
}

// ReportTrendItem 单日举报量
type ReportTrendItem struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
