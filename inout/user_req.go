package inout

// UserActionReq 封禁/解封用户请求
type UserActionReq struct {
	UserID   string `json:"user_id" binding:"required"`
	Reason   string `json:"reason"`
	Operator string `json:"operator" binding:"required"`
}

// GetViolationListReq 违规记录查询
type GetViolationListReq struct {
	UserID string `form:"user_id" binding:"required"`
}

// ViolationItem 违规记录条目
type ViolationItem struct {
	ID               int    `json:"id"`
	UserID           string `json:"user_id"`
	ViolationTime    string `json:"violation_time"`
	ViolationContent string `json:"violation_content"`
	ViolationType    int    `json:"violation_type"`
	ProcessResult    string `json:"process_result"`
	ProcessTime      string `json:"process_time"`
	ProcessedBy      string `json:"processed_by"`
}
