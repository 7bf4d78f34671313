package inout

// AddKeywordReq 新增关键词请求
// risk_level 取值：1低 2中 3高
type AddKeywordReq struct {
	Keyword     string `json:"keyword" binding:"required"`
	RiskLevel   int    `json:"risk_level" binding:"required,oneof=1 2 3"`
	Category    string `json:"category"`
	Description string `json:"description"`
	AddedBy     string `json:"added_by"`
}

// UpdateKeywordReq 更新关键词请求，非空字段生效
type UpdateKeywordReq struct {
	ID          int    `json:"id" binding:"required"`
	Keyword     string `json:"keyword" binding:"omitempty"`
	RiskLevel   int    `json:"risk_level" binding:"omitempty,oneof=1 2 3"`
	Category    string `json:"category" binding:"omitempty"`
	Description string `json:"description" binding:"omitempty"`
}

// GetKeywordListReq 关键词列表查询
type GetKeywordListReq struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	RiskLevel int    `form:"risk_level" binding:"omitempty,oneof=1 2 3"`
	Category  string `form:"category"`
	Search    string `form:"search"`
}

// KeywordItem 关键词条目
type KeywordItem struct {
	ID          int    `json:"id"`
	Keyword     string `json:"keyword"`
	RiskLevel   int    `json:"risk_level"`
	Category    string `json:"category"`
	Description string `json:"description"`
	UpdateTime  string `json:"update_time"`
	AddedBy     string `json:"added_by"`
}

// KeywordListResponse 关键词分页响应
type KeywordListResponse struct {
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Items    []KeywordItem `json:"items"`
}
