package audit_model

import "time"

// RiskKeyword 风险关键词配置
type RiskKeyword struct {
	ID          int       `json:"id" gorm:"primarykey"`
	Keyword     string    `json:"keyword" gorm:"size:100;not null;uniqueIndex"` // 关键词
	RiskLevel   RiskLevel `json:"risk_level" gorm:"type:tinyint;not null"`      // 风险等级：1低 2中 3高
	Category    string    `json:"category" gorm:"size:50;index"`                // 分类
	Description string    `json:"description" gorm:"size:200"`                  // 说明
	UpdateTime  time.Time `json:"update_time"`                                  // 更新时间
	AddedBy     string    `json:"added_by" gorm:"size:64"`                      // 添加人
}

// TableName 指定表名
func (RiskKeyword) TableName() string {
	return "risk_keywords"
}
