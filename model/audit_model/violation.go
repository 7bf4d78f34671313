package audit_model

import "time"

// ViolationRecord 违规记录，只增不改
// 违规内容以文本快照保存，内容后续被修改或删除不影响违规历史
type ViolationRecord struct {
	ID               int           `json:"id" gorm:"primarykey"`
	UserID           string        `json:"user_id" gorm:"size:64;not null;index"`     // 违规用户
	ViolationTime    time.Time     `json:"violation_time"`                            // 违规时间
	ViolationContent string        `json:"violation_content" gorm:"type:text"`        // 违规内容快照
	ViolationType    ViolationType `json:"violation_type" gorm:"type:tinyint;index"`  // 违规类型
	ProcessResult    string        `json:"process_result" gorm:"size:200"`            // 处理结果
	ProcessTime      time.Time     `json:"process_time"`                              // 处理时间
	ProcessedBy      string        `json:"processed_by" gorm:"size:64"`               // 处理人，system表示系统自动
}

// TableName 指定表名
func (ViolationRecord) TableName() string {
	return "violation_records"
}
