package audit_model

import "time"

// Report 用户举报记录
type Report struct {
	ID             int          `json:"id" gorm:"primarykey"`
	ReporterUserID string       `json:"reporter_user_id" gorm:"size:64;not null;index"`  // 举报人
	ContentID      int          `json:"content_id" gorm:"not null;index"`                // 被举报内容
	ReportTime     time.Time    `json:"report_time"`                                     // 举报时间
	ReportReason   string       `json:"report_reason" gorm:"size:500"`                   // 举报原因
	ProcessStatus  ReportStatus `json:"process_status" gorm:"type:tinyint;default:0;index"` // 处理状态：0待处理 1处理中 2已处理
	ProcessTime    *time.Time   `json:"process_time"`                                    // 处理时间
	ProcessResult  *string      `json:"process_result" gorm:"size:500"`                  // 处理结果
}

// TableName 指定表名
func (Report) TableName() string {
	return "reports"
}
