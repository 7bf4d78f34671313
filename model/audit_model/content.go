package audit_model

import "time"

// GeneratedContent AI生成内容记录
type GeneratedContent struct {
	ID                 int          `json:"id" gorm:"primarykey"`
	UserID             string       `json:"user_id" gorm:"size:64;not null;index"`          // 用户标识
	InputText          string       `json:"input_text" gorm:"type:text;not null"`           // 用户输入
	OutputText         string       `json:"output_text" gorm:"type:text;not null"`          // 模型输出
	MachineAuditResult RiskLevel    `json:"machine_audit_result" gorm:"type:tinyint;index"` // 机器审核风险等级
	MachineAuditTime   time.Time    `json:"machine_audit_time"`                             // 机器审核时间
	ManualAuditResult  *AuditResult `json:"manual_audit_result" gorm:"type:tinyint"`        // 人工审核结论，未审核为空
	ManualAuditTime    *time.Time   `json:"manual_audit_time"`                              // 人工审核时间
}

// TableName 指定表名
func (GeneratedContent) TableName() string {
	return "generated_contents"
}

// NeedManualAudit 是否需要人工审核：仅中风险且尚未有人工结论
func (c *GeneratedContent) NeedManualAudit() bool {
	return c.MachineAuditResult == RiskLevelMedium && c.ManualAuditResult == nil
}
