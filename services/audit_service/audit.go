package audit_service

import (
	"log"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/monitoring"
)

type AuditService struct{}

var auditViolation = &ViolationService{}
var auditUserManage = &UserManageService{}

// MachineAudit 机器审核：对输入和输出分别分级，取较高者作为最终风险等级
// 高风险内容直接写违规记录并封禁账号，不经人工
func (s *AuditService) MachineAudit(inputText, outputText, userID string) (*audit_model.GeneratedContent, error) {
	inputRisk, err := ClassifyText(inputText)
	if err != nil {
		return nil, err
	}
	outputRisk, err := ClassifyText(outputText)
	if err != nil {
		return nil, err
	}
	finalRisk := audit_model.HigherRisk(inputRisk, outputRisk)

	content := audit_model.GeneratedContent{
		UserID:             userID,
		InputText:          inputText,
		OutputText:         outputText,
		MachineAuditResult: finalRisk,
		MachineAuditTime:   time.Now(),
	}
	if err := db.Dao.Create(&content).Error; err != nil {
		return nil, err
	}
	monitoring.RecordMachineAudit(finalRisk)

	if finalRisk == audit_model.RiskLevelHigh {
		snapshot := inputText + "\n" + outputText
		if _, err := auditViolation.Record(userID, snapshot, audit_model.ViolationTypeMachineHighRisk, "系统自动封禁账号", "system"); err != nil {
			return nil, err
		}
		if err := auditUserManage.markUserStatus(userID, audit_model.UserStatusDisabled); err != nil {
			return nil, err
		}
		log.Printf("机器审核命中高风险，已自动封禁用户并记录违规 - 用户: %s, 内容ID: %d", userID, content.ID)
	}

	return &content, nil
}

// ManualAudit 人工审核，写入审核结论
// 允许重复审核，后一次结论覆盖前一次
func (s *AuditService) ManualAudit(contentID int, result audit_model.AuditResult, operator string) (*audit_model.GeneratedContent, error) {
	var content audit_model.GeneratedContent
	if err := db.Dao.Where("id = ?", contentID).First(&content).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	content.ManualAuditResult = &result
	content.ManualAuditTime = &now
	if err := db.Dao.Save(&content).Error; err != nil {
		return nil, err
	}
	monitoring.RecordManualAudit(result)

	// 删除结论落违规记录；通过和修改只记录结论本身
	// 这里的删除是状态标记，内容行本身不移除
	if result == audit_model.AuditResultDelete {
		snapshot := content.InputText + "\n" + content.OutputText
		if _, err := auditViolation.Record(content.UserID, snapshot, audit_model.ViolationTypeManualDelete, "内容已删除", operator); err != nil {
			return nil, err
		}
	}

	return &content, nil
}

// GetContent 查询单条内容
func (s *AuditService) GetContent(contentID int) (*audit_model.GeneratedContent, error) {
	var content audit_model.GeneratedContent
	if err := db.Dao.Where("id = ?", contentID).First(&content).Error; err != nil {
		return nil, err
	}
	return &content, nil
}

// GetPendingList 待人工审核队列：中风险且无人工结论，按机器审核时间正序（先进先审）
func (s *AuditService) GetPendingList(page, pageSize int) ([]audit_model.GeneratedContent, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	query := db.Dao.Model(&audit_model.GeneratedContent{}).
		Where("machine_audit_result = ? AND manual_audit_result IS NULL", audit_model.RiskLevelMedium)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var data []audit_model.GeneratedContent
	offset := (page - 1) * pageSize
	err := query.Order("machine_audit_time asc, id asc").Offset(offset).Limit(pageSize).Find(&data).Error
	if err != nil {
		return nil, 0, err
	}
	return data, total, nil
}
