package audit_service

import (
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/monitoring"
)

type ViolationService struct{}

// Record 追加一条违规记录
// 违规记录只增不改，内容以文本快照形式保存
func (s *ViolationService) Record(userID, content string, vtype audit_model.ViolationType, processResult, processedBy string) (*audit_model.ViolationRecord, error) {
	now := time.Now()
	record := audit_model.ViolationRecord{
		UserID:           userID,
		ViolationTime:    now,
		ViolationContent: content,
		ViolationType:    vtype,
		ProcessResult:    processResult,
		ProcessTime:      now,
		ProcessedBy:      processedBy,
	}
	if err := db.Dao.Create(&record).Error; err != nil {
		return nil, err
	}
	monitoring.RecordViolation(vtype)
	return &record, nil
}

// ListByUser 查询用户的违规历史，按违规时间倒序
func (s *ViolationService) ListByUser(userID string) ([]audit_model.ViolationRecord, error) {
	var records []audit_model.ViolationRecord
	err := db.Dao.Where("user_id = ?", userID).Order("violation_time desc, id desc").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// CountByUser 统计用户的违规次数
func (s *ViolationService) CountByUser(userID string) (int64, error) {
	var total int64
	err := db.Dao.Model(&audit_model.ViolationRecord{}).Where("user_id = ?", userID).Count(&total).Error
	return total, err
}
