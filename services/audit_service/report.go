package audit_service

import (
	"log"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/monitoring"
)

// 举报核实为不实时处理结果中携带的标记
const falseReportMarker = "不属实"

// 恶意举报判定：30天内不实举报达到5次
const (
	maliciousReportWindow    = 30 * 24 * time.Hour
	maliciousReportThreshold = 5
)

type ReportService struct{}

// SubmitReport 提交举报，初始状态为待处理
// 举报原因允许为空，由处理人自行核实
func (s *ReportService) SubmitReport(contentID int, reporterUserID, reason string) (*audit_model.Report, error) {
	report := audit_model.Report{
		ReporterUserID: reporterUserID,
		ContentID:      contentID,
		ReportTime:     time.Now(),
		ReportReason:   reason,
		ProcessStatus:  audit_model.ReportStatusPending,
	}
	if err := db.Dao.Create(&report).Error; err != nil {
		return nil, err
	}
	monitoring.RecordReportSubmitted()
	return &report, nil
}

// StartProcessing 开始处理举报：待处理 -> 处理中
// 非待处理状态下不做任何变更，只记告警日志，防止重复领取
func (s *ReportService) StartProcessing(reportID int, operator string) (*audit_model.Report, error) {
	var report audit_model.Report
	if err := db.Dao.Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}

	if report.ProcessStatus != audit_model.ReportStatusPending {
		log.Printf("举报已被领取或已处理，跳过 - 举报ID: %d, 当前状态: %d, 操作人: %s", report.ID, report.ProcessStatus, operator)
		return &report, nil
	}

	report.ProcessStatus = audit_model.ReportStatusProcessing
	if err := db.Dao.Save(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// ProcessReport 完成举报处理，无条件置为已处理并写入处理结果
func (s *ReportService) ProcessReport(reportID int, resultText, operator string) (*audit_model.Report, error) {
	var report audit_model.Report
	if err := db.Dao.Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	report.ProcessStatus = audit_model.ReportStatusCompleted
	report.ProcessResult = &resultText
	report.ProcessTime = &now
	if err := db.Dao.Save(&report).Error; err != nil {
		return nil, err
	}
	log.Printf("举报处理完成 - 举报ID: %d, 操作人: %s", report.ID, operator)
	return &report, nil
}

// CheckMaliciousReporting 恶意举报检测
// 统计该用户近30天内已处理且核实不属实的举报数，达到阈值判定为恶意举报
func (s *ReportService) CheckMaliciousReporting(userID string) (bool, error) {
	since := time.Now().Add(-maliciousReportWindow)

	var count int64
	err := db.Dao.Model(&audit_model.Report{}).
		Where("reporter_user_id = ?", userID).
		Where("report_time >= ?", since).
		Where("process_status = ?", audit_model.ReportStatusCompleted).
		Where("process_result LIKE ?", "%"+falseReportMarker+"%").
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count >= maliciousReportThreshold, nil
}

// GetReport 查询单条举报
func (s *ReportService) GetReport(reportID int) (*audit_model.Report, error) {
	var report audit_model.Report
	if err := db.Dao.Where("id = ?", reportID).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReportList 分页查询举报列表，支持按状态过滤
func (s *ReportService) GetReportList(page, pageSize int, status *audit_model.ReportStatus) ([]audit_model.Report, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}

	query := db.Dao.Model(&audit_model.Report{})
	if status != nil {
		query = query.Where("process_status = ?", *status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var data []audit_model.Report
	offset := (page - 1) * pageSize
	err := query.Order("report_time desc, id desc").Offset(offset).Limit(pageSize).Find(&data).Error
	if err != nil {
		return nil, 0, err
	}
	return data, total, nil
}

// GetReportsByContent 查询针对某条内容的全部举报
func (s *ReportService) GetReportsByContent(contentID int) ([]audit_model.Report, error) {
	var data []audit_model.Report
	err := db.Dao.Where("content_id = ?", contentID).Order("report_time desc").Find(&data).Error
	if err != nil {
		return nil, err
	}
	return data, nil
}
