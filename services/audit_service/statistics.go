package audit_service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/inout"
	"aigc-audit-admin/model/audit_model"
	"aigc-audit-admin/pkg/config"
	"aigc-audit-admin/redis"
)

const (
	dashboardCacheKey = "audit:statistics:dashboard"
	dashboardCacheTTL = 60 * time.Second
)

// 人工审核平均耗时默认统计窗口
const defaultLatencyWindowDays = 7

type StatisticsService struct{}

// GetDashboard 审核看板汇总，结果缓存60秒
func (s *StatisticsService) GetDashboard() (*inout.DashboardResponse, error) {
	ctx := context.Background()

	// 先查缓存，缓存不可用时直接回源
	if client := redis.GetClient(); client != nil {
		cached, err := client.Get(ctx, dashboardCacheKey).Result()
		if err == nil && cached != "" {
			var resp inout.DashboardResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	resp := &inout.DashboardResponse{}

	riskCounts, err := s.countContentByRiskLevel()
	if err != nil {
		return nil, err
	}
	resp.ContentByRiskLevel = riskCounts

	statusCounts, err := s.countReportByStatus()
	if err != nil {
		return nil, err
	}
	resp.ReportByStatus = statusCounts

	categoryCounts, err := s.countKeywordByCategory()
	if err != nil {
		return nil, err
	}
	resp.KeywordByCategory = categoryCounts

	var pendingTotal int64
	err = db.Dao.Model(&audit_model.GeneratedContent{}).
		Where("machine_audit_result = ? AND manual_audit_result IS NULL", audit_model.RiskLevelMedium).
		Count(&pendingTotal).Error
	if err != nil {
		return nil, err
	}
	resp.PendingManualAudit = pendingTotal

	var violationTotal int64
	if err := db.Dao.Model(&audit_model.ViolationRecord{}).Count(&violationTotal).Error; err != nil {
		return nil, err
	}
	resp.ViolationTotal = violationTotal

	latency, err := s.AverageManualAuditLatency(config.GetConfig().Audit.LatencyWindowDays)
	if err != nil {
		return nil, err
	}
	resp.AvgManualAuditSeconds = latency

	if client := redis.GetClient(); client != nil {
		if payload, err := json.Marshal(resp); err == nil {
			if err := client.Set(ctx, dashboardCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
				log.Printf("看板缓存写入失败: %v", err)
			}
		}
	}
	return resp, nil
}

// countContentByRiskLevel 按风险等级统计内容数
func (s *StatisticsService) countContentByRiskLevel() (map[string]int64, error) {
	type row struct {
		MachineAuditResult audit_model.RiskLevel
		Total              int64
	}
	var rows []row
	err := db.Dao.Model(&audit_model.GeneratedContent{}).
		Select("machine_audit_result, count(*) as total").
		Group("machine_audit_result").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, r := range rows {
		counts[r.MachineAuditResult.String()] = r.Total
	}
	return counts, nil
}

// countReportByStatus 按处理状态统计举报数
func (s *StatisticsService) countReportByStatus() (map[string]int64, error) {
	type row struct {
		ProcessStatus audit_model.ReportStatus
		Total         int64
	}
	var rows []row
	err := db.Dao.Model(&audit_model.Report{}).
		Select("process_status, count(*) as total").
		Group("process_status").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := map[audit_model.ReportStatus]string{
		audit_model.ReportStatusPending:    "待处理",
		audit_model.ReportStatusProcessing: "处理中",
		audit_model.ReportStatusCompleted:  "已处理",
	}
	counts := make(map[string]int64)
	for _, r := range rows {
		counts[names[r.ProcessStatus]] = r.Total
	}
	return counts, nil
}

// countKeywordByCategory 按分类统计关键词数
func (s *StatisticsService) countKeywordByCategory() (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	err := db.Dao.Model(&audit_model.RiskKeyword{}).
		Select("category, count(*) as total").
		Group("category").Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, r := range rows {
		counts[r.Category] = r.Total
	}
	return counts, nil
}

// AverageManualAuditLatency 人工审核平均耗时，单位秒
// 只统计窗口期内有人工结论的内容，窗口期内无样本返回0
func (s *StatisticsService) AverageManualAuditLatency(windowDays int) (float64, error) {
	if windowDays <= 0 {
		windowDays = defaultLatencyWindowDays
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	var contents []audit_model.GeneratedContent
	err := db.Dao.Where("manual_audit_time IS NOT NULL AND manual_audit_time >= ?", since).
		Find(&contents).Error
	if err != nil {
		return 0, err
	}
	if len(contents) == 0 {
		return 0, nil
	}

	var totalSeconds float64
	for _, c := range contents {
		totalSeconds += c.ManualAuditTime.Sub(c.MachineAuditTime).Seconds()
	}
	return totalSeconds / float64(len(contents)), nil
}

// GetReportTrend 近N天每日举报量，缺数据的日期补0
func (s *StatisticsService) GetReportTrend(days int) ([]inout.ReportTrendItem, error) {
	if days <= 0 {
		days = config.GetConfig().Audit.TrendDays
	}
	if days <= 0 {
		days = 7
	}
	now := time.Now()
	start := now.AddDate(0, 0, -(days - 1))
	startDay := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())

	var reports []audit_model.Report
	err := db.Dao.Where("report_time >= ?", startDay).Find(&reports).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, r := range reports {
		counts[r.ReportTime.Format("2006-01-02")]++
	}

	items := make([]inout.ReportTrendItem, 0, days)
	for i := 0; i < days; i++ {
		day := startDay.AddDate(0, 0, i).Format("2006-01-02")
		items = append(items, inout.ReportTrendItem{
			Date:  day,
			Count: counts[day],
		})
	}
	return items, nil
}
