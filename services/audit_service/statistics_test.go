package audit_service

import (
	"testing"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createAuditedContent(t *testing.T, level audit_model.RiskLevel, machineTime time.Time, manualDelay time.Duration) {
	t.Helper()

	content := audit_model.GeneratedContent{
		UserID:             "user-stat",
		InputText:          "输入",
		OutputText:         "输出",
		MachineAuditResult: level,
		MachineAuditTime:   machineTime,
	}
	if manualDelay > 0 {
		result := audit_model.AuditResultPass
		manualTime := machineTime.Add(manualDelay)
		content.ManualAuditResult = &result
		content.ManualAuditTime = &manualTime
	}
	require.NoError(t, db.Dao.Create(&content).Error)
}

func TestGetDashboard(t *testing.T) {
	setupTestDB(t)
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"赌博": audit_model.RiskLevelLow,
		"色情": audit_model.RiskLevelMedium,
	})

	now := time.Now()
	createAuditedContent(t, audit_model.RiskLevelNone, now, 0)
	createAuditedContent(t, audit_model.RiskLevelMedium, now, 0)
	createAuditedContent(t, audit_model.RiskLevelMedium, now, time.Minute)
	createAuditedContent(t, audit_model.RiskLevelHigh, now, 0)

	reportSvc := &ReportService{}
	_, err := reportSvc.SubmitReport(1, "reporter", "原因")
	require.NoError(t, err)

	violationSvc := &ViolationService{}
	_, err = violationSvc.Record("user-stat", "快照", audit_model.ViolationTypeMachineHighRisk, "系统自动封禁账号", "system")
	require.NoError(t, err)

	svc := &StatisticsService{}
	dashboard, err := svc.GetDashboard()
	require.NoError(t, err)

	assert.Equal(t, int64(1), dashboard.ContentByRiskLevel["无风险"])
	assert.Equal(t, int64(2), dashboard.ContentByRiskLevel["中风险"])
	assert.Equal(t, int64(1), dashboard.ContentByRiskLevel["高风险"])
	assert.Equal(t, int64(1), dashboard.ReportByStatus["待处理"])
	assert.Equal(t, int64(2), dashboard.KeywordByCategory["测试"])
	// 中风险2条里1条已有人工结论
	assert.Equal(t, int64(1), dashboard.PendingManualAudit)
	assert.Equal(t, int64(1), dashboard.ViolationTotal)
	assert.InDelta(t, 60.0, dashboard.AvgManualAuditSeconds, 1.0)
}

func TestAverageManualAuditLatencyWindow(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	// 窗口内两条：60秒和180秒
	createAuditedContent(t, audit_model.RiskLevelMedium, now.Add(-time.Hour), time.Minute)
	createAuditedContent(t, audit_model.RiskLevelMedium, now.Add(-2*time.Hour), 3*time.Minute)
	// 窗口外一条不计入
	createAuditedContent(t, audit_model.RiskLevelMedium, now.AddDate(0, 0, -10), 10*time.Minute)
	// 未人工审核的不计入
	createAuditedContent(t, audit_model.RiskLevelMedium, now, 0)

	svc := &StatisticsService{}
	avg, err := svc.AverageManualAuditLatency(7)
	require.NoError(t, err)
	assert.InDelta(t, 120.0, avg, 1.0)
}

func TestAverageManualAuditLatencyNoSamples(t *testing.T) {
	setupTestDB(t)

	svc := &StatisticsService{}
	avg, err := svc.AverageManualAuditLatency(7)
	require.NoError(t, err)
	assert.Zero(t, avg)
}

func TestGetReportTrendFillsMissingDays(t *testing.T) {
	setupTestDB(t)

	now := time.Now()
	newCompletedReport(t, "reporter-t", now, "属实")
	newCompletedReport(t, "reporter-t", now, "属实")
	newCompletedReport(t, "reporter-t", now.AddDate(0, 0, -2), "属实")
	// 窗口外
	newCompletedReport(t, "reporter-t", now.AddDate(0, 0, -10), "属实")

	svc := &StatisticsService{}
	trend, err := svc.GetReportTrend(7)
	require.NoError(t, err)
	require.Len(t, trend, 7)

	byDate := make(map[string]int64)
	for _, item := range trend {
		byDate[item.Date] = item.Count
	}
	assert.Equal(t, int64(2), byDate[now.Format("2006-01-02")])
	assert.Equal(t, int64(1), byDate[now.AddDate(0, 0, -2).Format("2006-01-02")])
	assert.Equal(t, int64(0), byDate[now.AddDate(0, 0, -1).Format("2006-01-02")])
}
