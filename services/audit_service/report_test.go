package audit_service

import (
	"fmt"
	"testing"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitReport(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}
	report, err := svc.SubmitReport(1, "reporter-1", "涉嫌违规")
	require.NoError(t, err)

	assert.NotZero(t, report.ID)
	assert.Equal(t, audit_model.ReportStatusPending, report.ProcessStatus)
	assert.Nil(t, report.ProcessTime)
	assert.Nil(t, report.ProcessResult)

	// 举报原因允许为空
	report, err = svc.SubmitReport(1, "reporter-1", "")
	require.NoError(t, err)
	assert.Equal(t, "", report.ReportReason)
}

func TestStartProcessingGuard(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}
	report, err := svc.SubmitReport(1, "reporter-2", "原因")
	require.NoError(t, err)

	// 待处理 -> 处理中
	report, err = svc.StartProcessing(report.ID, "op-a")
	require.NoError(t, err)
	assert.Equal(t, audit_model.ReportStatusProcessing, report.ProcessStatus)

	// 非待处理状态下是无写入的空操作
	report, err = svc.StartProcessing(report.ID, "op-b")
	require.NoError(t, err)
	assert.Equal(t, audit_model.ReportStatusProcessing, report.ProcessStatus)

	report, err = svc.ProcessReport(report.ID, "举报属实", "op-a")
	require.NoError(t, err)
	report, err = svc.StartProcessing(report.ID, "op-c")
	require.NoError(t, err)
	assert.Equal(t, audit_model.ReportStatusCompleted, report.ProcessStatus)
}

func TestProcessReportUnconditional(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}
	report, err := svc.SubmitReport(2, "reporter-3", "原因")
	require.NoError(t, err)

	// 不经处理中状态也可直接完成
	report, err = svc.ProcessReport(report.ID, "举报不属实", "op-a")
	require.NoError(t, err)

	assert.Equal(t, audit_model.ReportStatusCompleted, report.ProcessStatus)
	require.NotNil(t, report.ProcessResult)
	assert.Equal(t, "举报不属实", *report.ProcessResult)
	assert.NotNil(t, report.ProcessTime)
}

// newCompletedReport 直接构造一条已处理举报，用于窗口测试
func newCompletedReport(t *testing.T, reporter string, reportTime time.Time, result string) {
	t.Helper()

	now := time.Now()
	report := audit_model.Report{
		ReporterUserID: reporter,
		ContentID:      1,
		ReportTime:     reportTime,
		ReportReason:   "测试",
		ProcessStatus:  audit_model.ReportStatusCompleted,
		ProcessTime:    &now,
		ProcessResult:  &result,
	}
	require.NoError(t, db.Dao.Create(&report).Error)
}

func TestCheckMaliciousReportingThreshold(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}

	// 4条近期不实举报不触发
	for i := 0; i < 4; i++ {
		newCompletedReport(t, "reporter-4", time.Now().AddDate(0, 0, -i), "经核实不属实")
	}
	malicious, err := svc.CheckMaliciousReporting("reporter-4")
	require.NoError(t, err)
	assert.False(t, malicious)

	// 第5条触发
	newCompletedReport(t, "reporter-4", time.Now().AddDate(0, 0, -5), "举报内容不属实")
	malicious, err = svc.CheckMaliciousReporting("reporter-4")
	require.NoError(t, err)
	assert.True(t, malicious)
}

func TestCheckMaliciousReportingWindow(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}

	for i := 0; i < 4; i++ {
		newCompletedReport(t, "reporter-5", time.Now().AddDate(0, 0, -i), "不属实")
	}
	// 第5条在31天前，不计入30天窗口
	newCompletedReport(t, "reporter-5", time.Now().AddDate(0, 0, -31), "不属实")

	malicious, err := svc.CheckMaliciousReporting("reporter-5")
	require.NoError(t, err)
	assert.False(t, malicious)
}

func TestCheckMaliciousReportingOnlyCountsFalseCompleted(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}

	// 属实的已处理举报与未处理举报都不计入
	for i := 0; i < 5; i++ {
		newCompletedReport(t, "reporter-6", time.Now(), "举报属实")
	}
	for i := 0; i < 5; i++ {
		_, err := svc.SubmitReport(3, "reporter-6", "不属实") // 原因里的标记不算
		require.NoError(t, err)
	}

	malicious, err := svc.CheckMaliciousReporting("reporter-6")
	require.NoError(t, err)
	assert.False(t, malicious)
}

func TestGetReportsByContent(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}
	_, err := svc.SubmitReport(7, "reporter-a", "原因一")
	require.NoError(t, err)
	_, err = svc.SubmitReport(7, "reporter-b", "原因二")
	require.NoError(t, err)
	_, err = svc.SubmitReport(8, "reporter-a", "别的内容")
	require.NoError(t, err)

	reports, err := svc.GetReportsByContent(7)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, 7, r.ContentID)
	}

	reports, err = svc.GetReportsByContent(999)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestGetReportListFilterByStatus(t *testing.T) {
	setupTestDB(t)

	svc := &ReportService{}
	for i := 0; i < 3; i++ {
		_, err := svc.SubmitReport(i+1, fmt.Sprintf("reporter-%d", i), "原因")
		require.NoError(t, err)
	}
	report, err := svc.SubmitReport(9, "reporter-x", "原因")
	require.NoError(t, err)
	_, err = svc.ProcessReport(report.ID, "属实", "op")
	require.NoError(t, err)

	pending := audit_model.ReportStatusPending
	data, total, err := svc.GetReportList(1, 10, &pending)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, data, 3)

	data, total, err = svc.GetReportList(1, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, data, 4)
}
