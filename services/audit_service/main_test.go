package audit_service

import (
	"fmt"
	"testing"
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 为单个测试建独立的内存库并替换全局 Dao
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	testDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = testDB.AutoMigrate(
		&audit_model.GeneratedContent{},
		&audit_model.RiskKeyword{},
		&audit_model.Report{},
		&audit_model.ViolationRecord{},
		&audit_model.AppUser{},
	)
	require.NoError(t, err)

	db.Dao = testDB
	require.NoError(t, RefreshKeywordCache())
}

// seedKeywords 写入测试关键词并刷新缓存
func seedKeywords(t *testing.T, keywords map[string]audit_model.RiskLevel) {
	t.Helper()

	for word, level := range keywords {
		kw := audit_model.RiskKeyword{
			Keyword:    word,
			RiskLevel:  level,
			Category:   "测试",
			UpdateTime: time.Now(),
			AddedBy:    "tester",
		}
		require.NoError(t, db.Dao.Create(&kw).Error)
	}
	require.NoError(t, RefreshKeywordCache())
}

// countViolations 统计违规记录数，按类型过滤
func countViolations(t *testing.T, userID string, vtype audit_model.ViolationType) int64 {
	t.Helper()

	var total int64
	err := db.Dao.Model(&audit_model.ViolationRecord{}).
		Where("user_id = ? AND violation_type = ?", userID, vtype).
		Count(&total).Error
	require.NoError(t, err)
	return total
}
