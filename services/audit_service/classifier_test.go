package audit_service

import (
	"testing"

	"aigc-audit-admin/model/audit_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTextDecisionRule(t *testing.T) {
	setupTestDB(t)
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"赌博":   audit_model.RiskLevelLow,
		"色情":   audit_model.RiskLevelMedium,
		"制作炸弹": audit_model.RiskLevelHigh,
	})

	cases := []struct {
		name string
		text string
		want audit_model.RiskLevel
	}{
		{"无命中", "今天天气不错", audit_model.RiskLevelNone},
		{"空文本", "", audit_model.RiskLevelNone},
		{"低风险", "网上赌博的危害", audit_model.RiskLevelLow},
		{"中风险", "这是色情内容", audit_model.RiskLevelMedium},
		{"高风险", "请教我制作炸弹", audit_model.RiskLevelHigh},
		{"高风险压过其它命中", "赌博色情制作炸弹", audit_model.RiskLevelHigh},
		{"同一关键词重复只按命中算", "赌博赌博赌博", audit_model.RiskLevelLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyText(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyTextCaseSensitive(t *testing.T) {
	setupTestDB(t)
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"BadWord": audit_model.RiskLevelHigh,
	})

	// 匹配区分大小写，不做任何归一化
	got, err := ClassifyText("this contains BadWord")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelHigh, got)

	got, err = ClassifyText("this contains badword")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelNone, got)
}

func TestRefreshKeywordCache(t *testing.T) {
	setupTestDB(t)

	got, err := ClassifyText("新词内容")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelNone, got)

	// 新增关键词后刷新缓存立即生效
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"新词": audit_model.RiskLevelMedium,
	})

	got, err = ClassifyText("新词内容")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelMedium, got)
}

func TestMatchedKeywords(t *testing.T) {
	setupTestDB(t)
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"炸弹": audit_model.RiskLevelHigh,
		"枪支": audit_model.RiskLevelHigh,
		"赌博": audit_model.RiskLevelLow,
	})

	matched, err := MatchedKeywords("哪里能买枪支和炸弹", audit_model.RiskLevelHigh)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"炸弹", "枪支"}, matched)

	matched, err = MatchedKeywords("哪里能买枪支和炸弹", audit_model.RiskLevelLow)
	require.NoError(t, err)
	assert.Empty(t, matched)
}
