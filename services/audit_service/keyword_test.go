package audit_service

import (
	"testing"

	"aigc-audit-admin/inout"
	"aigc-audit-admin/model/audit_model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordCRUDRefreshesClassifier(t *testing.T) {
	setupTestDB(t)

	svc := &KeywordService{}
	id, err := svc.AddKeyword(inout.AddKeywordReq{
		Keyword:   "违禁品",
		RiskLevel: int(audit_model.RiskLevelHigh),
		Category:  "危险品",
		AddedBy:   "op",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	// 新增后立即参与分类
	level, err := ClassifyText("出售违禁品")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelHigh, level)

	// 降级后分类结果跟随
	err = svc.UpdateKeyword(inout.UpdateKeywordReq{ID: id, RiskLevel: int(audit_model.RiskLevelLow)})
	require.NoError(t, err)
	level, err = ClassifyText("出售违禁品")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelLow, level)

	// 删除后不再命中
	require.NoError(t, svc.DeleteKeyword(id))
	level, err = ClassifyText("出售违禁品")
	require.NoError(t, err)
	assert.Equal(t, audit_model.RiskLevelNone, level)
}

func TestGetKeywordList(t *testing.T) {
	setupTestDB(t)
	seedKeywords(t, map[string]audit_model.RiskLevel{
		"赌博": audit_model.RiskLevelLow,
		"色情": audit_model.RiskLevelMedium,
		"炸弹": audit_model.RiskLevelHigh,
	})

	svc := &KeywordService{}
	resp, err := svc.GetKeywordList(inout.GetKeywordListReq{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.Total)
	assert.Len(t, resp.Items, 3)

	resp, err = svc.GetKeywordList(inout.GetKeywordListReq{RiskLevel: int(audit_model.RiskLevelHigh)})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
	assert.Equal(t, "炸弹", resp.Items[0].Keyword)

	resp, err = svc.GetKeywordList(inout.GetKeywordListReq{Search: "赌"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Total)
}
