package audit_service

import (
	"strings"
	"sync"

	"aigc-audit-admin/db"
	"aigc-audit-admin/model/audit_model"
)

var (
	keywordCache     map[audit_model.RiskLevel][]string
	keywordCacheMu   sync.RWMutex
	keywordCacheInit bool
)

// initKeywordCache 初始化风险关键词缓存，按等级分组
func initKeywordCache() error {
	keywordCacheMu.RLock()
	ready := keywordCacheInit
	keywordCacheMu.RUnlock()
	if ready {
		return nil
	}

	keywordCacheMu.Lock()
	defer keywordCacheMu.Unlock()

	if keywordCacheInit {
		return nil
	}
	return reloadKeywordCacheLocked()
}

func reloadKeywordCacheLocked() error {
	var keywords []audit_model.RiskKeyword
	if err := db.Dao.Find(&keywords).Error; err != nil {
		return err
	}

	cache := map[audit_model.RiskLevel][]string{
		audit_model.RiskLevelLow:    {},
		audit_model.RiskLevelMedium: {},
		audit_model.RiskLevelHigh:   {},
	}
	for _, kw := range keywords {
		cache[kw.RiskLevel] = append(cache[kw.RiskLevel], kw.Keyword)
	}

	keywordCache = cache
	keywordCacheInit = true
	return nil
}

// RefreshKeywordCache 刷新关键词缓存，关键词变更后调用
func RefreshKeywordCache() error {
	keywordCacheMu.Lock()
	defer keywordCacheMu.Unlock()
	return reloadKeywordCacheLocked()
}

// ClassifyText 对文本做风险分级
// 关键词匹配为区分大小写的子串包含，同一关键词出现多次只计一次
// 判定规则自上而下：命中任一高风险词即高风险，其次中风险、低风险，否则无风险
func ClassifyText(text string) (audit_model.RiskLevel, error) {
	if err := initKeywordCache(); err != nil {
		return audit_model.RiskLevelNone, err
	}

	keywordCacheMu.RLock()
	defer keywordCacheMu.RUnlock()

	levels := []audit_model.RiskLevel{
		audit_model.RiskLevelHigh,
		audit_model.RiskLevelMedium,
		audit_model.RiskLevelLow,
	}
	for _, level := range levels {
		for _, word := range keywordCache[level] {
			if word != "" && strings.Contains(text, word) {
				return level, nil
			}
		}
	}
	return audit_model.RiskLevelNone, nil
}

// MatchedKeywords 返回文本命中的指定等级关键词，供审核详情展示
func MatchedKeywords(text string, level audit_model.RiskLevel) ([]string, error) {
	if err := initKeywordCache(); err != nil {
		return nil, err
	}

	keywordCacheMu.RLock()
	defer keywordCacheMu.RUnlock()

	matched := make([]string, 0)
	for _, word := range keywordCache[level] {
		if word != "" && strings.Contains(text, word) {
			matched = append(matched, word)
		}
	}
	return matched, nil
}
