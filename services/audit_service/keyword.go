package audit_service

import (
	"time"

	"aigc-audit-admin/db"
	"aigc-audit-admin/inout"
	"aigc-audit-admin/model/audit_model"
)

type KeywordService struct{}

// AddKeyword 新增风险关键词并刷新分类缓存
func (s *KeywordService) AddKeyword(req inout.AddKeywordReq) (int, error) {
	data := audit_model.RiskKeyword{
		Keyword:     req.Keyword,
		RiskLevel:   audit_model.RiskLevel(req.RiskLevel),
		Category:    req.Category,
		Description: req.Description,
		UpdateTime:  time.Now(),
		AddedBy:     req.AddedBy,
	}
	if err := db.Dao.Create(&data).Error; err != nil {
		return 0, err
	}
	if err := RefreshKeywordCache(); err != nil {
		return 0, err
	}
	return data.ID, nil
}

// UpdateKeyword 更新关键词，非空字段生效
func (s *KeywordService) UpdateKeyword(req inout.UpdateKeywordReq) error {
	var data audit_model.RiskKeyword
	if err := db.Dao.Where("id = ?", req.ID).First(&data).Error; err != nil {
		return err
	}

	if req.Keyword != "" {
		data.Keyword = req.Keyword
	}
	if req.RiskLevel != 0 {
		data.RiskLevel = audit_model.RiskLevel(req.RiskLevel)
	}
	if req.Category != "" {
		data.Category = req.Category
	}
	if req.Description != "" {
		data.Description = req.Description
	}
	data.UpdateTime = time.Now()

	if err := db.Dao.Save(&data).Error; err != nil {
		return err
	}
	return RefreshKeywordCache()
}

// DeleteKeyword 删除关键词
func (s *KeywordService) DeleteKeyword(id int) error {
	if err := db.Dao.Where("id = ?", id).Delete(&audit_model.RiskKeyword{}).Error; err != nil {
		return err
	}
	return RefreshKeywordCache()
}

// GetKeywordList 分页查询关键词，支持按等级和分类过滤
func (s *KeywordService) GetKeywordList(req inout.GetKeywordListReq) (*inout.KeywordListResponse, error) {
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}

	query := db.Dao.Model(&audit_model.RiskKeyword{})
	if req.RiskLevel != 0 {
		query = query.Where("risk_level = ?", req.RiskLevel)
	}
	if req.Category != "" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Search != "" {
		query = query.Where("keyword LIKE ?", "%"+req.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	var data []audit_model.RiskKeyword
	offset := (req.Page - 1) * req.PageSize
	err := query.Order("update_time desc, id desc").Offset(offset).Limit(req.PageSize).Find(&data).Error
	if err != nil {
		return nil, err
	}

	items := make([]inout.KeywordItem, len(data))
	for i, item := range data {
		items[i] = inout.KeywordItem{
			ID:          item.ID,
			Keyword:     item.Keyword,
			RiskLevel:   int(item.RiskLevel),
			Category:    item.Category,
			Description: item.Description,
			UpdateTime:  item.UpdateTime.Format("2006-01-02 15:04:05"),
			AddedBy:     item.AddedBy,
		}
	}
	return &inout.KeywordListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    items,
	}, nil
}
