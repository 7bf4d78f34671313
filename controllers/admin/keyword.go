package admin

import (
	"strconv"

	"aigc-audit-admin/inout"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var keywordService = &audit_service.KeywordService{}

// AddKeyword 新增风险关键词
func AddKeyword(c *gin.Context) {
	var req inout.AddKeywordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	id, err := keywordService.AddKeyword(req)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, id)
}

// UpdateKeyword 更新风险关键词
func UpdateKeyword(c *gin.Context) {
	var req inout.UpdateKeywordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	if err := keywordService.UpdateKeyword(req); err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, nil)
}

// DeleteKeyword 删除风险关键词
func DeleteKeyword(c *gin.Context) {
	idStr := c.Query("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		Resp.Err(c, response.INVALID_PARAMS, "id参数错误")
		return
	}
	if err := keywordService.DeleteKeyword(id); err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, nil)
}

// GetKeywordList 关键词列表
func GetKeywordList(c *gin.Context) {
	var req inout.GetKeywordListReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	data, err := keywordService.GetKeywordList(req)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, data)
}

// RefreshKeywordCache 手动刷新关键词缓存
func RefreshKeywordCache(c *gin.Context) {
	if err := audit_service.RefreshKeywordCache(); err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}
	Resp.Succ(c, nil)
}
