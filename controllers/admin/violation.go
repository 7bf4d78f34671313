package admin

import (
	"aigc-audit-admin/inout"
	"aigc-audit-admin/pkg/response"
	"aigc-audit-admin/services/audit_service"

	"github.com/gin-gonic/gin"
)

var violationService = &audit_service.ViolationService{}

// GetViolationList 按用户查询违规记录
func GetViolationList(c *gin.Context) {
	var req inout.GetViolationListReq
	if err := c.ShouldBind(&req); err != nil {
		Resp.Err(c, response.INVALID_PARAMS, err.Error())
		return
	}
	records, err := violationService.ListByUser(req.UserID)
	if err != nil {
		Resp.Err(c, errCode(err), err.Error())
		return
	}

	items := make([]inout.ViolationItem, len(records))
	for i, r := range records {
		items[i] = inout.ViolationItem{
			ID:               r.ID,
			UserID:           r.UserID,
			ViolationTime:    r.ViolationTime.Format("2006-01-02 15:04:05"),
			ViolationContent: r.ViolationContent,
			ViolationType:    int(r.ViolationType),
			ProcessResult:    r.ProcessResult,
			ProcessTime:      r.ProcessTime.Format("2006-01-02 15:04:05"),
			ProcessedBy:      r.ProcessedBy,
		}
	}
	Resp.Succ(c, items)
}
