package audit_model

// RiskLevel 内容风险等级，数值越大风险越高
type RiskLevel int

const (
	RiskLevelNone   RiskLevel = 0 // 无风险
	RiskLevelLow    RiskLevel = 1 // 低风险
	RiskLevelMedium RiskLevel = 2 // 中风险
	RiskLevelHigh   RiskLevel = 3 // 高风险
)

// HigherRisk 返回两个风险等级中较高的一个
func HigherRisk(a, b RiskLevel) RiskLevel {
	if a >= b {
		return a
	}
	return b
}

// String 风险等级的中文描述
func (r RiskLevel) String() string {
	switch r {
	case RiskLevelNone:
		return "无风险"
	case RiskLevelLow:
		return "低风险"
	case RiskLevelMedium:
		return "中风险"
	case RiskLevelHigh:
		return "高风险"
	default:
		return "未知"
	}
}

// AuditResult 人工审核结论
type AuditResult int

const (
	AuditResultPass   AuditResult = 1 // 通过
	AuditResultModify AuditResult = 2 // 修改后通过
	AuditResultDelete AuditResult = 3 // 删除
)

// ReportStatus 举报处理状态
type ReportStatus int

const (
	ReportStatusPending    ReportStatus = 0 // 待处理
	ReportStatusProcessing ReportStatus = 1 // 处理中
	ReportStatusCompleted  ReportStatus = 2 // 已处理
)

// ViolationType 违规记录类型
type ViolationType int

const (
	ViolationTypeMachineHighRisk ViolationType = 1 // 机器审核高风险
	ViolationTypeManualDelete    ViolationType = 2 // 人工审核删除
	ViolationTypeUserReport      ViolationType = 3 // 用户举报
	ViolationTypeRepeated        ViolationType = 4 // 多次违规
)
