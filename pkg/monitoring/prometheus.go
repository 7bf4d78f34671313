package monitoring

import (
	"strconv"
	"time"

	"aigc-audit-admin/model/audit_model"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 数据库连接指标
	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "当前使用中的数据库连接数",
		},
	)

	// 审核业务指标
	machineAuditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "machine_audits_total",
			Help: "机器审核总数，按风险等级",
		},
		[]string{"risk_level"},
	)

	manualAuditsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "manual_audits_total",
			Help: "人工审核总数，按结论",
		},
		[]string{"result"},
	)

	violationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "violations_total",
			Help: "违规记录总数，按类型",
		},
		[]string{"type"},
	)

	reportsSubmittedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "reports_submitted_total",
			Help: "用户举报提交总数",
		},
	)
)

// PrometheusMiddleware HTTP 请求指标采集中间件
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// UpdateDBConnections 更新数据库连接数指标
func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}

// RecordMachineAudit 记录一次机器审核
func RecordMachineAudit(level audit_model.RiskLevel) {
	machineAuditsTotal.WithLabelValues(strconv.Itoa(int(level))).Inc()
}

// RecordManualAudit 记录一次人工审核
func RecordManualAudit(result audit_model.AuditResult) {
	manualAuditsTotal.WithLabelValues(strconv.Itoa(int(result))).Inc()
}

// RecordViolation 记录一条违规
func RecordViolation(vtype audit_model.ViolationType) {
	violationsTotal.WithLabelValues(strconv.Itoa(int(vtype))).Inc()
}

// RecordReportSubmitted 记录一次举报提交
func RecordReportSubmitted() {
	reportsSubmittedTotal.Inc()
}
