package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP 请求延迟（秒）
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// 数据库操作延迟（秒）
	StoreOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_op_duration_seconds",
			Help:    "Document store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"operation", "collection"},
	)

	// 任务创建计数
	TaskCreatedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "task_created_count",
			Help: "Total number of tasks created",
		},
	)

	// 通知保存计数
	NotificationSavedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "notification_saved_count",
			Help: "Total number of notifications saved",
		},
	)

	// 认证拒绝计数
	AuthRejectedCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_rejected_count",
			Help: "Total number of requests rejected by the auth gate",
		},
	)
)

// RecordHTTPRequestDuration 记录 HTTP 请求延迟
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordStoreOpDuration 记录数据库操作延迟
func RecordStoreOpDuration(operation, collection string, duration time.Duration) {
	StoreOpDuration.WithLabelValues(operation, collection).Observe(duration.Seconds())
}
