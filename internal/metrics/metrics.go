package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yt_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "yt_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// User Metrics
	UserSignupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yt_user_signups_total",
			Help: "Total number of user signups",
		},
	)

	UserLoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yt_user_logins_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// Video Metrics
	VideoUploadsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yt_video_uploads_total",
			Help: "Total number of video uploads",
		},
	)

	VideoUploadSizeBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "yt_video_upload_size_bytes",
			Help:    "Size of uploaded videos in bytes",
			Buckets: prometheus.ExponentialBuckets(1024*1024, 2, 15), // 1MB to 16GB
		},
	)

	VideoReactionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "yt_video_reactions_total",
			Help: "Total number of like/dislike reactions",
		},
		[]string{"kind"},
	)

	VideoViewsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yt_video_views_total",
			Help: "Total number of recorded video views",
		},
	)

	// Comment Metrics
	CommentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "yt_comments_created_total",
			Help: "Total number of comments created",
		},
	)
)

// RecordHTTPRequest records an HTTP request with its duration
func RecordHTTPRequest(method, endpoint, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordLogin records a login attempt outcome ("success", "not_found",
// "bad_password").
func RecordLogin(outcome string) {
	UserLoginsTotal.WithLabelValues(outcome).Inc()
}

// RecordVideoUpload records a successful video upload and its size
func RecordVideoUpload(sizeBytes int64) {
	VideoUploadsTotal.Inc()
	VideoUploadSizeBytes.Observe(float64(sizeBytes))
}

// RecordReaction records a like or dislike
func RecordReaction(kind string) {
	VideoReactionsTotal.WithLabelValues(kind).Inc()
}
