package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// NewMetricMiddleware records latency, volume and payload size for every
// route, split by status class so dashboards can separate loan failures
// from successful operations.
func NewMetricMiddleware(meter metric.Meter) gin.HandlerFunc {

	latency, _ := meter.Int64Histogram(
		"http.server.latency",
		metric.WithUnit("ms"),
		metric.WithDescription("The latency of HTTP requests."),
	)
	totalRequests, _ := meter.Int64Counter(
		"http.server.requests_total",
		metric.WithDescription("The total number of HTTP requests."),
	)
	successRequests, _ := meter.Int64Counter(
		"http.server.success_requests_total",
		metric.WithDescription("The total number of successful HTTP requests."),
	)
	errorRequests, _ := meter.Int64Counter(
		"http.server.error_requests_total",
		metric.WithDescription("The total number of failed HTTP requests."),
	)
	requestSize, _ := meter.Int64Histogram(
		"http.server.request_size_bytes",
		metric.WithUnit("bytes"),
		metric.WithDescription("The size of HTTP requests in bytes."),
	)
	responseSize, _ := meter.Int64Histogram(
		"http.server.response_size_bytes",
		metric.WithUnit("bytes"),
		metric.WithDescription("The size of HTTP responses in bytes."),
	)

	return func(c *gin.Context) {
		start := time.Now()
		reqBytes := c.Request.ContentLength

		c.Next()

		status := c.Writer.Status()
		attributes := []attribute.KeyValue{
			semconv.HTTPRouteKey.String(c.FullPath()),
			semconv.HTTPMethodKey.String(c.Request.Method),
			semconv.HTTPStatusCodeKey.Int(status),
			attribute.String("http.client_ip", c.ClientIP()),
		}

		ctx := c.Request.Context()
		opts := metric.WithAttributes(attributes...)

		latency.Record(ctx, time.Since(start).Milliseconds(), opts)
		totalRequests.Add(ctx, 1, opts)
		requestSize.Record(ctx, reqBytes, opts)
		responseSize.Record(ctx, int64(c.Writer.Size()), opts)

		if status >= 200 && status < 400 {
			successRequests.Add(ctx, 1, opts)
		} else {
			errorRequests.Add(ctx, 1, opts)
		}
	}
}
