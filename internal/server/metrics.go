package server

import (
	"fmt"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Metrics tracks request counts and response times.
type Metrics struct {
	mu              sync.RWMutex
	startTime       time.Time
	requestCount    int64
	errorCount      int64
	responseTimes   []time.Duration
	averageResponse time.Duration
	endpointCounts  map[string]int64
}

// NewMetrics creates an empty metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
		// Keep the last 100 response times for the rolling average.
		responseTimes:  make([]time.Duration, 0, 100),
		endpointCounts: make(map[string]int64),
	}
}

// RecordRequest records one completed request.
func (m *Metrics) RecordRequest(endpoint string, duration time.Duration, isError bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requestCount++
	if isError {
		m.errorCount++
	}
	m.endpointCounts[endpoint]++

	if len(m.responseTimes) >= 100 {
		m.responseTimes = m.responseTimes[1:]
	}
	m.responseTimes = append(m.responseTimes, duration)

	var total time.Duration
	for _, rt := range m.responseTimes {
		total += rt
	}
	m.averageResponse = total / time.Duration(len(m.responseTimes))
}

// snapshot returns a copy of the current counters.
func (m *Metrics) snapshot() (uptime float64, requests, errors int64, avg time.Duration, endpoints map[string]int64) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	endpoints = make(map[string]int64, len(m.endpointCounts))
	maps.Copy(endpoints, m.endpointCounts)
	return time.Since(m.startTime).Seconds(), m.requestCount, m.errorCount, m.averageResponse, endpoints
}

// handleMetrics serves counters in Prometheus exposition format.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	uptime, requests, errors, avg, endpoints := s.metrics.snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	sb := &strings.Builder{}
	sb.WriteString("# HELP fsutil_uptime_seconds Uptime of the server in seconds\n")
	sb.WriteString("# TYPE fsutil_uptime_seconds gauge\n")
	fmt.Fprintf(sb, "fsutil_uptime_seconds %s\n", strconv.FormatFloat(uptime, 'f', 6, 64))

	sb.WriteString("# HELP fsutil_requests_total Total number of HTTP requests\n")
	sb.WriteString("# TYPE fsutil_requests_total counter\n")
	fmt.Fprintf(sb, "fsutil_requests_total %d\n", requests)

	sb.WriteString("# HELP fsutil_errors_total Total number of HTTP errors\n")
	sb.WriteString("# TYPE fsutil_errors_total counter\n")
	fmt.Fprintf(sb, "fsutil_errors_total %d\n", errors)

	sb.WriteString("# HELP fsutil_average_response_seconds Average response time over the last 100 requests\n")
	sb.WriteString("# TYPE fsutil_average_response_seconds gauge\n")
	fmt.Fprintf(sb, "fsutil_average_response_seconds %s\n", strconv.FormatFloat(avg.Seconds(), 'f', 6, 64))

	sb.WriteString("# HELP fsutil_endpoint_requests_total Total requests per endpoint\n")
	sb.WriteString("# TYPE fsutil_endpoint_requests_total counter\n")
	for endpoint, count := range endpoints {
		fmt.Fprintf(sb, "fsutil_endpoint_requests_total{endpoint=\"%s\"} %d\n", escapeLabel(endpoint), count)
	}

	if _, err := w.Write([]byte(sb.String())); err != nil {
		s.logger.Error("send metrics: %v", err)
	}
}

// escapeLabel escapes backslashes and quotes for Prometheus label values.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
