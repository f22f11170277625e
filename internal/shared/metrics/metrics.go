package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	parseRequestsTotal    atomic.Uint64
	parseFallbackTotal    atomic.Uint64
	matchRequestsTotal    atomic.Uint64
	gapRequestsTotal      atomic.Uint64
	narrativeFailedTotal  atomic.Uint64
	resumeRequestsTotal   atomic.Uint64
	resumeFallbackTotal   atomic.Uint64

	matchDuration = newHistogram([]float64{1, 5, 10, 25, 50, 100, 250, 500, 1000})
)

// IncParseRequests increments the experience-parse counter.
func IncParseRequests() {
	parseRequestsTotal.Add(1)
}

// IncParseFallback increments the keyword-fallback parse counter.
func IncParseFallback() {
	parseFallbackTotal.Add(1)
}

// IncMatchRequests increments the career-match counter.
func IncMatchRequests() {
	matchRequestsTotal.Add(1)
}

// IncGapRequests increments the gap-analysis counter.
func IncGapRequests() {
	gapRequestsTotal.Add(1)
}

// IncNarrativeFailed increments the counter of narrative enrichments that degraded.
func IncNarrativeFailed() {
	narrativeFailedTotal.Add(1)
}

// IncResumeRequests increments the resume-generation counter.
func IncResumeRequests() {
	resumeRequestsTotal.Add(1)
}

// IncResumeFallback increments the template-fallback resume counter.
func IncResumeFallback() {
	resumeFallbackTotal.Add(1)
}

// ObserveMatchDurationMs records a match computation duration in milliseconds.
func ObserveMatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	matchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "parse_requests_total", "Total experience parse requests", parseRequestsTotal.Load())
	writeCounter(&buf, "parse_fallback_total", "Total parses served by the keyword fallback", parseFallbackTotal.Load())
	writeCounter(&buf, "match_requests_total", "Total career match requests", matchRequestsTotal.Load())
	writeCounter(&buf, "gap_requests_total", "Total gap analysis requests", gapRequestsTotal.Load())
	writeCounter(&buf, "narrative_failed_total", "Total gap narratives that degraded to structural output", narrativeFailedTotal.Load())
	writeCounter(&buf, "resume_requests_total", "Total resume generation requests", resumeRequestsTotal.Load())
	writeCounter(&buf, "resume_fallback_total", "Total resumes served by the template fallback", resumeFallbackTotal.Load())
	writeHistogram(&buf, "match_duration_ms", "Match computation duration in milliseconds", matchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
	return out
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// NowMillis returns current time in milliseconds, useful for callers without time utilities.
func NowMillis() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Millisecond)
}
