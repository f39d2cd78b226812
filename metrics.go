// Copyright 2026 The ScreenPilot Authors
//
// Client-side call metrics

package screenpilot

import (
	"fmt"
	"io"
	"sort"
	"sync"
	"time"
)

// CallMetrics collects per-endpoint call counts and latency aggregates for a
// Client. Thread-safe.
type CallMetrics struct {
	endpoints map[string]*endpointMetrics
	mu        sync.RWMutex
}

type endpointMetrics struct {
	calls    uint64
	errors   uint64
	totalDur time.Duration
	minDur   time.Duration
	maxDur   time.Duration
}

// CallStats is an immutable snapshot of one endpoint's metrics.
type CallStats struct {
	Endpoint string
	Calls    uint64
	Errors   uint64
	TotalDur time.Duration
	MinDur   time.Duration
	MaxDur   time.Duration
}

// AvgDur returns the mean call duration, or 0 when no calls were recorded.
func (s CallStats) AvgDur() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.TotalDur / time.Duration(s.Calls)
}

// NewCallMetrics creates an empty metrics collector.
func NewCallMetrics() *CallMetrics {
	return &CallMetrics{endpoints: make(map[string]*endpointMetrics)}
}

// RecordCall records one call outcome. Status "ok" counts as a success;
// anything else counts as an error.
func (m *CallMetrics) RecordCall(endpoint, status string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.endpoints[endpoint]
	if !ok {
		e = &endpointMetrics{minDur: duration, maxDur: duration}
		m.endpoints[endpoint] = e
	}

	e.calls++
	if status != "ok" {
		e.errors++
	}
	e.totalDur += duration
	if duration < e.minDur {
		e.minDur = duration
	}
	if duration > e.maxDur {
		e.maxDur = duration
	}
}

// Snapshot returns the current stats sorted by endpoint for deterministic
// output.
func (m *CallMetrics) Snapshot() []CallStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]CallStats, 0, len(m.endpoints))
	for endpoint, e := range m.endpoints {
		stats = append(stats, CallStats{
			Endpoint: endpoint,
			Calls:    e.calls,
			Errors:   e.errors,
			TotalDur: e.totalDur,
			MinDur:   e.minDur,
			MaxDur:   e.maxDur,
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Endpoint < stats[j].Endpoint })
	return stats
}

// WriteText writes the stats as a human-readable table, one endpoint per
// line.
func (m *CallMetrics) WriteText(w io.Writer) error {
	for _, s := range m.Snapshot() {
		_, err := fmt.Fprintf(w, "%-28s calls=%d errors=%d avg=%s min=%s max=%s\n",
			s.Endpoint, s.Calls, s.Errors, s.AvgDur(), s.MinDur, s.MaxDur)
		if err != nil {
			return err
		}
	}
	return nil
}
