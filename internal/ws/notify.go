package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

// SourceDoneEvent fires once per adapter as the aggregation progresses.
type SourceDoneEvent struct {
	Type      string `json:"type"`
	Source    string `json:"source"`
	Count     int    `json:"count"`
	Failed    bool   `json:"failed"`
	Timestamp string `json:"timestamp"`
}

// AggregationDoneEvent fires after dedup with the final totals.
type AggregationDoneEvent struct {
	Type       string `json:"type"`
	SearchTerm string `json:"search_term"`
	TotalCount int    `json:"total_count"`
	Timestamp  string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifySourceDone(source string, count int, failed bool) {
	h := defaultHub.Load()
	if h == nil || source == "" {
		return
	}

	evt := SourceDoneEvent{
		Type:      "source_done",
		Source:    source,
		Count:     count,
		Failed:    failed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyAggregationDone(searchTerm string, totalCount int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := AggregationDoneEvent{
		Type:       "aggregation_done",
		SearchTerm: searchTerm,
		TotalCount: totalCount,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
