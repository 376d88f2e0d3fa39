package metrics

import (
	"sync"

	"careerhub/internal/common"
)

// Collector keeps in-process request and error counters, exposed at /metrics.
type Collector struct {
	mu       sync.Mutex
	requests int64
	statuses map[int]int64
	errors   map[common.Code]int64
}

func NewCollector() *Collector {
	return &Collector{
		statuses: make(map[int]int64),
		errors:   make(map[common.Code]int64),
	}
}

func (c *Collector) ObserveRequest(status int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requests++
	c.statuses[status]++
}

func (c *Collector) ObserveError(code common.Code) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[code]++
}

type Snapshot struct {
	Requests int64                 `json:"requests"`
	Statuses map[int]int64         `json:"statuses"`
	Errors   map[common.Code]int64 `json:"errors"`
}

func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Requests: c.requests,
		Statuses: make(map[int]int64, len(c.statuses)),
		Errors:   make(map[common.Code]int64, len(c.errors)),
	}
	for status, count := range c.statuses {
		snap.Statuses[status] = count
	}
	for code, count := range c.errors {
		snap.Errors[code] = count
	}
	return snap
}
