package services

import (
	"sync"
	"time"
)

// LatestReport holds the last delivered report so the HTTP surface can serve
// it without refetching. One report per run; no history is kept.
type LatestReport struct {
	mu          sync.RWMutex
	text        string
	generatedAt time.Time
}

func NewLatestReport() *LatestReport {
	return &LatestReport{}
}

func (l *LatestReport) Set(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
	l.generatedAt = time.Now()
}

func (l *LatestReport) Get() (string, time.Time, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text, l.generatedAt, !l.generatedAt.IsZero()
}
