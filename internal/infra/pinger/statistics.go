package pinger

import (
	"slices"
	"sort"
	"sync"
	"time"
)

const (
	// SuccessLatencyBufferSize is the number of successful ping latencies to track
	SuccessLatencyBufferSize = 100

	// ErrorLatencyBufferSize is the number of error ping latencies to track
	ErrorLatencyBufferSize = 10

	// MedianDivisor is used for calculating median index
	MedianDivisor = 2
)

// ErrorSnapshot represents a snapshot of an error occurrence
type ErrorSnapshot struct {
	Timestamp time.Time
	Latency   time.Duration
	Error     error
}

// LatencyBuffer is a circular buffer for storing time.Duration values
type LatencyBuffer struct {
	mu       sync.RWMutex
	buffer   []time.Duration
	capacity int
	index    int
	count    int
}

// NewLatencyBuffer creates a new latency buffer with the specified capacity
func NewLatencyBuffer(capacity int) *LatencyBuffer {
	return &LatencyBuffer{
		buffer:   make([]time.Duration, 0, capacity),
		capacity: capacity,
	}
}

// Add adds a duration to the buffer
func (lb *LatencyBuffer) Add(d time.Duration) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	if lb.count < lb.capacity {
		lb.buffer = append(lb.buffer, d)
		lb.count++
	} else {
		lb.buffer[lb.index] = d
		lb.index = (lb.index + 1) % lb.capacity
	}
}

// GetAll returns a copy of all durations in the buffer
func (lb *LatencyBuffer) GetAll() []time.Duration {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	if lb.count == 0 {
		return nil
	}

	result := make([]time.Duration, lb.count)
	if lb.count < lb.capacity {
		copy(result, lb.buffer)
	} else {
		// Copy from index to end, then from start to index
		copy(result, lb.buffer[lb.index:])
		copy(result[lb.capacity-lb.index:], lb.buffer[:lb.index])
	}

	return result
}

// Len returns the number of durations in the buffer
func (lb *LatencyBuffer) Len() int {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	return lb.count
}

// Stats tracks statistics for a single pinger
type Stats struct {
	Name              string
	LastRun           time.Time
	LastError         error
	LastErrorSnapshot *ErrorSnapshot
	SuccessLatencies  *LatencyBuffer
	ErrorLatencies    *LatencyBuffer
	mu                sync.RWMutex
}

// NewPingerStats creates a new PingerStats instance
func NewPingerStats(name string) *Stats {
	return &Stats{
		Name:             name,
		SuccessLatencies: NewLatencyBuffer(SuccessLatencyBufferSize),
		ErrorLatencies:   NewLatencyBuffer(ErrorLatencyBufferSize),
	}
}

// LatencyMetrics contains calculated latency statistics
type LatencyMetrics struct {
	Count   int
	Median  time.Duration
	Average time.Duration
}

// Statistics contains computed statistics for a pinger
type Statistics struct {
	IsReady           bool
	IsHealthy         bool
	LastRun           time.Time
	LastError         error
	LastErrorSnapshot *ErrorSnapshot
	SuccessCount      int
	ErrorCount        int
	SuccessLatencies  LatencyMetrics
	ErrorLatencies    LatencyMetrics
}

// CalculateMedian calculates the median value from a sorted slice of durations
func CalculateMedian(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	mid := len(sorted) / MedianDivisor
	if len(sorted)%MedianDivisor == 0 {
		return (sorted[mid-1] + sorted[mid]) / MedianDivisor
	}

	return sorted[mid]
}

// CalculateAverage calculates the average value from a slice of durations
func CalculateAverage(latencies []time.Duration) time.Duration {
	if len(latencies) == 0 {
		return 0
	}

	var sum time.Duration
	for _, d := range latencies {
		sum += d
	}

	return sum / time.Duration(len(latencies))
}

// calculateLatencyMetrics calculates latency metrics from a slice of durations
func calculateLatencyMetrics(latencies []time.Duration) LatencyMetrics {
	if len(latencies) == 0 {
		return LatencyMetrics{}
	}

	sorted := make([]time.Duration, len(latencies))
	copy(sorted, latencies)
	slices.Sort(sorted)

	return LatencyMetrics{
		Count:   len(sorted),
		Median:  CalculateMedian(sorted),
		Average: CalculateAverage(sorted),
	}
}

// GetStatistics computes and returns statistics from PingerStats
func GetStatistics(stats *Stats, info *pingerInfo) *Statistics {
	stats.mu.RLock()
	defer stats.mu.RUnlock()

	successLatencies := stats.SuccessLatencies.GetAll()
	errorLatencies := stats.ErrorLatencies.GetAll()

	var lastErrorSnapshot *ErrorSnapshot
	if stats.LastErrorSnapshot != nil {
		lastErrorSnapshot = &ErrorSnapshot{
			Timestamp: stats.LastErrorSnapshot.Timestamp,
			Latency:   stats.LastErrorSnapshot.Latency,
			Error:     stats.LastErrorSnapshot.Error,
		}
	}

	// Calculate IsReady: if readyCritical is false, always true; otherwise based on LastError
	isReady := !info.readyCritical || stats.LastError == nil

	// Calculate IsHealthy: if healthCritical is false, always true; otherwise based on LastError
	isHealthy := !info.healthCritical || stats.LastError == nil

	return &Statistics{
		IsReady:           isReady,
		IsHealthy:         isHealthy,
		LastRun:           stats.LastRun,
		LastError:         stats.LastError,
		LastErrorSnapshot: lastErrorSnapshot,
		SuccessCount:      len(successLatencies),
		ErrorCount:        len(errorLatencies),
		SuccessLatencies:  calculateLatencyMetrics(successLatencies),
		ErrorLatencies:    calculateLatencyMetrics(errorLatencies),
	}
}
