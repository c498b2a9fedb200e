package webhook

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Deduper remembers webhook event IDs so retried deliveries from the
// platform's at-least-once transport are applied at most once per process.
//
// It is backed by a bloom filter: a duplicate is never reported as fresh,
// while a fresh event can be misreported as a duplicate at the configured
// false positive rate and its delivery skipped. Size the filter well above
// the per-process event volume so that loss stays negligible; a genuinely
// missed event is recovered by the platform's next update for the same
// record.
type Deduper struct {
	mu     sync.Mutex
	filter *bloom.BloomFilter
}

// NewDeduper sizes the filter for the expected number of events and the
// acceptable false positive rate.
func NewDeduper(expectedEvents uint, falsePositiveRate float64) *Deduper {
	return &Deduper{
		filter: bloom.NewWithEstimates(expectedEvents, falsePositiveRate),
	}
}

// Seen records the event ID and reports whether it had been recorded
// before. An empty ID is never deduplicated; callers without a delivery ID
// fall back to at-least-once application.
func (d *Deduper) Seen(eventID string) bool {
	if eventID == "" {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filter.TestAndAddString(eventID)
}
