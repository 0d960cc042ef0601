package metrics

import (
	"time"
)

// Result labels for StoreOperationsTotal.
const (
	ResultSuccess    = "success"
	ResultInvalid    = "invalid"
	ResultNotFound   = "not_found"
	ResultStorageErr = "storage_error"
	ResultError      = "error"
)

// Rule labels for EntriesPrunedTotal.
const (
	RuleAge   = "age"
	RuleCount = "count"
)

// RecordOperation records the outcome of one store operation.
func RecordOperation(operation, result string) {
	StoreOperationsTotal.WithLabelValues(operation, result).Inc()
}

// RecordPruned records entries evicted by a retention rule.
// Zero counts are ignored so that idle passes do not create series noise.
func RecordPruned(rule string, count int) {
	if count <= 0 {
		return
	}
	EntriesPrunedTotal.WithLabelValues(rule).Add(float64(count))
}

// RecordPersist records the duration of a save and counts it as failed when err is non-nil.
func RecordPersist(duration time.Duration, err error) {
	PersistDuration.Observe(duration.Seconds())
	if err != nil {
		PersistFailuresTotal.Inc()
	}
}

// UpdateCollectionSize sets the collection gauges.
func UpdateCollectionSize(feeds, entries int) {
	FeedsTotal.Set(float64(feeds))
	EntriesTotal.Set(float64(entries))
}
