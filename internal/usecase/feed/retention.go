package feed

import (
	"sort"
	"time"

	"feedstore/internal/domain/entity"
)

// RetentionPolicy evicts entries by age and caps the number kept per feed.
// A non-positive HistoryDays or MaxEntries disables the respective rule.
type RetentionPolicy struct {
	HistoryDays int
	MaxEntries  int
}

// PruneResult counts entries evicted by each rule.
type PruneResult struct {
	Expired  int `json:"expired"`
	Overflow int `json:"overflow"`
}

// Total returns the number of evicted entries.
func (r PruneResult) Total() int { return r.Expired + r.Overflow }

func (r *PruneResult) add(o PruneResult) {
	r.Expired += o.Expired
	r.Overflow += o.Overflow
}

// Apply prunes f in place: the age rule first, then the count rule.
// Entries that survive keep their relative order.
func (p RetentionPolicy) Apply(f *entity.Feed, now time.Time) PruneResult {
	var res PruneResult

	if p.HistoryDays > 0 {
		cutoff := now.Add(-time.Duration(p.HistoryDays) * 24 * time.Hour)
		kept := f.Entries[:0]
		for _, e := range f.Entries {
			// 日付が解析できないエントリ（Published がゼロ値）も期限切れ扱い
			if e.Published.Before(cutoff) {
				res.Expired++
				continue
			}
			kept = append(kept, e)
		}
		f.Entries = kept
	}

	if p.MaxEntries > 0 && len(f.Entries) > p.MaxEntries {
		res.Overflow = len(f.Entries) - p.MaxEntries
		f.Entries = newest(f.Entries, p.MaxEntries)
	}

	return res
}

// ApplyAll prunes every feed of c in place and returns the combined result.
func (p RetentionPolicy) ApplyAll(c *entity.Collection, now time.Time) PruneResult {
	var total PruneResult
	for _, f := range c.Feeds() {
		total.add(p.Apply(f, now))
	}
	return total
}

// newest returns the n newest entries by Published, in their original order.
// Entries are stored newest-insertion first, so among equal dates the higher
// index was inserted earlier and is preferred.
func newest(entries []entity.FeedEntry, n int) []entity.FeedEntry {
	idx := make([]int, len(entries))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		ta, tb := entries[idx[a]].Published, entries[idx[b]].Published
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return idx[a] > idx[b]
	})

	keep := make([]bool, len(entries))
	for _, i := range idx[:n] {
		keep[i] = true
	}
	out := make([]entity.FeedEntry, 0, n)
	for i, e := range entries {
		if keep[i] {
			out = append(out, e)
		}
	}
	return out
}
