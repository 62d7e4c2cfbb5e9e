package billing

import (
	"sort"
	"time"
)

// PeriodType is the bucketing resolution of a sales report.
type PeriodType string

const (
	PeriodDaily   PeriodType = "daily"
	PeriodMonthly PeriodType = "monthly"
	PeriodYearly  PeriodType = "yearly"
)

// Valid reports whether p is one of the supported granularities.
func (p PeriodType) Valid() bool {
	switch p {
	case PeriodDaily, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// DatedRecord is one dated financial observation: an amount and the number
// of items it covers. Callers flatten nested line-item quantities into
// ItemCount before aggregating.
type DatedRecord struct {
	Timestamp time.Time
	Amount    float64
	ItemCount int
}

// PeriodBucket is the sum of all records falling into one period.
type PeriodBucket struct {
	Period     string  `json:"period"`
	TotalSales float64 `json:"total_sales"`
	ItemsSold  int     `json:"items_sold"`
}

// periodKey truncates a timestamp to the requested granularity. All three
// key formats are zero-padded and big-endian, so lexicographic order is
// chronological order.
func periodKey(ts time.Time, period PeriodType) string {
	switch period {
	case PeriodMonthly:
		return ts.Format("2006-01")
	case PeriodYearly:
		return ts.Format("2006")
	default:
		return ts.Format("2006-01-02")
	}
}

// Aggregate buckets records by period and sums sales amount and items sold
// per bucket. The result is sorted ascending by period key. Empty input
// yields an empty slice; periods without records produce no bucket, gaps are
// not back-filled. Input order never affects the result.
func Aggregate(records []DatedRecord, period PeriodType) []PeriodBucket {
	buckets := make(map[string]*PeriodBucket)

	for _, rec := range records {
		key := periodKey(rec.Timestamp, period)
		b, ok := buckets[key]
		if !ok {
			b = &PeriodBucket{Period: key}
			buckets[key] = b
		}
		b.TotalSales += rec.Amount
		b.ItemsSold += rec.ItemCount
	}

	out := make([]PeriodBucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Period < out[j].Period
	})
	return out
}
