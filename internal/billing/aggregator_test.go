package billing

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestAggregateDailyAndMonthly(t *testing.T) {
	records := []DatedRecord{
		{Timestamp: date(2024, time.January, 5), Amount: 100, ItemCount: 2},
		{Timestamp: date(2024, time.January, 20), Amount: 50, ItemCount: 1},
	}

	daily := Aggregate(records, PeriodDaily)
	require.Len(t, daily, 2)
	assert.Equal(t, PeriodBucket{Period: "2024-01-05", TotalSales: 100, ItemsSold: 2}, daily[0])
	assert.Equal(t, PeriodBucket{Period: "2024-01-20", TotalSales: 50, ItemsSold: 1}, daily[1])

	monthly := Aggregate(records, PeriodMonthly)
	require.Len(t, monthly, 1)
	assert.Equal(t, PeriodBucket{Period: "2024-01", TotalSales: 150, ItemsSold: 3}, monthly[0])
}

func TestAggregateYearly(t *testing.T) {
	records := []DatedRecord{
		{Timestamp: date(2023, time.December, 31), Amount: 10, ItemCount: 1},
		{Timestamp: date(2024, time.January, 1), Amount: 20, ItemCount: 2},
		{Timestamp: date(2024, time.June, 15), Amount: 30, ItemCount: 3},
	}

	yearly := Aggregate(records, PeriodYearly)
	require.Len(t, yearly, 2)
	assert.Equal(t, PeriodBucket{Period: "2023", TotalSales: 10, ItemsSold: 1}, yearly[0])
	assert.Equal(t, PeriodBucket{Period: "2024", TotalSales: 50, ItemsSold: 5}, yearly[1])
}

func TestAggregateEmptyInput(t *testing.T) {
	for _, period := range []PeriodType{PeriodDaily, PeriodMonthly, PeriodYearly} {
		got := Aggregate(nil, period)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

func TestAggregateOrderInvariant(t *testing.T) {
	records := []DatedRecord{
		{Timestamp: date(2024, time.February, 1), Amount: 11.5, ItemCount: 1},
		{Timestamp: date(2024, time.February, 1), Amount: 20, ItemCount: 4},
		{Timestamp: date(2024, time.March, 9), Amount: 7.25, ItemCount: 2},
		{Timestamp: date(2024, time.March, 10), Amount: 90, ItemCount: 9},
		{Timestamp: date(2023, time.November, 3), Amount: 3, ItemCount: 1},
	}

	want := Aggregate(records, PeriodDaily)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		shuffled := make([]DatedRecord, len(records))
		copy(shuffled, records)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Aggregate(shuffled, PeriodDaily))
	}
}

func TestAggregateSortedAscending(t *testing.T) {
	records := []DatedRecord{
		{Timestamp: date(2024, time.December, 25), Amount: 1, ItemCount: 1},
		{Timestamp: date(2022, time.July, 4), Amount: 1, ItemCount: 1},
		{Timestamp: date(2024, time.January, 2), Amount: 1, ItemCount: 1},
		{Timestamp: date(2023, time.March, 30), Amount: 1, ItemCount: 1},
	}

	for _, period := range []PeriodType{PeriodDaily, PeriodMonthly, PeriodYearly} {
		buckets := Aggregate(records, period)
		for i := 1; i < len(buckets); i++ {
			assert.Less(t, buckets[i-1].Period, buckets[i].Period,
				"buckets must be strictly ascending for %s", period)
		}
	}
}

func TestPeriodTypeValid(t *testing.T) {
	assert.True(t, PeriodDaily.Valid())
	assert.True(t, PeriodMonthly.Valid())
	assert.True(t, PeriodYearly.Valid())
	assert.False(t, PeriodType("weekly").Valid())
	assert.False(t, PeriodType("").Valid())
}
