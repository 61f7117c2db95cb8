package analysis

import (
	"fmt"
	"sort"

	"github.com/ademuri/playlist-insights/internal/dataset"
)

// Temporal buckets rows with a valid timestamp by calendar year, month, ISO
// week, weekday, and hour of day. Rows without a usable date are skipped;
// when none remain the distributions are empty and PeakPeriods is nil, which
// is not an error. Date-only timestamps land in the midnight hour bucket.
func Temporal(tracks []dataset.Track) TemporalPatterns {
	patterns := TemporalPatterns{
		MonthlyDistribution: map[string]int{},
		YearlyDistribution:  map[string]int{},
		WeeklyDistribution:  map[string]int{},
		WeekdayDistribution: map[string]int{},
		HourlyDistribution:  map[string]int{},
	}

	for _, t := range tracks {
		if t.AddedAt == nil {
			continue
		}
		ts := *t.AddedAt
		patterns.MonthlyDistribution[ts.Format("2006-01")]++
		patterns.YearlyDistribution[ts.Format("2006")]++
		year, week := ts.ISOWeek()
		patterns.WeeklyDistribution[fmt.Sprintf("%d-W%02d", year, week)]++
		patterns.WeekdayDistribution[ts.Weekday().String()]++
		patterns.HourlyDistribution[fmt.Sprintf("%02d", ts.Hour())]++
	}

	if len(patterns.MonthlyDistribution) == 0 {
		return patterns
	}

	peak := &PeakPeriods{}
	var monthSum int
	for _, month := range sortedKeys(patterns.MonthlyDistribution) {
		count := patterns.MonthlyDistribution[month]
		monthSum += count
		if count > peak.PeakCount {
			peak.PeakMonth = month
			peak.PeakCount = count
		}
	}
	peak.AverageMonthly = float64(monthSum) / float64(len(patterns.MonthlyDistribution))

	peak.ActiveYears = len(patterns.YearlyDistribution)
	bestYear := 0
	for _, year := range sortedKeys(patterns.YearlyDistribution) {
		if count := patterns.YearlyDistribution[year]; count > bestYear {
			peak.PeakYear = year
			bestYear = count
		}
	}

	bestHour := 0
	for _, hour := range sortedKeys(patterns.HourlyDistribution) {
		if count := patterns.HourlyDistribution[hour]; count > bestHour {
			peak.PeakHour = hour
			bestHour = count
		}
	}

	bestWeekday := 0
	for day, count := range patterns.WeekdayDistribution {
		if count > bestWeekday || (count == bestWeekday && day < peak.PeakWeekday) {
			peak.PeakWeekday = day
			bestWeekday = count
		}
	}

	patterns.PeakPeriods = peak
	return patterns
}

// sortedKeys returns map keys in ascending order. Month and ISO-week keys
// are zero-padded, so lexicographic order is chronological order.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
