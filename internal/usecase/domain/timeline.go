package domain

import (
	"sort"
	"time"

	"lightweight-feedback-system/internal/entities"
)

// MonthLayout formats timeline group headings.
const MonthLayout = "January 2006"

// SortNewestFirst orders feedback by creation time, most recent first.
// Entries created at the same instant keep their API order.
func SortNewestFirst(list []entities.Feedback) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

// GroupByMonth buckets feedback by the calendar month of creation as written
// by the API, whatever zone offset each timestamp carries. Groups are ordered
// newest month first and items inside a group newest first.
func GroupByMonth(list []entities.Feedback) []entities.MonthGroup {
	sorted := make([]entities.Feedback, len(list))
	copy(sorted, list)
	SortNewestFirst(sorted)

	groups := make([]entities.MonthGroup, 0)
	index := make(map[string]int)
	for _, fb := range sorted {
		month := monthStart(fb.CreatedAt)
		label := month.Format(MonthLayout)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, entities.MonthGroup{Label: label, Month: month})
		}
		groups[i].Items = append(groups[i].Items, fb)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Month.After(groups[j].Month)
	})
	return groups
}

// monthStart returns the first day of t's wall-clock month, pinned to UTC so
// months from differently zoned timestamps compare equal.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
