package schedules

import (
	"sort"
	"time"
)

type Mode string

const (
	Today Mode = "today"
	Week  Mode = "week"
	All   Mode = "all"

	weekDays = 7
)

var Modes = []Mode{Today, Week, All}

// ParseMode maps unknown values to All.
func ParseMode(value string) Mode {
	switch Mode(value) {
	case Today, Week:
		return Mode(value)
	default:
		return All
	}
}

func (m Mode) Label() string {
	switch m {
	case Today:
		return "Today"
	case Week:
		return "This week"
	default:
		return "All"
	}
}

type keyed struct {
	schedule Schedule
	date     time.Time
	at       time.Time
}

// Filter keeps the entries visiting in the mode's window relative to now and
// sorts them by visit date and time. If any entry has an unparseable date or
// time the original list is returned unchanged together with the error.
func Filter(entries []Schedule, mode Mode, now time.Time) ([]Schedule, error) {
	loc := now.Location()
	today := midnight(now)

	items := make([]keyed, 0, len(entries))
	for _, e := range entries {
		date, err := ParseDate(e.VisitDate, loc)
		if err != nil {
			return entries, err
		}
		offset, err := ParseTime(e.VisitTime)
		if err != nil {
			return entries, err
		}
		items = append(items, keyed{schedule: e, date: date, at: date.Add(offset)})
	}

	end := today.AddDate(0, 0, weekDays)
	kept := make([]keyed, 0, len(items))
	for _, item := range items {
		switch mode {
		case Today:
			if !item.date.Equal(today) {
				continue
			}
		case Week:
			if item.date.Before(today) || item.date.After(end) {
				continue
			}
		}
		kept = append(kept, item)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].at.Before(kept[j].at)
	})

	result := make([]Schedule, 0, len(kept))
	for _, item := range kept {
		result = append(result, item.schedule)
	}
	return result, nil
}
