package aggregator

import (
	"log/slog"
	"sort"
	"time"

	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// DefaultThreshold is the minimum accumulated daily duration for a day to
// count as met. Three minutes under the nominal 30 to tolerate elapsed
// time rounding in the feed.
const DefaultThreshold = 27 * time.Minute

// DailyCounter accumulates activity duration per athlete per weekday of
// one Monday-start week. Built fresh each run, never persisted; only the
// merged WeeklyRows are.
type DailyCounter struct {
	week      entity.Week
	threshold time.Duration
	durations map[string]*[7]time.Duration
}

func New(week entity.Week, threshold time.Duration) *DailyCounter {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &DailyCounter{
		week:      week,
		threshold: threshold,
		durations: make(map[string]*[7]time.Duration),
	}
}

// Fold adds the resolved activities into the per-athlete day slots.
// Activities without a resolved athlete are dropped here (the matcher has
// already counted them as seen) and activities dated outside the week are
// ignored.
func (dc *DailyCounter) Fold(activities []entity.ResolvedActivity) {
	for _, act := range activities {
		if act.Athlete == nil {
			slog.Info("activity without registered athlete dropped",
				slog.String("athlete", act.RawActivity.Athlete),
				slog.String("activity", act.Name))
			continue
		}
		idx := timeutil.DayIndex(dc.week.Start, act.Date)
		if idx < 0 {
			slog.Warn("activity dated outside the report week",
				slog.String("athlete", act.Athlete.Name),
				slog.Time("date", act.Date))
			continue
		}
		slots, ok := dc.durations[act.Athlete.Name]
		if !ok {
			slots = &[7]time.Duration{}
			dc.durations[act.Athlete.Name] = slots
		}
		slots[idx] += time.Duration(act.ElapsedSecs) * time.Second
	}
}

// MergeInto applies the folded durations onto existing report rows. Only
// day columns touched by this run are overwritten; untouched columns keep
// their persisted value. TOTAL_DAYS is recomputed from the seven flags
// every time, never incremented, so repeated merges of the same activity
// set leave the rows unchanged.
func (dc *DailyCounter) MergeInto(rows []entity.WeeklyRow) []entity.WeeklyRow {
	byAthlete := make(map[string]int, len(rows))
	for i, row := range rows {
		byAthlete[row.Athlete] = i
	}

	names := make([]string, 0, len(dc.durations))
	for name := range dc.durations {
		names = append(names, name)
	}
	// Stable order, so rows appended for athletes first seen this run do
	// not reshuffle between runs.
	sort.Strings(names)

	for _, name := range names {
		slots := dc.durations[name]
		i, ok := byAthlete[name]
		if !ok {
			rows = append(rows, entity.WeeklyRow{Athlete: name})
			i = len(rows) - 1
			byAthlete[name] = i
		}
		for day, total := range slots {
			if total == 0 {
				continue
			}
			if total >= dc.threshold {
				rows[i].Days[day] = 1
			} else {
				slog.Info("daily activity below threshold",
					slog.String("athlete", name),
					slog.Duration("total", total))
				rows[i].Days[day] = 0
			}
		}
	}

	for i := range rows {
		total := 0
		for _, flag := range rows[i].Days {
			total += flag
		}
		rows[i].TotalDays = total
	}
	return rows
}
