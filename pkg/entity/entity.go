package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawActivity is one entry of the club feed exactly as fetched.
// The feed is newest-first and carries no stable activity id.
type RawActivity struct {
	Athlete     string  `json:"athlete"`
	Name        string  `json:"name"`
	SportType   string  `json:"sport_type"`
	Distance    float64 `json:"distance"`
	ElapsedSecs int64   `json:"elapsed_secs"`
}

type Athlete struct {
	ID             uuid.UUID
	Name           string
	StravaName     string
	Active         bool
	WeeksCompleted int
}

// ResolvedActivity is a RawActivity after deduplication: fingerprinted,
// dated with the logical day of the run and attributed to a registered
// athlete. Athlete is nil when the feed name matches nobody in the
// directory.
type ResolvedActivity struct {
	RawActivity
	Fingerprint string
	Date        time.Time
	Athlete     *Athlete
}

type Week struct {
	Number int
	Start  time.Time
	End    time.Time
}

// WeeklyRow is one persisted report line: a flag per weekday
// (Monday-start) plus the recomputed TOTAL_DAYS column.
type WeeklyRow struct {
	Athlete   string
	Days      [7]int
	TotalDays int
}
