package matcher

import (
	"time"

	"github.com/limbo/stravadictos/internal/fingerprint"
	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// WindowSize is how many trailing fingerprints each run leaves behind for
// the next one to locate the new/old boundary with.
const WindowSize = 3

// Directory resolves a feed display name to a registered athlete.
type Directory interface {
	Lookup(stravaName string) (*entity.Athlete, bool)
}

type Params struct {
	// Window holds the fingerprints persisted at the end of the previous
	// run, newest-first. Empty means no previous run: everything is new.
	Window []string
	// Skip drops this many leading feed entries before matching. Used to
	// compensate for delayed runs. Skipped entries still feed NextWindow.
	Skip int
	// StopAfter caps how many new activities are collected. 0 means no cap.
	StopAfter int
	// Day is the logical day the activities are recorded under.
	Day time.Time
}

type Result struct {
	// New holds the genuinely new activities in feed order.
	New []entity.ResolvedActivity
	// NextWindow is the fingerprints of the first entries of this feed
	// (pre-skip), to persist for the next run.
	NextWindow []string
	// Matched reports whether a full window match confirmed the boundary.
	// When false the whole feed was classified as new.
	Matched bool
}

// Match walks the feed newest-first and splits it at the point where the
// previous run's window reappears. Candidates must match the window in
// order, positionally: the previous run's earliest activities are assumed
// to resurface at the tail of the new feed in the same relative order. A
// streak that breaks before reaching the full window length was a false
// positive; its entries are reclassified as new and scanning continues.
func Match(feed []entity.RawActivity, dir Directory, p Params) Result {
	day := timeutil.DayOf(p.Day)
	k := len(p.Window)

	var res Result
	// The next window is fixed by the head of the feed alone; neither the
	// skip nor the stop cap may shorten it.
	for i := 0; i < len(feed) && i < WindowSize; i++ {
		res.NextWindow = append(res.NextWindow, fingerprint.Compute(fingerprint.Fields(feed[i]), day))
	}

	var held []entity.ResolvedActivity
	streak := 0

	for i, raw := range feed {
		if i < p.Skip {
			continue
		}
		rec := resolve(raw, day, dir)

		if k > 0 && rec.Fingerprint == p.Window[streak] {
			held = append(held, rec)
			streak++
			if streak == k {
				// Everything before the first candidate is new;
				// the rest of the feed is already recorded.
				res.Matched = true
				held = nil
				return res
			}
			continue
		}

		if streak > 0 {
			// False candidates: the streak broke, so the held entries
			// are new after all.
			res.New = append(res.New, held...)
			held = nil
			streak = 0
			if stopReached(&res, p) {
				return res
			}
			// The breaking entry may itself open a fresh streak.
			if rec.Fingerprint == p.Window[0] {
				held = append(held, rec)
				streak = 1
				continue
			}
		}

		res.New = append(res.New, rec)
		if stopReached(&res, p) {
			return res
		}
	}

	// Feed exhausted without confirming the boundary. Fall back to
	// treating everything, held candidates included, as new.
	res.New = append(res.New, held...)
	return res
}

func stopReached(res *Result, p Params) bool {
	if p.StopAfter <= 0 || len(res.New) < p.StopAfter {
		return false
	}
	res.New = res.New[:p.StopAfter]
	return true
}

func resolve(raw entity.RawActivity, day time.Time, dir Directory) entity.ResolvedActivity {
	rec := entity.ResolvedActivity{
		RawActivity: raw,
		Fingerprint: fingerprint.Compute(fingerprint.Fields(raw), day),
		Date:        day,
	}
	if dir != nil {
		if athlete, ok := dir.Lookup(raw.Athlete); ok {
			rec.Athlete = athlete
		}
	}
	return rec
}
