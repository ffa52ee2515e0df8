package matcher_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/limbo/stravadictos/internal/fingerprint"
	"github.com/limbo/stravadictos/internal/matcher"
	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var day = time.Date(2023, 2, 7, 0, 0, 0, 0, time.UTC)

type stubDirectory map[string]*entity.Athlete

func (d stubDirectory) Lookup(stravaName string) (*entity.Athlete, bool) {
	athlete, ok := d[stravaName]
	return athlete, ok
}

func act(title string, secs int64) entity.RawActivity {
	return entity.RawActivity{
		Athlete:     "Ana Torres",
		Name:        title,
		SportType:   "Run",
		Distance:    5000,
		ElapsedSecs: secs,
	}
}

func fp(a entity.RawActivity) string {
	return fingerprint.Compute(fingerprint.Fields(a), day)
}

func titles(acts []entity.ResolvedActivity) []string {
	result := make([]string, 0, len(acts))
	for _, a := range acts {
		result = append(result, a.Name)
	}
	return result
}

// feedOf builds n entries named seq-0..seq-n-1, newest first.
func feedOf(n int) []entity.RawActivity {
	feed := make([]entity.RawActivity, 0, n)
	for i := 0; i < n; i++ {
		feed = append(feed, act(fmt.Sprintf("seq-%d", i), int64(600+i)))
	}
	return feed
}

func TestMatchBoundary(t *testing.T) {
	// 5 new entries, then the previous window verbatim, then older junk.
	feed := feedOf(10)
	window := []string{fp(feed[5]), fp(feed[6]), fp(feed[7])}

	res := matcher.Match(feed, nil, matcher.Params{Window: window, Day: day})

	assert.True(t, res.Matched)
	assert.Equal(t, []string{"seq-0", "seq-1", "seq-2", "seq-3", "seq-4"}, titles(res.New))
	assert.Equal(t, []string{fp(feed[0]), fp(feed[1]), fp(feed[2])}, res.NextWindow)
}

func TestMatchFalseCandidateRecovery(t *testing.T) {
	// Entry 2 matches window position 0 but the streak breaks at entry 3:
	// the held candidate must come back out as new, in feed order.
	feed := feedOf(8)
	window := []string{fp(feed[2]), "never-seen", "never-seen-either"}

	res := matcher.Match(feed, nil, matcher.Params{Window: window, Day: day})

	assert.False(t, res.Matched)
	assert.Equal(t, titles(toResolved(feed)), titles(res.New))
}

func TestMatchStreakBreakThenRealBoundary(t *testing.T) {
	// A false partial match ahead of the real one must not hide it.
	feed := feedOf(9)
	window := []string{fp(feed[1]), fp(feed[4]), fp(feed[5])}
	// feed[1] opens a streak that breaks at feed[2]; the real boundary
	// starts at feed[3], which repeats the first window fingerprint.
	feed[3] = feed[1]

	res := matcher.Match(feed, nil, matcher.Params{Window: window, Day: day})

	assert.True(t, res.Matched)
	assert.Equal(t, []string{"seq-0", "seq-1", "seq-2"}, titles(res.New))
}

func TestMatchFeedExhausted(t *testing.T) {
	testCases := []struct {
		Desc   string
		Feed   []entity.RawActivity
		Window []string
	}{
		{
			Desc:   "window never appears",
			Feed:   feedOf(6),
			Window: []string{"a", "b", "c"},
		},
		{
			Desc:   "feed shorter than window",
			Feed:   feedOf(2),
			Window: []string{"a", "b", "c"},
		},
		{
			Desc:   "first run with empty window",
			Feed:   feedOf(4),
			Window: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			res := matcher.Match(tc.Feed, nil, matcher.Params{Window: tc.Window, Day: day})
			assert.False(t, res.Matched)
			assert.Len(t, res.New, len(tc.Feed))
		})
	}
}

func TestMatchPartialStreakAtFeedEnd(t *testing.T) {
	// The feed ends while two candidates are held: both are new.
	feed := feedOf(5)
	window := []string{fp(feed[3]), fp(feed[4]), "never-confirmed"}

	res := matcher.Match(feed, nil, matcher.Params{Window: window, Day: day})

	assert.False(t, res.Matched)
	assert.Equal(t, []string{"seq-0", "seq-1", "seq-2", "seq-3", "seq-4"}, titles(res.New))
}

func TestMatchSkip(t *testing.T) {
	feed := feedOf(6)
	res := matcher.Match(feed, nil, matcher.Params{Skip: 2, Day: day})

	assert.Equal(t, []string{"seq-2", "seq-3", "seq-4", "seq-5"}, titles(res.New))
	// Skipped entries still define the next window.
	assert.Equal(t, []string{fp(feed[0]), fp(feed[1]), fp(feed[2])}, res.NextWindow)
}

func TestMatchStopAfter(t *testing.T) {
	feed := feedOf(10)
	res := matcher.Match(feed, nil, matcher.Params{StopAfter: 4, Day: day})

	assert.Equal(t, []string{"seq-0", "seq-1", "seq-2", "seq-3"}, titles(res.New))
}

func TestMatchStopAfterKeepsFullNextWindow(t *testing.T) {
	// A stop cap below the window size only limits collected activities;
	// the persisted window still covers the first three feed entries.
	feed := feedOf(10)
	res := matcher.Match(feed, nil, matcher.Params{StopAfter: 1, Day: day})

	assert.Equal(t, []string{"seq-0"}, titles(res.New))
	assert.Equal(t, []string{fp(feed[0]), fp(feed[1]), fp(feed[2])}, res.NextWindow)
}

func TestMatchShortFeedWindow(t *testing.T) {
	feed := feedOf(2)
	res := matcher.Match(feed, nil, matcher.Params{Day: day})
	assert.Len(t, res.NextWindow, 2)
}

func TestMatchResolvesAthletes(t *testing.T) {
	registered := &entity.Athlete{Name: "Ana Torres Full", StravaName: "Ana Torres", Active: true}
	dir := stubDirectory{"Ana Torres": registered}

	feed := []entity.RawActivity{act("run", 1800)}
	feed = append(feed, entity.RawActivity{Athlete: "Stranger", Name: "walk", ElapsedSecs: 900})

	res := matcher.Match(feed, dir, matcher.Params{Day: day})
	require.Len(t, res.New, 2)
	assert.Equal(t, registered, res.New[0].Athlete)
	// Unknown names stay unassigned but are still classified as seen.
	assert.Nil(t, res.New[1].Athlete)
	assert.Equal(t, day, res.New[0].Date)
	assert.NotEmpty(t, res.New[0].Fingerprint)
}

func toResolved(feed []entity.RawActivity) []entity.ResolvedActivity {
	result := make([]entity.ResolvedActivity, 0, len(feed))
	for _, raw := range feed {
		result = append(result, entity.ResolvedActivity{RawActivity: raw})
	}
	return result
}
