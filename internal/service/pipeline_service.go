package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/stravadictos/internal/aggregator"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/internal/matcher"
	"github.com/limbo/stravadictos/internal/repository"
	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// PipelineService runs one full reporting pass: fetch the feed, cut it at
// the previous run's fingerprint window, fold the new activities into the
// week's report and persist. The window is written last, only after the
// report and audit rows landed, so a failed run never advances the
// dedup boundary past what was actually aggregated.
type PipelineService struct {
	feed           FeedClient
	reports        ReportStore
	athletesRepo   repository.AthletesRepositoryI
	weeksRepo      repository.WeeksRepositoryI
	activitiesRepo repository.ActivitiesRepositoryI
	stateRepo      repository.RunStateRepositoryI
	threshold      time.Duration
	maxRecords     int
}

type PipelineDeps struct {
	Feed           FeedClient
	Reports        ReportStore
	AthletesRepo   repository.AthletesRepositoryI
	WeeksRepo      repository.WeeksRepositoryI
	ActivitiesRepo repository.ActivitiesRepositoryI
	StateRepo      repository.RunStateRepositoryI
	Threshold      time.Duration
	MaxRecords     int
}

func NewPipelineService(deps *PipelineDeps) *PipelineService {
	if deps.Feed == nil || deps.Reports == nil || deps.AthletesRepo == nil ||
		deps.WeeksRepo == nil || deps.ActivitiesRepo == nil || deps.StateRepo == nil {
		log.Fatal("on pipeline service provided nil dependencies")
	}
	return &PipelineService{
		feed:           deps.Feed,
		reports:        deps.Reports,
		athletesRepo:   deps.AthletesRepo,
		weeksRepo:      deps.WeeksRepo,
		activitiesRepo: deps.ActivitiesRepo,
		stateRepo:      deps.StateRepo,
		threshold:      deps.Threshold,
		maxRecords:     deps.MaxRecords,
	}
}

// directory is the per-run view of the athletes table, keyed by the name
// Strava displays.
type directory map[string]*entity.Athlete

func (d directory) Lookup(stravaName string) (*entity.Athlete, bool) {
	athlete, ok := d[stravaName]
	return athlete, ok
}

// names returns the athlete full names in stable order, so template
// report rows do not reshuffle between runs.
func (d directory) names() []string {
	result := make([]string, 0, len(d))
	for _, athlete := range d {
		result = append(result, athlete.Name)
	}
	sort.Strings(result)
	return result
}

func (ps *PipelineService) Run(ctx context.Context, opts RunOptions) error {
	day := timeutil.DayOf(opts.Day)
	logger := slog.Default().With(
		slog.String("run_id", uuid.New().String()),
		slog.String("day", day.Format(timeutil.DayFormat)),
	)

	athletes, err := ps.athletesRepo.GetActive(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}
	dir := make(directory, len(athletes))
	for i := range athletes {
		dir[athletes[i].StravaName] = &athletes[i]
	}

	week, err := ps.weeksRepo.GetWeekFor(ctx, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrWeekNotFound) {
			return err
		}
		return errors.New("repository error: " + err.Error())
	}

	window, err := ps.stateRepo.GetWindow(ctx)
	if err != nil {
		return errors.New("repository error: " + err.Error())
	}

	feed, err := ps.feed.ClubActivities(ctx, ps.maxRecords)
	if err != nil {
		return errors.New("fetching feed error: " + err.Error())
	}
	logger.Info("feed fetched", slog.Int("entries", len(feed)))

	res := matcher.Match(feed, dir, matcher.Params{
		Window:    window,
		Skip:      opts.Skip,
		StopAfter: opts.StopAfter,
		Day:       day,
	})
	if !res.Matched {
		logger.Warn("previous window not found in feed, treating everything as new",
			slog.Int("new", len(res.New)))
	} else {
		logger.Info("duplicate boundary confirmed", slog.Int("new", len(res.New)))
	}

	rows, err := ps.reports.Load(*week, dir.names())
	if err != nil {
		return errors.New("loading report error: " + err.Error())
	}

	counter := aggregator.New(*week, ps.threshold)
	counter.Fold(res.New)
	rows = counter.MergeInto(rows)

	if err := ps.reports.Save(*week, rows); err != nil {
		return errors.New("saving report error: " + err.Error())
	}

	for i := range res.New {
		if res.New[i].Athlete == nil {
			continue
		}
		err := ps.activitiesRepo.Add(ctx, &res.New[i], week.Number)
		if err != nil {
			if errors.Is(err, errorvalues.ErrActivityExists) {
				// Fingerprint already audited, e.g. a rerun after a
				// partial failure past the report save.
				logger.Warn("activity already audited",
					slog.String("fingerprint", res.New[i].Fingerprint))
				continue
			}
			return errors.New("repository error: " + err.Error())
		}
	}

	if len(res.NextWindow) > 0 {
		if err := ps.stateRepo.SaveWindow(ctx, res.NextWindow); err != nil {
			return errors.New("repository error: " + err.Error())
		}
	} else {
		logger.Warn("empty feed, keeping previous window")
	}

	logger.Info("run finished",
		slog.Int("week", week.Number),
		slog.Int("activities", len(res.New)))
	return nil
}
