package service

import (
	"context"
	"time"

	"github.com/limbo/stravadictos/pkg/entity"
)

type RegisterAthleteRequest struct {
	Name       string `validate:"required,athlete_name,min=3,max=100"`
	StravaName string `validate:"required,athlete_name,min=3,max=100"`
	Active     bool
}

type AthletesServiceI interface {
	// Validates and registers a new club member
	Register(ctx context.Context, req *RegisterAthleteRequest) error
	// Removes a member by their Strava display name
	Drop(ctx context.Context, stravaName string) error
	// Sets the completed-weeks counter of a member
	SetWeeksCompleted(ctx context.Context, stravaName string, weeks int) error
}

// FeedClient reads the club's activity feed, newest first.
type FeedClient interface {
	ClubActivities(ctx context.Context, total int) ([]entity.RawActivity, error)
}

// ReportStore persists one report table per week.
type ReportStore interface {
	Load(week entity.Week, athletes []string) ([]entity.WeeklyRow, error)
	Save(week entity.Week, rows []entity.WeeklyRow) error
}

// RunOptions tune a single pipeline run.
type RunOptions struct {
	// Day is the logical day the fetched activities are recorded under.
	Day time.Time
	// Skip drops this many leading feed entries, compensating a late run.
	Skip int
	// StopAfter caps collected new activities. 0 means no cap.
	StopAfter int
}

type PipelineServiceI interface {
	Run(ctx context.Context, opts RunOptions) error
}
