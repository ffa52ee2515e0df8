package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/stravadictos/pkg/entity"
)

type AthletesRepositoryI interface {
	// Registers new athlete. Name, StravaName and Active are necessary
	Create(ctx context.Context, athlete *entity.Athlete) error
	// Lists athletes taking part in the current challenge
	GetActive(ctx context.Context) ([]entity.Athlete, error)
	// Removes athlete by the name Strava displays for them
	DropByStravaName(ctx context.Context, stravaName string) error
	// Updates the completed-weeks counter of an athlete
	UpdateWeeksCompleted(ctx context.Context, stravaName string, weeks int) error
}

type WeeksRepositoryI interface {
	// Pre-seeds week rows between start (a Monday) and end (a Sunday)
	Fill(ctx context.Context, start, end time.Time) error
	// Finds the week a date belongs to
	GetWeekFor(ctx context.Context, t time.Time) (*entity.Week, error)
}

type ActivitiesRepositoryI interface {
	// Appends an audit row for a resolved activity
	Add(ctx context.Context, act *entity.ResolvedActivity, weekNumber int) error
	// Removes an audit row by its fingerprint
	DropByFingerprint(ctx context.Context, fp string) error
}

type RunStateRepositoryI interface {
	// Reads the fingerprint window left by the previous run. Empty slice
	// when no run has been recorded yet
	GetWindow(ctx context.Context) ([]string, error)
	// Overwrites the window. Must be the last persisted step of a run
	SaveWindow(ctx context.Context, window []string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
