package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/pkg/cleanup"
	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

// ActivitiesRepository keeps the append-only audit trail of resolved
// activities, keyed by fingerprint. The matcher and aggregator do not
// depend on it; it exists for replay and manual corrections.
type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(cfg DBConfig) *ActivitiesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activitiesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivitiesRepository{
		conn: pool,
	}
}

func NewActivitiesRepoWithConn(conn PgConnection) *ActivitiesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activitiesRepo: " + err.Error())
	}
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (actr *ActivitiesRepository) Add(ctx context.Context, act *entity.ResolvedActivity, weekNumber int) error {
	if act == nil {
		return errors.New("activity is nil")
	}
	athlete := act.RawActivity.Athlete
	if act.Athlete != nil {
		athlete = act.Athlete.StravaName
	}
	_, err := actr.conn.Exec(
		ctx,
		`INSERT INTO activities (fingerprint, week_number, name, athlete, duration_secs, date, date_unix) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		act.Fingerprint,
		weekNumber,
		act.Name,
		athlete,
		act.ElapsedSecs,
		act.Date.Format(timeutil.DayFormat),
		act.Date.Unix(),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrActivityExists
			}
		}
		return errors.New("adding activity db error: " + err.Error())
	}
	return nil
}

func (actr *ActivitiesRepository) DropByFingerprint(ctx context.Context, fp string) error {
	ct, err := actr.conn.Exec(
		ctx,
		`DELETE FROM activities WHERE fingerprint = $1;`,
		fp,
	)
	if err != nil {
		return errors.New("dropping activity error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errors.New("no activity with such fingerprint")
	}
	return nil
}
