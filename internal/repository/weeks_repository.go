package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/stravadictos/internal/error_values"
	"github.com/limbo/stravadictos/pkg/cleanup"
	"github.com/limbo/stravadictos/pkg/entity"
	"github.com/limbo/stravadictos/pkg/timeutil"
)

type WeeksRepository struct {
	conn PgConnection
}

func NewWeeksRepo(cfg DBConfig) *WeeksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for weeksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weeksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &WeeksRepository{
		conn: pool,
	}
}

func NewWeeksRepoWithConn(conn PgConnection) *WeeksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for weeksRepo: " + err.Error())
	}
	return &WeeksRepository{
		conn: conn,
	}
}

// Fill seeds one row per week between start and end. The boundaries are a
// caller contract: start must be a Monday and end a Sunday.
func (wr *WeeksRepository) Fill(ctx context.Context, start, end time.Time) error {
	if err := timeutil.ValidateWeekRange(start, end); err != nil {
		return err
	}
	weekNumber := 1
	for monday := timeutil.DayOf(start); monday.Before(end); monday = monday.AddDate(0, 0, 7) {
		sunday := monday.AddDate(0, 0, 6)
		// End boundary is the start of the following Monday so that all
		// of Sunday still falls inside the week.
		_, err := wr.conn.Exec(
			ctx,
			`INSERT INTO weeks (week_number, week_start, week_end, week_start_unix, week_end_unix) VALUES ($1, $2, $3, $4, $5);`,
			weekNumber,
			monday.Format(timeutil.DayFormat),
			sunday.Format(timeutil.DayFormat),
			monday.Unix(),
			monday.AddDate(0, 0, 7).Unix(),
		)
		if err != nil {
			return errors.New("inserting week row error: " + err.Error())
		}
		weekNumber++
	}
	return nil
}

func (wr *WeeksRepository) GetWeekFor(ctx context.Context, t time.Time) (*entity.Week, error) {
	row := wr.conn.QueryRow(
		ctx,
		`SELECT week_number, week_start, week_end FROM weeks WHERE $1 >= week_start_unix AND $1 < week_end_unix;`,
		t.Unix(),
	)
	var week entity.Week
	if err := row.Scan(&week.Number, &week.Start, &week.End); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrWeekNotFound
		}
		return nil, errors.New("searching week by date error: " + err.Error())
	}
	return &week, nil
}
