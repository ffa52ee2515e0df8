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
)

type AthletesRepository struct {
	conn PgConnection
}

func NewAthletesRepo(cfg DBConfig) *AthletesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for athletesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for athletesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &AthletesRepository{
		conn: pool,
	}
}

func NewAthletesRepoWithConn(conn PgConnection) *AthletesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for athletesRepo: " + err.Error())
	}
	return &AthletesRepository{
		conn: conn,
	}
}

func (ar *AthletesRepository) Create(ctx context.Context, athlete *entity.Athlete) error {
	if athlete == nil {
		return errors.New("athlete is nil")
	}
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO athletes (name, strava_name, active, weeks_completed) VALUES ($1, $2, $3, $4);`,
		athlete.Name,
		athlete.StravaName,
		athlete.Active,
		athlete.WeeksCompleted,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return errorvalues.ErrAthleteExists
			}
		}
		return errors.New("creating athlete db error: " + err.Error())
	}
	return nil
}

func (ar *AthletesRepository) GetActive(ctx context.Context) ([]entity.Athlete, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, name, strava_name, active, weeks_completed FROM athletes WHERE active = true;`,
	)
	if err != nil {
		return nil, errors.New("getting active athletes error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Athlete, 0, 16)
	for rows.Next() {
		athlete := entity.Athlete{}
		err = rows.Scan(&athlete.ID, &athlete.Name, &athlete.StravaName, &athlete.Active, &athlete.WeeksCompleted)
		if err != nil {
			return nil, errors.New("athlete row parsing error: " + err.Error())
		}
		result = append(result, athlete)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected athlete rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (ar *AthletesRepository) DropByStravaName(ctx context.Context, stravaName string) error {
	ct, err := ar.conn.Exec(
		ctx,
		`DELETE FROM athletes WHERE strava_name = $1;`,
		stravaName,
	)
	if err != nil {
		return errors.New("dropping athlete error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAthleteNotFound
	}
	return nil
}

func (ar *AthletesRepository) UpdateWeeksCompleted(ctx context.Context, stravaName string, weeks int) error {
	ct, err := ar.conn.Exec(
		ctx,
		`UPDATE athletes SET weeks_completed = $1 WHERE strava_name = $2;`,
		weeks,
		stravaName,
	)
	if err != nil {
		return errors.New("updating weeks completed error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAthleteNotFound
	}
	return nil
}
