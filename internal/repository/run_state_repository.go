package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/stravadictos/pkg/cleanup"
)

// RunStateRepository persists the trailing fingerprint window between
// runs. A single row table: the window is read at run start and
// overwritten as the very last step of a successful run, so a crash
// mid-run leaves the previous window intact.
type RunStateRepository struct {
	conn PgConnection
}

func NewRunStateRepo(cfg DBConfig) *RunStateRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for runStateRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for runStateRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RunStateRepository{
		conn: pool,
	}
}

func NewRunStateRepoWithConn(conn PgConnection) *RunStateRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for runStateRepo: " + err.Error())
	}
	return &RunStateRepository{
		conn: conn,
	}
}

func (rsr *RunStateRepository) GetWindow(ctx context.Context) ([]string, error) {
	row := rsr.conn.QueryRow(
		ctx,
		`SELECT last_seen FROM run_state WHERE id = 1;`,
	)
	var window []string
	if err := row.Scan(&window); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []string{}, nil
		}
		return nil, errors.New("reading last seen window error: " + err.Error())
	}
	return window, nil
}

func (rsr *RunStateRepository) SaveWindow(ctx context.Context, window []string) error {
	_, err := rsr.conn.Exec(
		ctx,
		`INSERT INTO run_state (id, last_seen, updated_at) VALUES (1, $1, now()) ON CONFLICT (id) DO UPDATE SET last_seen = $1, updated_at = now();`,
		window,
	)
	if err != nil {
		return errors.New("saving last seen window error: " + err.Error())
	}
	return nil
}
