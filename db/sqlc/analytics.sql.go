package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

const incrementGamesCreatedCount = `-- name: IncrementGamesCreatedCount :exec
INSERT INTO game_server_analytics (server_ip, games_created)
VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE
SET games_created = game_server_analytics.games_created + 1
`

func (q *Queries) IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementGamesCreatedCount, serverIp)
	return err
}

const incrementHumanWinsCount = `-- name: IncrementHumanWinsCount :exec
INSERT INTO game_server_analytics (server_ip, human_wins)
VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE
SET human_wins = game_server_analytics.human_wins + 1
`

func (q *Queries) IncrementHumanWinsCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementHumanWinsCount, serverIp)
	return err
}

const incrementComputerWinsCount = `-- name: IncrementComputerWinsCount :exec
INSERT INTO game_server_analytics (server_ip, computer_wins)
VALUES ($1, 1)
ON CONFLICT (server_ip) DO UPDATE
SET computer_wins = game_server_analytics.computer_wins + 1
`

func (q *Queries) IncrementComputerWinsCount(ctx context.Context, serverIp pqtype.Inet) error {
	_, err := q.db.ExecContext(ctx, incrementComputerWinsCount, serverIp)
	return err
}

const getGamesCreatedCount = `-- name: GetGamesCreatedCount :one
SELECT games_created FROM game_server_analytics WHERE server_ip = $1
`

func (q *Queries) GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error) {
	row := q.db.QueryRowContext(ctx, getGamesCreatedCount, serverIp)
	var games_created int64
	err := row.Scan(&games_created)
	return games_created, err
}

const getWinCounts = `-- name: GetWinCounts :one
SELECT human_wins, computer_wins FROM game_server_analytics WHERE server_ip = $1
`

type GetWinCountsRow struct {
	HumanWins    int64
	ComputerWins int64
}

func (q *Queries) GetWinCounts(ctx context.Context, serverIp pqtype.Inet) (GetWinCountsRow, error) {
	row := q.db.QueryRowContext(ctx, getWinCounts, serverIp)
	var i GetWinCountsRow
	err := row.Scan(&i.HumanWins, &i.ComputerWins)
	return i, err
}
