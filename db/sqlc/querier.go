package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type Querier interface {
	IncrementGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementHumanWinsCount(ctx context.Context, serverIp pqtype.Inet) error
	IncrementComputerWinsCount(ctx context.Context, serverIp pqtype.Inet) error
	GetGamesCreatedCount(ctx context.Context, serverIp pqtype.Inet) (int64, error)
	GetWinCounts(ctx context.Context, serverIp pqtype.Inet) (GetWinCountsRow, error)
}

var _ Querier = (*Queries)(nil)
