package sqlc

import (
	"context"
	"net"

	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager keeps the per-server counters. A nil manager is
// valid and records nothing, which is how analytics are switched off.
type AnalyticsManager struct {
	queries  Querier
	serverIp pqtype.Inet
}

func NewAnalyticsManager(queries Querier, serverIpNet net.IPNet) *AnalyticsManager {
	return &AnalyticsManager{
		queries:  queries,
		serverIp: pqtype.Inet{IPNet: serverIpNet, Valid: true},
	}
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) RecordGameCreated(ctx context.Context) error {
	if a == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	return a.queries.IncrementGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) RecordGameFinished(ctx context.Context, humanWon bool) error {
	if a == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, QuerierCtxTimeout)
	defer cancel()

	if humanWon {
		return a.queries.IncrementHumanWinsCount(ctx, a.serverIp)
	}
	return a.queries.IncrementComputerWinsCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetGamesCreatedCount(ctx context.Context) (int64, error) {
	return a.queries.GetGamesCreatedCount(ctx, a.serverIp)
}

func (a *AnalyticsManager) GetWinCounts(ctx context.Context) (GetWinCountsRow, error) {
	return a.queries.GetWinCounts(ctx, a.serverIp)
}
