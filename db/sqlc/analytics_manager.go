package sqlc

import (
	"context"
	"net"

	"github.com/rs/zerolog/log"
	"github.com/sqlc-dev/pqtype"
)

// AnalyticsManager counts game server activity per server ip. A manager
// without queries records nothing, which is how analytics get turned off.
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

func (a *AnalyticsManager) IsEnabled() bool {
	return a != nil && a.queries != nil
}

func (a *AnalyticsManager) ServerIp() pqtype.Inet {
	return a.serverIp
}

func (a *AnalyticsManager) RecordGameCreated() {
	a.record("games_created", func(ctx context.Context) error {
		return a.queries.IncrementGamesCreatedCount(ctx, a.serverIp)
	})
}

func (a *AnalyticsManager) RecordGameStarted() {
	a.record("games_started", func(ctx context.Context) error {
		return a.queries.IncrementGamesStartedCount(ctx, a.serverIp)
	})
}

func (a *AnalyticsManager) RecordShotFired() {
	a.record("shots_fired", func(ctx context.Context) error {
		return a.queries.IncrementShotsFiredCount(ctx, a.serverIp)
	})
}

// GetServerAnalytics reads every counter of this server. A disabled
// manager reports zeros.
func (a *AnalyticsManager) GetServerAnalytics(ctx context.Context) (GetServerAnalyticsRow, error) {
	if !a.IsEnabled() {
		return GetServerAnalyticsRow{}, nil
	}
	return a.queries.GetServerAnalytics(ctx, a.serverIp)
}

// record never fails the caller; analytics are best effort.
func (a *AnalyticsManager) record(counter string, increment func(context.Context) error) {
	if !a.IsEnabled() {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), QuerierCtxTimeout)
	defer cancel()

	if err := increment(ctx); err != nil {
		log.Error().Err(err).Str("counter", counter).Msg("failed to record analytics")
	}
}
