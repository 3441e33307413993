package sqlc

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sqlc-dev/pqtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIpNet = net.IPNet{IP: net.ParseIP("10.0.0.7").To4(), Mask: net.CIDRMask(32, 32)}

func newTestAnalytics(t *testing.T) (*AnalyticsManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewDbManager(New(db), testIpNet).Analytics, mock
}

func TestRecordGameCreated(t *testing.T) {
	analytics, mock := newTestAnalytics(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_server_analytics (server_ip, games_created)")).
		WithArgs(pqtype.Inet{IPNet: testIpNet, Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, analytics.RecordGameCreated(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordGameFinished(t *testing.T) {
	tests := []struct {
		name          string
		humanWon      bool
		expectedQuery string
	}{
		{"human won", true, "SET human_wins = game_server_analytics.human_wins + 1"},
		{"computer won", false, "SET computer_wins = game_server_analytics.computer_wins + 1"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			analytics, mock := newTestAnalytics(t)

			mock.ExpectExec(regexp.QuoteMeta(test.expectedQuery)).
				WithArgs(analytics.ServerIp()).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, analytics.RecordGameFinished(context.Background(), test.humanWon))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRecordPropagatesErrors(t *testing.T) {
	analytics, mock := newTestAnalytics(t)
	dbErr := errors.New("connection refused")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_server_analytics")).WillReturnError(dbErr)

	assert.ErrorIs(t, analytics.RecordGameCreated(context.Background()), dbErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCounts(t *testing.T) {
	analytics, mock := newTestAnalytics(t)

	mock.ExpectQuery(`SELECT games_created FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(pqtype.Inet{IPNet: testIpNet, Valid: true}).
		WillReturnRows(sqlmock.NewRows([]string{"games_created"}).AddRow(3))
	mock.ExpectQuery(`SELECT human_wins, computer_wins FROM game_server_analytics WHERE server_ip = \$1`).
		WithArgs(pqtype.Inet{IPNet: testIpNet, Valid: true}).
		WillReturnRows(sqlmock.NewRows([]string{"human_wins", "computer_wins"}).AddRow(2, 1))

	gamesCreated, err := analytics.GetGamesCreatedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), gamesCreated)

	wins, err := analytics.GetWinCounts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, GetWinCountsRow{HumanWins: 2, ComputerWins: 1}, wins)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNilAnalyticsRecordsNothing(t *testing.T) {
	var analytics *AnalyticsManager

	assert.NoError(t, analytics.RecordGameCreated(context.Background()))
	assert.NoError(t, analytics.RecordGameFinished(context.Background(), true))
}
