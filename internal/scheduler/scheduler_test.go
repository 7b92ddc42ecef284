package scheduler

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/greenhouse_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlertSource struct {
	mock.Mock
}

func (m *MockAlertSource) Alerts(ctx context.Context, now time.Time) ([]domain.Alert, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Alert), args.Error(1)
}

func TestNewScheduler_RejectsBadInput(t *testing.T) {
	_, err := NewScheduler("not a cron", "", &MockAlertSource{}, nil)
	assert.Error(t, err)

	_, err = NewScheduler("0 6 * * *", "Mars/Olympus", &MockAlertSource{}, nil)
	assert.Error(t, err)
}

func TestRunOnce_UsesConfiguredTimezone(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	source := new(MockAlertSource)

	s, err := NewScheduler("0 6 * * *", "Africa/Cairo", source, logger)
	require.NoError(t, err)
	fixed := time.Date(2024, 6, 1, 22, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	alert := domain.Alert{ID: "stagnant-cycle-c1", Kind: domain.AlertStagnantCycle, RelatedEntityID: "c1"}
	source.On("Alerts", mock.Anything, mock.MatchedBy(func(now time.Time) bool {
		return now.Equal(fixed) && now.Location().String() == "Africa/Cairo"
	})).Return([]domain.Alert{alert}, nil).Once()

	alerts, err := s.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Alert{alert}, alerts)
	assert.Contains(t, buf.String(), "stagnant-cycle-c1")
	source.AssertExpectations(t)
}

func TestRunOnce_PropagatesError(t *testing.T) {
	source := new(MockAlertSource)
	s, err := NewScheduler("@daily", "", source, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	require.NoError(t, err)

	boom := errors.New("db down")
	source.On("Alerts", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err = s.RunOnce(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestStartAndStop(t *testing.T) {
	s, err := NewScheduler("0 6 * * *", "UTC", new(MockAlertSource), nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}
