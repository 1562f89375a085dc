package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vgrishin/CourtBooker/internal/domain"
	"github.com/vgrishin/CourtBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInterestService_Register_NormalizesDate(t *testing.T) {
	ledger := mocks.NewMockInterestLedger(t)
	log := newTestLogger(t)

	svc := NewInterestService(ledger, 720*time.Hour, log)

	var captured *domain.InterestRecord
	ledger.EXPECT().RegisterInterest(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, rec *domain.InterestRecord) {
			captured = rec
		}).Return(nil)

	loc := time.FixedZone("UTC+5", 5*3600)
	date := time.Date(2025, 6, 14, 23, 30, 0, 0, loc)

	err := svc.RegisterInterest(context.Background(), "u1", date)

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "u1", captured.UserID)
	assert.NotEmpty(t, captured.ID)
	assert.Equal(t, domain.DateOnly(date), captured.InterestDate)
	assert.Equal(t, time.UTC, captured.InterestDate.Location())
}

func TestInterestService_Register_EmptyUser(t *testing.T) {
	ledger := mocks.NewMockInterestLedger(t)
	log := newTestLogger(t)

	svc := NewInterestService(ledger, 720*time.Hour, log)

	err := svc.RegisterInterest(context.Background(), "", time.Now())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	ledger.AssertNotCalled(t, "RegisterInterest", mock.Anything, mock.Anything)
}

func TestInterestService_Register_LedgerError(t *testing.T) {
	ledger := mocks.NewMockInterestLedger(t)
	log := newTestLogger(t)

	svc := NewInterestService(ledger, 720*time.Hour, log)

	ledger.EXPECT().RegisterInterest(mock.Anything, mock.Anything).Return(errors.New("db error"))

	err := svc.RegisterInterest(context.Background(), "u1", time.Now())

	require.Error(t, err)
}

func TestInterestService_Sweep_UsesRetention(t *testing.T) {
	ledger := mocks.NewMockInterestLedger(t)
	log := newTestLogger(t)

	retention := 720 * time.Hour
	svc := NewInterestService(ledger, retention, log)

	var cutoff time.Time
	ledger.EXPECT().DeleteStale(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, before time.Time) {
			cutoff = before
		}).Return(int64(3), nil)

	n, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.WithinDuration(t, time.Now().UTC().Add(-retention), cutoff, time.Minute)
}

func TestInterestService_Sweep_Error(t *testing.T) {
	ledger := mocks.NewMockInterestLedger(t)
	log := newTestLogger(t)

	svc := NewInterestService(ledger, 720*time.Hour, log)

	ledger.EXPECT().DeleteStale(mock.Anything, mock.Anything).Return(int64(0), errors.New("db error"))

	_, err := svc.Sweep(context.Background())

	require.Error(t, err)
}
