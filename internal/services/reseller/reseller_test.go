package reseller_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guswanstore/guswanmy/internal/models"
	"github.com/guswanstore/guswanmy/internal/services/reseller"
	"github.com/guswanstore/guswanmy/internal/storage/repository"
)

type ResellerRepoMock struct {
	mock.Mock
}

func (m *ResellerRepoMock) CreateReseller(ctx context.Context, r models.Reseller) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *ResellerRepoMock) GetResellerByEmail(ctx context.Context, email string) (*models.Reseller, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reseller), args.Error(1)
}

func (m *ResellerRepoMock) IsReseller(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *ResellerRepoMock) ListResellers(ctx context.Context, limit, offset int) ([]*models.Reseller, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Reseller), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestResellerService_Stats(t *testing.T) {
	tests := []struct {
		name           string
		email          string
		setupMocks     func(r *ResellerRepoMock)
		wantErr        error
		wantMonthSales int
		wantMonthComm  int64
	}{
		{
			name:  "monthly estimates are thirty percent of totals",
			email: "seller@example.com",
			setupMocks: func(r *ResellerRepoMock) {
				r.On("GetResellerByEmail", mock.Anything, "seller@example.com").
					Return(&models.Reseller{
						ID:         "1f0d7a9e",
						Email:      "seller@example.com",
						Name:       "Budi",
						JoinDate:   time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
						Sales:      47,
						Commission: 705000,
					}, nil).Once()
			},
			wantMonthSales: 14,
			wantMonthComm:  211500,
		},
		{
			name:  "not a reseller",
			email: "user@example.com",
			setupMocks: func(r *ResellerRepoMock) {
				r.On("GetResellerByEmail", mock.Anything, "user@example.com").
					Return(nil, repository.ErrNotFound).Once()
			},
			wantErr: reseller.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ResellerRepoMock)
			tt.setupMocks(repo)
			svc := reseller.NewService(repo, newNoopLogger())

			got, err := svc.Stats(context.Background(), tt.email)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantMonthSales, got.MonthlySales)
				assert.Equal(t, tt.wantMonthComm, got.MonthlyCommission)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestResellerService_Create(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		setupMocks func(r *ResellerRepoMock)
		wantErr    error
	}{
		{
			name:  "new reseller starts with zeroed counters",
			email: "new@example.com",
			setupMocks: func(r *ResellerRepoMock) {
				r.On("IsReseller", mock.Anything, "new@example.com").Return(false, nil).Once()
				r.On("CreateReseller", mock.Anything, mock.MatchedBy(func(res models.Reseller) bool {
					return res.Email == "new@example.com" && res.ID != "" &&
						res.Sales == 0 && res.Commission == 0
				})).Return(nil).Once()
			},
		},
		{
			name:  "duplicate reseller is rejected",
			email: "taken@example.com",
			setupMocks: func(r *ResellerRepoMock) {
				r.On("IsReseller", mock.Anything, "taken@example.com").Return(true, nil).Once()
			},
			wantErr: reseller.ErrExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(ResellerRepoMock)
			tt.setupMocks(repo)
			svc := reseller.NewService(repo, newNoopLogger())

			got, err := svc.Create(context.Background(), tt.email, "Budi")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.email, got.Email)
			}
			repo.AssertExpectations(t)
		})
	}
}
