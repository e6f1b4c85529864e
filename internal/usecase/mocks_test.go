package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/infra/queue"
)

// MockAccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) SetResetToken(ctx context.Context, accountID int64, token string, expiresAt time.Time) error {
	args := m.Called(ctx, accountID, token, expiresAt)
	return args.Error(0)
}

func (m *MockAccountRepository) ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) (int64, error) {
	args := m.Called(ctx, token, newPasswordHash, now)
	return args.Get(0).(int64), args.Error(1)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, accountID, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, accountID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByAccount(ctx context.Context, accountID int64) ([]entity.Lead, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, accountID, id int64) error {
	args := m.Called(ctx, accountID, id)
	return args.Error(0)
}

func (m *MockLeadRepository) AppendStageChange(ctx context.Context, change *entity.StageChange) error {
	args := m.Called(ctx, change)
	return args.Error(0)
}

func (m *MockLeadRepository) ListStageChanges(ctx context.Context, leadID int64) ([]entity.StageChange, error) {
	args := m.Called(ctx, leadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.StageChange), args.Error(1)
}

// MockHasher
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Compare(hash, password string) error {
	args := m.Called(hash, password)
	return args.Error(0)
}

// MockTokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Sign(accountID int64, username string) (string, error) {
	args := m.Called(accountID, username)
	return args.String(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendPasswordReset(to, token string, expiresAt time.Time) error {
	args := m.Called(to, token, expiresAt)
	return args.Error(0)
}

// MockLeadEventProducer
type MockLeadEventProducer struct {
	mock.Mock
}

func (m *MockLeadEventProducer) PublishStageChange(ctx context.Context, payload queue.LeadEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
