package usecase

import (
	"context"
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/infra/queue"
)

type AccountRepositoryInterface interface {
	Create(ctx context.Context, account *entity.Account) error
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
	FindByID(ctx context.Context, id int64) (*entity.Account, error)
	SetResetToken(ctx context.Context, accountID int64, token string, expiresAt time.Time) error
	ConsumeResetToken(ctx context.Context, token, newPasswordHash string, now time.Time) (int64, error)
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, accountID, id int64) (*entity.Lead, error)
	ListByAccount(ctx context.Context, accountID int64) ([]entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, accountID, id int64) error
	AppendStageChange(ctx context.Context, change *entity.StageChange) error
	ListStageChanges(ctx context.Context, leadID int64) ([]entity.StageChange, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Sign(accountID int64, username string) (string, error)
}

type EmailService interface {
	SendPasswordReset(to, token string, expiresAt time.Time) error
}

type LeadEventProducerInterface interface {
	PublishStageChange(ctx context.Context, payload queue.LeadEventPayload) error
}
