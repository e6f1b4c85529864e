package usecase

import (
	"context"
	"fmt"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

type LoginUseCase struct {
	Accounts AccountRepositoryInterface
	Hasher   PasswordHasher
	Tokens   TokenIssuer
}

func NewLoginUseCase(accounts AccountRepositoryInterface, hasher PasswordHasher, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{
		Accounts: accounts,
		Hasher:   hasher,
		Tokens:   tokens,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	account, err := uc.Accounts.FindByUsername(ctx, entity.NormalizeUsername(input.Username))
	if err != nil {
		return nil, err
	}

	if err := uc.Hasher.Compare(account.PasswordHash, input.Password); err != nil {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Sign(account.ID, account.Username)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	return &LoginOutput{
		ID:       account.ID,
		Username: account.Username,
		Token:    token,
	}, nil
}
