package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

type RegisterUseCase struct {
	Accounts AccountRepositoryInterface
	Hasher   PasswordHasher
}

func NewRegisterUseCase(accounts AccountRepositoryInterface, hasher PasswordHasher) *RegisterUseCase {
	return &RegisterUseCase{
		Accounts: accounts,
		Hasher:   hasher,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	if errs := ValidateRegisterInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	account := &entity.Account{
		Username:     entity.NormalizeUsername(input.Username),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.Accounts.Create(ctx, account); err != nil {
		return nil, err
	}

	return &RegisterOutput{
		ID:        account.ID,
		Username:  account.Username,
		CreatedAt: account.CreatedAt,
	}, nil
}
