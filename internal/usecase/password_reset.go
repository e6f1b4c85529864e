package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

// ResetTokenTTL bounds how long a reset token stays valid.
const ResetTokenTTL = time.Hour

type RequestResetUseCase struct {
	Accounts     AccountRepositoryInterface
	EmailService EmailService
}

func NewRequestResetUseCase(accounts AccountRepositoryInterface, emailService EmailService) *RequestResetUseCase {
	return &RequestResetUseCase{
		Accounts:     accounts,
		EmailService: emailService,
	}
}

func (uc *RequestResetUseCase) Execute(ctx context.Context, input RequestResetInput) error {
	account, err := uc.Accounts.FindByUsername(ctx, entity.NormalizeUsername(input.Username))
	if err != nil {
		return err
	}

	token := uuid.NewString()
	expiresAt := time.Now().UTC().Add(ResetTokenTTL)

	if err := uc.Accounts.SetResetToken(ctx, account.ID, token, expiresAt); err != nil {
		return fmt.Errorf("storing reset token: %w", err)
	}

	if err := uc.EmailService.SendPasswordReset(account.Username, token, expiresAt); err != nil {
		return fmt.Errorf("sending reset email: %w", err)
	}

	return nil
}

type ResetPasswordUseCase struct {
	Accounts AccountRepositoryInterface
	Hasher   PasswordHasher
}

func NewResetPasswordUseCase(accounts AccountRepositoryInterface, hasher PasswordHasher) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		Accounts: accounts,
		Hasher:   hasher,
	}
}

// Execute swaps the password and clears the token in one atomic update, so a
// token can never be consumed twice and no partial state is observable.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) error {
	if errs := ValidateResetPasswordInput(input); len(errs) > 0 {
		return ValidationErrors(errs)
	}

	hash, err := uc.Hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	if _, err := uc.Accounts.ConsumeResetToken(ctx, input.Token, hash, time.Now().UTC()); err != nil {
		return err
	}

	return nil
}
