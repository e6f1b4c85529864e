package usecase

import (
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/funnel"
)

type RegisterInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterOutput struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

type RequestResetInput struct {
	Username string `json:"username"`
}

type ResetPasswordInput struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type LeadInput struct {
	Company           string   `json:"company"`
	ContactName       string   `json:"contact_name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Stage             string   `json:"stage"`
	Notes             string   `json:"notes"`
	ContentStrategies []string `json:"content_strategies"`
}

// LeadUpdateInput is a partial update: only non-nil fields change.
type LeadUpdateInput struct {
	Company           *string   `json:"company"`
	ContactName       *string   `json:"contact_name"`
	Email             *string   `json:"email"`
	Phone             *string   `json:"phone"`
	Stage             *string   `json:"stage"`
	Notes             *string   `json:"notes"`
	ContentStrategies *[]string `json:"content_strategies"`
}

type UpdatedLeadOutput struct {
	Lead    funnel.LeadView      `json:"lead"`
	History []entity.StageChange `json:"history"`
}
