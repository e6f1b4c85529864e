package entity

import (
	"strings"
	"time"
)

// PlaceholderCompany replaces company names shorter than two trimmed
// characters. Leads are coerced rather than rejected.
const PlaceholderCompany = "Untitled Company"

// Lead is a prospective customer owned by exactly one Account. Stage always
// holds a canonical value; ContentStrategies is persisted comma-joined and
// split back into labels at presentation time.
type Lead struct {
	ID                int64     `json:"id"`
	AccountID         int64     `json:"account_id"`
	Company           string    `json:"company"`
	ContactName       string    `json:"contact_name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Stage             Stage     `json:"stage"`
	Notes             string    `json:"notes"`
	ContentStrategies string    `json:"content_strategies"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StageChange is one movement-history record, appended whenever a lead's
// stage changes. The initial create is recorded with an empty FromStage.
type StageChange struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"lead_id"`
	FromStage Stage     `json:"from_stage"`
	ToStage   Stage     `json:"to_stage"`
	ChangedAt time.Time `json:"changed_at"`
}

// NewLead builds a lead ready for insert: company coerced, stage classified,
// timestamps set.
func NewLead(accountID int64, company, contactName, email, phone, rawStage, notes string, strategies []string, now time.Time) *Lead {
	return &Lead{
		AccountID:         accountID,
		Company:           CoerceCompany(company),
		ContactName:       contactName,
		Email:             email,
		Phone:             phone,
		Stage:             ClassifyStage(rawStage),
		Notes:             notes,
		ContentStrategies: JoinStrategies(strategies),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CoerceCompany substitutes the placeholder for names shorter than two
// trimmed characters.
func CoerceCompany(company string) string {
	if trimmed := strings.TrimSpace(company); len(trimmed) >= 2 {
		return trimmed
	}
	return PlaceholderCompany
}

// SplitStrategies breaks the persisted comma-joined string into an ordered
// slice of trimmed, non-empty labels. Always returns a non-nil slice.
func SplitStrategies(joined string) []string {
	parts := strings.Split(joined, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if label := strings.TrimSpace(p); label != "" {
			out = append(out, label)
		}
	}
	return out
}

// JoinStrategies is the inverse of SplitStrategies, dropping empty labels
// before joining.
func JoinStrategies(labels []string) string {
	clean := make([]string, 0, len(labels))
	for _, l := range labels {
		if label := strings.TrimSpace(l); label != "" {
			clean = append(clean, label)
		}
	}
	return strings.Join(clean, ",")
}
