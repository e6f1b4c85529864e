package funnel

import (
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

// LeadView is the normalized projection served to clients. Optional fields
// default to empty strings and content strategies come back as an ordered
// slice of labels.
type LeadView struct {
	ID                int64        `json:"id"`
	Company           string       `json:"company"`
	ContactName       string       `json:"contact_name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	Stage             entity.Stage `json:"stage"`
	Notes             string       `json:"notes"`
	ContentStrategies []string     `json:"content_strategies"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// GroupedLeads always carries all five canonical stage keys, so the response
// shape is fixed regardless of the input.
type GroupedLeads map[entity.Stage][]LeadView

// GroupByStage partitions leads into one bucket per canonical stage,
// preserving input order within each bucket. Deterministic and
// side-effect-free: the sum of bucket lengths always equals len(leads).
func GroupByStage(leads []entity.Lead) GroupedLeads {
	grouped := make(GroupedLeads, len(entity.Stages))
	for _, stage := range entity.Stages {
		grouped[stage] = []LeadView{}
	}

	for _, lead := range leads {
		stage := entity.ClassifyStage(string(lead.Stage))
		grouped[stage] = append(grouped[stage], Project(lead))
	}

	return grouped
}

// Project normalizes a single lead into its client-facing view.
func Project(lead entity.Lead) LeadView {
	return LeadView{
		ID:                lead.ID,
		Company:           lead.Company,
		ContactName:       lead.ContactName,
		Email:             lead.Email,
		Phone:             lead.Phone,
		Stage:             entity.ClassifyStage(string(lead.Stage)),
		Notes:             lead.Notes,
		ContentStrategies: entity.SplitStrategies(lead.ContentStrategies),
		CreatedAt:         lead.CreatedAt,
		UpdatedAt:         lead.UpdatedAt,
	}
}
