package usecase

import (
	"context"
	"net/mail"
	"time"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/funnel"
)

type UpdateLeadUseCase struct {
	Leads LeadRepositoryInterface
	Queue LeadEventProducerInterface
}

func NewUpdateLeadUseCase(leads LeadRepositoryInterface, producer LeadEventProducerInterface) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{
		Leads: leads,
		Queue: producer,
	}
}

// Execute applies a partial update. A lead owned by someone else is
// indistinguishable from a missing one: both return ErrLeadNotFound.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, accountID, leadID int64, input LeadUpdateInput) (*UpdatedLeadOutput, error) {
	if input.Email != nil && *input.Email != "" {
		if _, err := mail.ParseAddress(*input.Email); err != nil {
			return nil, ValidationErrors{{Field: "email", Message: "is invalid"}}
		}
	}

	lead, err := uc.Leads.FindByID(ctx, accountID, leadID)
	if err != nil {
		return nil, err
	}

	previousStage := lead.Stage

	if input.Company != nil {
		lead.Company = entity.CoerceCompany(*input.Company)
	}
	if input.ContactName != nil {
		lead.ContactName = *input.ContactName
	}
	if input.Email != nil {
		lead.Email = *input.Email
	}
	if input.Phone != nil {
		lead.Phone = *input.Phone
	}
	if input.Notes != nil {
		lead.Notes = *input.Notes
	}
	if input.ContentStrategies != nil {
		lead.ContentStrategies = entity.JoinStrategies(*input.ContentStrategies)
	}
	if input.Stage != nil {
		lead.Stage = entity.ClassifyStage(*input.Stage)
	}

	now := time.Now().UTC()
	lead.UpdatedAt = now

	if err := uc.Leads.Update(ctx, lead); err != nil {
		return nil, err
	}

	if lead.Stage != previousStage {
		change := &entity.StageChange{
			LeadID:    lead.ID,
			FromStage: previousStage,
			ToStage:   lead.Stage,
			ChangedAt: now,
		}
		if err := uc.Leads.AppendStageChange(ctx, change); err != nil {
			return nil, err
		}
		publishStageChange(ctx, uc.Queue, lead, change)
	}

	history, err := uc.Leads.ListStageChanges(ctx, lead.ID)
	if err != nil {
		return nil, err
	}

	return &UpdatedLeadOutput{
		Lead:    funnel.Project(*lead),
		History: history,
	}, nil
}
