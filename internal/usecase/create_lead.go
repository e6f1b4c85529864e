package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/funnel"
	"github.com/funnelhq/leadfunnel/internal/infra/queue"
)

type CreateLeadUseCase struct {
	Leads LeadRepositoryInterface
	Queue LeadEventProducerInterface
}

func NewCreateLeadUseCase(leads LeadRepositoryInterface, producer LeadEventProducerInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{
		Leads: leads,
		Queue: producer,
	}
}

// Execute persists a new lead for the owner and returns the owner's full
// grouped set, matching the create contract. The initial stage lands in the
// movement history with an empty from-stage.
func (uc *CreateLeadUseCase) Execute(ctx context.Context, accountID int64, input LeadInput) (funnel.GroupedLeads, error) {
	if errs := ValidateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	now := time.Now().UTC()
	lead := entity.NewLead(
		accountID,
		input.Company,
		input.ContactName,
		input.Email,
		input.Phone,
		input.Stage,
		input.Notes,
		input.ContentStrategies,
		now,
	)

	if err := uc.Leads.Create(ctx, lead); err != nil {
		return nil, err
	}

	change := &entity.StageChange{
		LeadID:    lead.ID,
		ToStage:   lead.Stage,
		ChangedAt: now,
	}
	if err := uc.Leads.AppendStageChange(ctx, change); err != nil {
		return nil, err
	}

	publishStageChange(ctx, uc.Queue, lead, change)

	leads, err := uc.Leads.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return funnel.GroupByStage(leads), nil
}

// publishStageChange fans the event out to the queue. Publish failures are
// logged, not propagated: the lead is already committed and the event stream
// is best-effort.
func publishStageChange(ctx context.Context, producer LeadEventProducerInterface, lead *entity.Lead, change *entity.StageChange) {
	payload := queue.LeadEventPayload{
		EventID:   uuid.NewString(),
		LeadID:    lead.ID,
		AccountID: lead.AccountID,
		Company:   lead.Company,
		FromStage: string(change.FromStage),
		ToStage:   string(change.ToStage),
		ChangedAt: change.ChangedAt,
	}

	if err := producer.PublishStageChange(ctx, payload); err != nil {
		log.Printf("lead %d committed but stage-change event not published: %v", lead.ID, err)
	}
}
