package usecase

import (
	"context"

	"github.com/funnelhq/leadfunnel/internal/funnel"
)

type ListLeadsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewListLeadsUseCase(leads LeadRepositoryInterface) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

// Execute returns the owner's leads grouped by canonical stage,
// most-recent-first within each bucket.
func (uc *ListLeadsUseCase) Execute(ctx context.Context, accountID int64) (funnel.GroupedLeads, error) {
	leads, err := uc.Leads.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return funnel.GroupByStage(leads), nil
}
