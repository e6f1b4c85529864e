package usecase

import (
	"context"
	"time"

	"github.com/funnelhq/leadfunnel/internal/funnel"
)

type LeadMetricsUseCase struct {
	Leads LeadRepositoryInterface
}

func NewLeadMetricsUseCase(leads LeadRepositoryInterface) *LeadMetricsUseCase {
	return &LeadMetricsUseCase{Leads: leads}
}

// Execute computes the funnel report over the owner's leads as of now.
// Read-only; nothing stored changes.
func (uc *LeadMetricsUseCase) Execute(ctx context.Context, accountID int64, now time.Time) (funnel.Report, error) {
	leads, err := uc.Leads.ListByAccount(ctx, accountID)
	if err != nil {
		return funnel.Report{}, err
	}

	return funnel.ComputeMetrics(leads, now), nil
}
