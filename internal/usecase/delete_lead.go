package usecase

import "context"

type DeleteLeadUseCase struct {
	Leads LeadRepositoryInterface
}

func NewDeleteLeadUseCase(leads LeadRepositoryInterface) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Leads: leads}
}

// Execute removes the owner's lead. Same not-found semantics as update: no
// existence leak for other owners' leads.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, accountID, leadID int64) error {
	return uc.Leads.Delete(ctx, accountID, leadID)
}
