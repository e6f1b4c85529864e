package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/funnelhq/leadfunnel/internal/entity"
	"github.com/funnelhq/leadfunnel/internal/infra/queue"
	"github.com/funnelhq/leadfunnel/internal/usecase"
)

func TestCreateLeadCoercesAndClassifies(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockQueue := new(MockLeadEventProducer)

	var created *entity.Lead
	mockLeads.On("Create", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Company == entity.PlaceholderCompany && l.Stage == entity.StageAwareness
	})).Run(func(args mock.Arguments) {
		created = args.Get(1).(*entity.Lead)
		created.ID = 3
	}).Return(nil)

	mockLeads.On("AppendStageChange", ctx, mock.MatchedBy(func(c *entity.StageChange) bool {
		return c.LeadID == 3 && c.FromStage == entity.Stage("") && c.ToStage == entity.StageAwareness
	})).Return(nil)

	mockQueue.On("PublishStageChange", ctx, mock.MatchedBy(func(p queue.LeadEventPayload) bool {
		return p.LeadID == 3 && p.ToStage == "awareness" && p.FromStage == ""
	})).Return(nil)

	mockLeads.On("ListByAccount", ctx, int64(1)).Return([]entity.Lead{}, nil).Once()

	uc := usecase.NewCreateLeadUseCase(mockLeads, mockQueue)
	grouped, err := uc.Execute(ctx, 1, usecase.LeadInput{
		Company: "x",
		Stage:   "not-a-stage",
	})

	assert.NoError(t, err)
	assert.Len(t, grouped, 5)
	mockLeads.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestCreateLeadReturnsFullGroupedSet(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockQueue := new(MockLeadEventProducer)

	mockLeads.On("Create", ctx, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 9
	}).Return(nil)
	mockLeads.On("AppendStageChange", ctx, mock.Anything).Return(nil)
	mockQueue.On("PublishStageChange", ctx, mock.Anything).Return(nil)

	now := time.Now().UTC()
	stored := []entity.Lead{
		{ID: 9, AccountID: 1, Company: "Acme", Stage: entity.StageInterest, CreatedAt: now},
		{ID: 4, AccountID: 1, Company: "Globex", Stage: entity.StagePurchase, CreatedAt: now.Add(-time.Hour)},
	}
	mockLeads.On("ListByAccount", ctx, int64(1)).Return(stored, nil)

	uc := usecase.NewCreateLeadUseCase(mockLeads, mockQueue)
	grouped, err := uc.Execute(ctx, 1, usecase.LeadInput{Company: "Acme", Stage: "interest"})

	assert.NoError(t, err)
	assert.Len(t, grouped[entity.StageInterest], 1)
	assert.Len(t, grouped[entity.StagePurchase], 1)
}

func TestUpdateLeadNotOwned(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockQueue := new(MockLeadEventProducer)

	// Someone else's lead looks exactly like a missing one.
	mockLeads.On("FindByID", ctx, int64(2), int64(10)).Return(nil, entity.ErrLeadNotFound)

	uc := usecase.NewUpdateLeadUseCase(mockLeads, mockQueue)
	notes := "stolen"
	_, err := uc.Execute(ctx, 2, 10, usecase.LeadUpdateInput{Notes: &notes})

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
	mockLeads.AssertNotCalled(t, "Update")
}

func TestUpdateLeadStageChangeRecordsHistory(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockQueue := new(MockLeadEventProducer)

	existing := &entity.Lead{
		ID:        10,
		AccountID: 1,
		Company:   "Acme",
		Stage:     entity.StageInterest,
		CreatedAt: time.Now().UTC().Add(-48 * time.Hour),
	}
	mockLeads.On("FindByID", ctx, int64(1), int64(10)).Return(existing, nil)
	mockLeads.On("Update", ctx, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Stage == entity.StagePurchase
	})).Return(nil)
	mockLeads.On("AppendStageChange", ctx, mock.MatchedBy(func(c *entity.StageChange) bool {
		return c.FromStage == entity.StageInterest && c.ToStage == entity.StagePurchase
	})).Return(nil)
	mockQueue.On("PublishStageChange", ctx, mock.MatchedBy(func(p queue.LeadEventPayload) bool {
		return p.FromStage == "interest" && p.ToStage == "purchase"
	})).Return(nil)
	mockLeads.On("ListStageChanges", ctx, int64(10)).Return([]entity.StageChange{
		{ID: 1, LeadID: 10, ToStage: entity.StageInterest},
		{ID: 2, LeadID: 10, FromStage: entity.StageInterest, ToStage: entity.StagePurchase},
	}, nil)

	uc := usecase.NewUpdateLeadUseCase(mockLeads, mockQueue)
	stage := "purchase"
	output, err := uc.Execute(ctx, 1, 10, usecase.LeadUpdateInput{Stage: &stage})

	assert.NoError(t, err)
	assert.Equal(t, entity.StagePurchase, output.Lead.Stage)
	assert.Len(t, output.History, 2)
	mockLeads.AssertExpectations(t)
	mockQueue.AssertExpectations(t)
}

func TestUpdateLeadSameStageSkipsHistory(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockQueue := new(MockLeadEventProducer)

	existing := &entity.Lead{ID: 10, AccountID: 1, Company: "Acme", Stage: entity.StageInterest}
	mockLeads.On("FindByID", ctx, int64(1), int64(10)).Return(existing, nil)
	mockLeads.On("Update", ctx, mock.Anything).Return(nil)
	mockLeads.On("ListStageChanges", ctx, int64(10)).Return([]entity.StageChange{}, nil)

	uc := usecase.NewUpdateLeadUseCase(mockLeads, mockQueue)
	notes := "called them twice"
	output, err := uc.Execute(ctx, 1, 10, usecase.LeadUpdateInput{Notes: &notes})

	assert.NoError(t, err)
	assert.Equal(t, "called them twice", output.Lead.Notes)
	mockLeads.AssertNotCalled(t, "AppendStageChange")
	mockQueue.AssertNotCalled(t, "PublishStageChange")
}

func TestDeleteLeadNotOwned(t *testing.T) {
	ctx := context.Background()

	mockLeads := new(MockLeadRepository)
	mockLeads.On("Delete", ctx, int64(2), int64(10)).Return(entity.ErrLeadNotFound)

	uc := usecase.NewDeleteLeadUseCase(mockLeads)
	err := uc.Execute(ctx, 2, 10)

	assert.ErrorIs(t, err, entity.ErrLeadNotFound)
}

func TestLeadMetricsUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	mockLeads := new(MockLeadRepository)
	mockLeads.On("ListByAccount", ctx, int64(1)).Return([]entity.Lead{
		{Stage: entity.StagePurchase, CreatedAt: now},
		{Stage: entity.StageAwareness, CreatedAt: now.Add(-20 * 24 * time.Hour)},
	}, nil)

	uc := usecase.NewLeadMetricsUseCase(mockLeads)
	report, err := uc.Execute(ctx, 1, now)

	assert.NoError(t, err)
	assert.Equal(t, 2, report.TotalLeads)
	assert.Equal(t, 100, report.ConversionRate)
	assert.Equal(t, 1, report.StaleLeads)
}
