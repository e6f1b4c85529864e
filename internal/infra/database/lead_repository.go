package database

import (
	"context"
	"database/sql"

	"github.com/funnelhq/leadfunnel/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			account_id, company, contact_name, email, phone,
			stage, notes, content_strategies, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		lead.AccountID,
		lead.Company,
		lead.ContactName,
		lead.Email,
		lead.Phone,
		string(lead.Stage),
		lead.Notes,
		lead.ContentStrategies,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID)
}

// FindByID filters on owner inside the query, so another account's lead is
// indistinguishable from a missing one.
func (r *LeadRepository) FindByID(ctx context.Context, accountID, id int64) (*entity.Lead, error) {
	query := `
		SELECT id, account_id, company, contact_name, email, phone,
		       stage, notes, content_strategies, created_at, updated_at
		FROM leads
		WHERE id = $1 AND account_id = $2
	`

	var lead entity.Lead
	err := r.DB.QueryRowContext(ctx, query, id, accountID).Scan(
		&lead.ID,
		&lead.AccountID,
		&lead.Company,
		&lead.ContactName,
		&lead.Email,
		&lead.Phone,
		&lead.Stage,
		&lead.Notes,
		&lead.ContentStrategies,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	return &lead, nil
}

func (r *LeadRepository) ListByAccount(ctx context.Context, accountID int64) ([]entity.Lead, error) {
	query := `
		SELECT id, account_id, company, contact_name, email, phone,
		       stage, notes, content_strategies, created_at, updated_at
		FROM leads
		WHERE account_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		var lead entity.Lead
		err := rows.Scan(
			&lead.ID,
			&lead.AccountID,
			&lead.Company,
			&lead.ContactName,
			&lead.Email,
			&lead.Phone,
			&lead.Stage,
			&lead.Notes,
			&lead.ContentStrategies,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads
		SET company = $3, contact_name = $4, email = $5, phone = $6,
		    stage = $7, notes = $8, content_strategies = $9, updated_at = $10
		WHERE id = $1 AND account_id = $2
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.AccountID,
		lead.Company,
		lead.ContactName,
		lead.Email,
		lead.Phone,
		string(lead.Stage),
		lead.Notes,
		lead.ContentStrategies,
		lead.UpdatedAt,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, accountID, id int64) error {
	query := `DELETE FROM leads WHERE id = $1 AND account_id = $2`

	result, err := r.DB.ExecContext(ctx, query, id, accountID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return entity.ErrLeadNotFound
	}

	return nil
}

func (r *LeadRepository) AppendStageChange(ctx context.Context, change *entity.StageChange) error {
	query := `
		INSERT INTO lead_stage_changes (lead_id, from_stage, to_stage, changed_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		change.LeadID,
		string(change.FromStage),
		string(change.ToStage),
		change.ChangedAt,
	).Scan(&change.ID)
}

func (r *LeadRepository) ListStageChanges(ctx context.Context, leadID int64) ([]entity.StageChange, error) {
	query := `
		SELECT id, lead_id, from_stage, to_stage, changed_at
		FROM lead_stage_changes
		WHERE lead_id = $1
		ORDER BY changed_at ASC, id ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	changes := []entity.StageChange{}
	for rows.Next() {
		var change entity.StageChange
		err := rows.Scan(
			&change.ID,
			&change.LeadID,
			&change.FromStage,
			&change.ToStage,
			&change.ChangedAt,
		)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}

	return changes, rows.Err()
}
