package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
)

const contractCols = `id, application_id, company_id, cfo_id, fee_basis, rate, duration_months,
    fee_percentage, fee_amount, recurring_fee, status, COALESCE(termination_reason, ''),
    started_at, ended_at, created_at, updated_at`

func scanContract(row rowScanner) (domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(&c.ID, &c.ApplicationID, &c.CompanyID, &c.CFOID, &c.FeeBasis, &c.Rate, &c.DurationMonths,
		&c.FeePercentage, &c.FeeAmount, &c.RecurringFee, &c.Status, &c.TerminationReason,
		&c.StartedAt, &c.EndedAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (db *DB) CreateContract(ctx context.Context, c domain.Contract, seed domain.Conversation) (domain.Conversation, error) {
	var conv domain.Conversation
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		var status domain.ApplicationStatus
		err := tx.QueryRow(ctx, `SELECT status FROM applications WHERE id = $1 FOR SHARE`, c.ApplicationID).Scan(&status)
		if err != nil {
			return notFound(err, "application %s not found", c.ApplicationID)
		}
		if status != domain.ApplicationAccepted {
			return domain.Conflict("application is %s, not accepted", status)
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO contracts (id, application_id, company_id, cfo_id, fee_basis, rate, duration_months,
                fee_percentage, fee_amount, recurring_fee, status, started_at, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        `, c.ID, c.ApplicationID, c.CompanyID, c.CFOID, c.FeeBasis, c.Rate, c.DurationMonths,
			c.FeePercentage, c.FeeAmount, c.RecurringFee, c.Status, c.StartedAt, c.CreatedAt, c.UpdatedAt)
		if pgCode(err) == codeUniqueViolation {
			return domain.Conflict("application already has a contract")
		}
		if err != nil {
			return err
		}
		conv, err = getOrCreateConversation(ctx, tx, seed)
		if err != nil {
			return err
		}
		conv, err = advanceStage(ctx, tx, conv.ID, domain.StageContract, c.CreatedAt)
		return err
	})
	return conv, err
}

func (db *DB) GetContract(ctx context.Context, id string) (domain.Contract, error) {
	c, err := scanContract(db.Pool.QueryRow(ctx, `SELECT `+contractCols+` FROM contracts WHERE id = $1`, id))
	if err != nil {
		return c, notFound(err, "contract %s not found", id)
	}
	return c, nil
}

func (db *DB) ListContracts(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Contract, int, error) {
	const where = ` WHERE company_id = $1 OR cfo_id = $1`
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM contracts`+where, userID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+contractCols+` FROM contracts`+where+`
        ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanContract)
	return out, total, err
}

func (db *DB) FinishContract(ctx context.Context, id string, to domain.ContractStatus, reason string, at time.Time) (domain.Contract, error) {
	c, err := scanContract(db.Pool.QueryRow(ctx, `
        UPDATE contracts SET status = $2, termination_reason = NULLIF($3, ''), ended_at = $4, updated_at = $4
        WHERE id = $1 AND status = 'active'
        RETURNING `+contractCols, id, to, reason, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return c, stateConflict(ctx, db.Pool, "contracts", id, "contract is already %s")
	}
	return c, err
}

// contractStatus reads the status of a contract, holding a share lock for
// the rest of tx so it cannot finish underneath the caller.
func contractStatus(ctx context.Context, tx pgx.Tx, id string) (domain.ContractStatus, error) {
	var status domain.ContractStatus
	err := tx.QueryRow(ctx, `SELECT status FROM contracts WHERE id = $1 FOR SHARE`, id).Scan(&status)
	return status, notFound(err, "contract %s not found", id)
}
