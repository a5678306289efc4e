package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
)

const applicationCols = `id, company_id, cfo_id, direction, status, cover_message, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (domain.Application, error) {
	var a domain.Application
	err := row.Scan(&a.ID, &a.CompanyID, &a.CFOID, &a.Direction, &a.Status, &a.CoverMessage, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (db *DB) CreateApplication(ctx context.Context, app domain.Application) error {
	_, err := db.Pool.Exec(ctx, `
        INSERT INTO applications (`+applicationCols+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `, app.ID, app.CompanyID, app.CFOID, app.Direction, app.Status, app.CoverMessage, app.CreatedAt, app.UpdatedAt)
	switch pgCode(err) {
	case codeUniqueViolation:
		return domain.Conflict("a pending application already exists for this pair")
	case codeFKViolation:
		return domain.NotFound("application party not found")
	}
	return err
}

func (db *DB) GetApplication(ctx context.Context, id string) (domain.Application, error) {
	a, err := scanApplication(db.Pool.QueryRow(ctx, `SELECT `+applicationCols+` FROM applications WHERE id = $1`, id))
	if err != nil {
		return a, notFound(err, "application %s not found", id)
	}
	return a, nil
}

func (db *DB) ListApplications(ctx context.Context, userID string, status domain.ApplicationStatus, page domain.PageRequest) ([]domain.Application, int, error) {
	const where = ` WHERE (company_id = $1 OR cfo_id = $1) AND ($2 = '' OR status = $2)`
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM applications`+where, userID, string(status))
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+applicationCols+` FROM applications`+where+`
        ORDER BY created_at DESC, id LIMIT $3 OFFSET $4`, userID, string(status), page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanApplication)
	return out, total, err
}

func (db *DB) AcceptApplication(ctx context.Context, id string, seed domain.Conversation, at time.Time) (domain.Application, domain.Conversation, error) {
	var (
		app  domain.Application
		conv domain.Conversation
	)
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		app, err = setApplicationStatus(ctx, tx, id, domain.ApplicationAccepted, at)
		if err != nil {
			return err
		}
		conv, err = getOrCreateConversation(ctx, tx, seed)
		if err != nil {
			return err
		}
		conv, err = advanceStage(ctx, tx, conv.ID, domain.StageNegotiation, at)
		return err
	})
	return app, conv, err
}

func (db *DB) RejectApplication(ctx context.Context, id string, at time.Time) (domain.Application, error) {
	return setApplicationStatus(ctx, db.Pool, id, domain.ApplicationRejected, at)
}

// setApplicationStatus answers a pending application. The status guard in
// the WHERE clause makes concurrent answers mutually exclusive.
func setApplicationStatus(ctx context.Context, q querier, id string, to domain.ApplicationStatus, at time.Time) (domain.Application, error) {
	a, err := scanApplication(q.QueryRow(ctx, `
        UPDATE applications SET status = $2, updated_at = $3
        WHERE id = $1 AND status = 'pending'
        RETURNING `+applicationCols, id, to, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return a, stateConflict(ctx, q, "applications", id, "application is already %s")
	}
	return a, err
}

// collect drains rows through scan.
func collect[T any](rows pgx.Rows, scan func(rowScanner) (T, error)) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
