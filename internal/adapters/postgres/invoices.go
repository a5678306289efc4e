package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
	"cfomatch/internal/fees"
)

const invoiceCols = `id, contract_id, period_start, period_end, working_days, working_hours, hourly_rate,
    amount, fee_percentage, fee_amount, total_amount, description, status, version, created_at, updated_at`

func scanInvoice(row rowScanner) (domain.Invoice, error) {
	var i domain.Invoice
	err := row.Scan(&i.ID, &i.ContractID, &i.PeriodStart, &i.PeriodEnd, &i.WorkingDays, &i.WorkingHours, &i.HourlyRate,
		&i.Amount, &i.FeePercentage, &i.FeeAmount, &i.TotalAmount, &i.Description, &i.Status, &i.Version, &i.CreatedAt, &i.UpdatedAt)
	return i, err
}

func (db *DB) CreateInvoice(ctx context.Context, inv domain.Invoice) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		status, err := contractStatus(ctx, tx, inv.ContractID)
		if err != nil {
			return err
		}
		if status != domain.ContractActive {
			return domain.Conflict("contract is %s; no new invoices", status)
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO invoices (`+invoiceCols+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        `, inv.ID, inv.ContractID, inv.PeriodStart, inv.PeriodEnd, inv.WorkingDays, inv.WorkingHours, inv.HourlyRate,
			inv.Amount, inv.FeePercentage, inv.FeeAmount, inv.TotalAmount, inv.Description, inv.Status, inv.Version, inv.CreatedAt, inv.UpdatedAt)
		return err
	})
}

func (db *DB) GetInvoice(ctx context.Context, id string) (domain.Invoice, error) {
	inv, err := scanInvoice(db.Pool.QueryRow(ctx, `SELECT `+invoiceCols+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		return inv, notFound(err, "invoice %s not found", id)
	}
	return inv, nil
}

func (db *DB) ListInvoices(ctx context.Context, contractID string, page domain.PageRequest) ([]domain.Invoice, int, error) {
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM invoices WHERE contract_id = $1`, contractID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+invoiceCols+` FROM invoices WHERE contract_id = $1
        ORDER BY period_start DESC, id LIMIT $2 OFFSET $3`, contractID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanInvoice)
	return out, total, err
}

// UpdateInvoice is an optimistic write keyed on version and status. The row
// lock keeps payments from landing between the paid-sum check and the write.
func (db *DB) UpdateInvoice(ctx context.Context, inv domain.Invoice, version int, from domain.InvoiceStatus) (domain.Invoice, error) {
	var out domain.Invoice
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		cur, err := scanInvoice(tx.QueryRow(ctx, `SELECT `+invoiceCols+` FROM invoices WHERE id = $1 FOR UPDATE`, inv.ID))
		if err != nil {
			return notFound(err, "invoice %s not found", inv.ID)
		}
		if cur.Version != version || cur.Status != from {
			return domain.Conflict("invoice changed concurrently (now %s); reload and retry", cur.Status)
		}
		paid, err := paidTotal(ctx, tx, inv.ID)
		if err != nil {
			return err
		}
		if fees.Cents(paid) > fees.Cents(inv.TotalAmount) {
			return domain.Conflict("invoice total %.2f would fall below the %.2f already paid", inv.TotalAmount, paid)
		}
		out, err = scanInvoice(tx.QueryRow(ctx, `
            UPDATE invoices SET period_start = $2, period_end = $3, working_days = $4, working_hours = $5,
                hourly_rate = $6, amount = $7, fee_percentage = $8, fee_amount = $9, total_amount = $10,
                description = $11, status = $12, updated_at = $13, version = version + 1
            WHERE id = $1
            RETURNING `+invoiceCols, inv.ID, inv.PeriodStart, inv.PeriodEnd,
			inv.WorkingDays, inv.WorkingHours, inv.HourlyRate, inv.Amount,
			inv.FeePercentage, inv.FeeAmount, inv.TotalAmount, inv.Description, inv.Status, inv.UpdatedAt))
		return err
	})
	return out, err
}

func paidTotal(ctx context.Context, q querier, invoiceID string) (float64, error) {
	var paid float64
	err := q.QueryRow(ctx, `SELECT COALESCE(sum(amount), 0) FROM payments WHERE invoice_id = $1`, invoiceID).Scan(&paid)
	return paid, err
}

// DeleteDraftInvoice removes a draft; its payments go with it via cascade.
func (db *DB) DeleteDraftInvoice(ctx context.Context, id string) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND status = 'draft'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return stateConflict(ctx, db.Pool, "invoices", id, "only draft invoices can be deleted; invoice is %s")
	}
	return nil
}

func (db *DB) RecordPayment(ctx context.Context, p domain.Payment) (domain.Invoice, error) {
	var inv domain.Invoice
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		var err error
		inv, err = scanInvoice(tx.QueryRow(ctx, `SELECT `+invoiceCols+` FROM invoices WHERE id = $1 FOR UPDATE`, p.InvoiceID))
		if err != nil {
			return notFound(err, "invoice %s not found", p.InvoiceID)
		}
		if inv.Status != domain.InvoiceSent && inv.Status != domain.InvoiceOverdue {
			return domain.Conflict("payments are only recorded against sent or overdue invoices; invoice is %s", inv.Status)
		}
		paid, err := paidTotal(ctx, tx, inv.ID)
		if err != nil {
			return err
		}
		after := fees.Cents(paid) + fees.Cents(p.Amount)
		if after > fees.Cents(inv.TotalAmount) {
			return domain.Conflict("payment of %.2f exceeds outstanding %.2f", p.Amount, inv.TotalAmount-paid)
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO payments (id, invoice_id, payment_date, payment_method, amount, notes, created_at, updated_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        `, p.ID, p.InvoiceID, p.PaymentDate, p.PaymentMethod, p.Amount, p.Notes, p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return err
		}
		if after < fees.Cents(inv.TotalAmount) {
			return nil
		}
		inv, err = scanInvoice(tx.QueryRow(ctx, `
            UPDATE invoices SET status = 'paid', version = version + 1, updated_at = $2
            WHERE id = $1
            RETURNING `+invoiceCols, inv.ID, p.CreatedAt))
		return err
	})
	return inv, err
}

func (db *DB) ListPayments(ctx context.Context, invoiceID string, page domain.PageRequest) ([]domain.Payment, int, error) {
	var exists bool
	if err := db.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE id = $1)`, invoiceID).Scan(&exists); err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, domain.NotFound("invoice %s not found", invoiceID)
	}
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM payments WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `
        SELECT id, invoice_id, payment_date, payment_method, amount, notes, created_at, updated_at
        FROM payments WHERE invoice_id = $1
        ORDER BY payment_date, id LIMIT $2 OFFSET $3
    `, invoiceID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, func(row rowScanner) (domain.Payment, error) {
		var p domain.Payment
		err := row.Scan(&p.ID, &p.InvoiceID, &p.PaymentDate, &p.PaymentMethod, &p.Amount, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
		return p, err
	})
	return out, total, err
}
