package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
)

const reviewCols = `id, contract_id, reviewer_id, reviewee_id, overall_rating, category_ratings, comment, created_at, updated_at`

func scanReview(row rowScanner) (domain.Review, error) {
	var r domain.Review
	err := row.Scan(&r.ID, &r.ContractID, &r.ReviewerID, &r.RevieweeID, &r.OverallRating, &r.CategoryRatings, &r.Comment, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (db *DB) CreateReview(ctx context.Context, r domain.Review) error {
	return db.inTx(ctx, func(tx pgx.Tx) error {
		status, err := contractStatus(ctx, tx, r.ContractID)
		if err != nil {
			return err
		}
		if status != domain.ContractCompleted {
			return domain.Conflict("contract is %s; reviews open once it is completed", status)
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO reviews (`+reviewCols+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `, r.ID, r.ContractID, r.ReviewerID, r.RevieweeID, r.OverallRating, r.CategoryRatings, r.Comment, r.CreatedAt, r.UpdatedAt)
		if pgCode(err) == codeUniqueViolation {
			return domain.Conflict("reviewer already reviewed this contract")
		}
		return err
	})
}

func (db *DB) ListReviews(ctx context.Context, revieweeID string, page domain.PageRequest) ([]domain.Review, int, error) {
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM reviews WHERE reviewee_id = $1`, revieweeID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+reviewCols+` FROM reviews WHERE reviewee_id = $1
        ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`, revieweeID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanReview)
	return out, total, err
}
