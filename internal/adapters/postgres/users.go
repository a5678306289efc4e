package postgres

import (
	"context"

	"cfomatch/internal/domain"
)

func (db *DB) GetUser(ctx context.Context, id string) (domain.User, error) {
	var u domain.User
	err := db.Pool.QueryRow(ctx, `
        SELECT id, role, status, created_at, updated_at
        FROM users WHERE id = $1
    `, id).Scan(&u.ID, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return u, notFound(err, "user %s not found", id)
	}
	return u, nil
}
