package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
)

const conversationCols = `id, participant1_id, participant2_id, stage, last_message_at, created_at, updated_at`

func scanConversation(row rowScanner) (domain.Conversation, error) {
	var c domain.Conversation
	err := row.Scan(&c.ID, &c.Participant1ID, &c.Participant2ID, &c.Stage, &c.LastMessageAt, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

var stageOrder = func() []string {
	out := make([]string, len(domain.StageOrder))
	for i, s := range domain.StageOrder {
		out[i] = string(s)
	}
	return out
}()

func (db *DB) GetOrCreateConversation(ctx context.Context, seed domain.Conversation) (domain.Conversation, error) {
	return getOrCreateConversation(ctx, db.Pool, seed)
}

// getOrCreateConversation relies on the unique ordered pair so that racing
// creators converge on one row.
func getOrCreateConversation(ctx context.Context, q querier, seed domain.Conversation) (domain.Conversation, error) {
	p1, p2 := domain.OrderedPair(seed.Participant1ID, seed.Participant2ID)
	stage := seed.Stage
	if stage == "" {
		stage = domain.StageInitial
	}
	return scanConversation(q.QueryRow(ctx, `
        INSERT INTO conversations (id, participant1_id, participant2_id, stage, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (participant1_id, participant2_id) DO UPDATE SET participant1_id = EXCLUDED.participant1_id
        RETURNING `+conversationCols, seed.ID, p1, p2, stage, seed.CreatedAt, seed.UpdatedAt))
}

func (db *DB) GetConversation(ctx context.Context, id string) (domain.Conversation, error) {
	c, err := scanConversation(db.Pool.QueryRow(ctx, `SELECT `+conversationCols+` FROM conversations WHERE id = $1`, id))
	if err != nil {
		return c, notFound(err, "conversation %s not found", id)
	}
	return c, nil
}

func (db *DB) ListConversations(ctx context.Context, userID string, page domain.PageRequest) ([]domain.Conversation, int, error) {
	const where = ` WHERE participant1_id = $1 OR participant2_id = $1`
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM conversations`+where, userID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+conversationCols+` FROM conversations`+where+`
        ORDER BY COALESCE(last_message_at, created_at) DESC, id LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanConversation)
	return out, total, err
}

func (db *DB) AdvanceStage(ctx context.Context, id string, stage domain.Stage, at time.Time) (domain.Conversation, error) {
	return advanceStage(ctx, db.Pool, id, stage, at)
}

// advanceStage only ever raises the stage; the rank comparison happens in
// the UPDATE so concurrent triggers cannot move a conversation backwards.
func advanceStage(ctx context.Context, q querier, id string, stage domain.Stage, at time.Time) (domain.Conversation, error) {
	_, err := q.Exec(ctx, `
        UPDATE conversations SET stage = $2, updated_at = $3
        WHERE id = $1 AND array_position($4::text[], stage) < array_position($4::text[], $2::text)
    `, id, stage, at, stageOrder)
	if err != nil {
		return domain.Conversation{}, err
	}
	c, err := scanConversation(q.QueryRow(ctx, `SELECT `+conversationCols+` FROM conversations WHERE id = $1`, id))
	if err != nil {
		return c, notFound(err, "conversation %s not found", id)
	}
	return c, nil
}

func (db *DB) TouchConversation(ctx context.Context, id string, at time.Time) error {
	tag, err := db.Pool.Exec(ctx, `UPDATE conversations SET last_message_at = $2, updated_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.NotFound("conversation %s not found", id)
	}
	return nil
}

// lockConversation holds the row for the rest of tx.
func lockConversation(ctx context.Context, tx pgx.Tx, id string) error {
	var got string
	err := tx.QueryRow(ctx, `SELECT id FROM conversations WHERE id = $1 FOR UPDATE`, id).Scan(&got)
	return notFound(err, "conversation %s not found", id)
}
