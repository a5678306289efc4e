package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"cfomatch/internal/domain"
)

const meetingCols = `id, conversation_id, organizer_id, participant_id, scheduled_at, duration_minutes, status, created_at, updated_at`

func scanMeeting(row rowScanner) (domain.Meeting, error) {
	var m domain.Meeting
	err := row.Scan(&m.ID, &m.ConversationID, &m.OrganizerID, &m.ParticipantID, &m.ScheduledAt, &m.DurationMinutes, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (db *DB) CreateMeeting(ctx context.Context, m domain.Meeting) (domain.Conversation, error) {
	var conv domain.Conversation
	err := db.inTx(ctx, func(tx pgx.Tx) error {
		if err := lockConversation(ctx, tx, m.ConversationID); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
            INSERT INTO meetings (`+meetingCols+`)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `, m.ID, m.ConversationID, m.OrganizerID, m.ParticipantID, m.ScheduledAt, m.DurationMinutes, m.Status, m.CreatedAt, m.UpdatedAt)
		if err != nil {
			return err
		}
		conv, err = advanceStage(ctx, tx, m.ConversationID, domain.StageMeeting, m.CreatedAt)
		return err
	})
	return conv, err
}

func (db *DB) GetMeeting(ctx context.Context, id string) (domain.Meeting, error) {
	m, err := scanMeeting(db.Pool.QueryRow(ctx, `SELECT `+meetingCols+` FROM meetings WHERE id = $1`, id))
	if err != nil {
		return m, notFound(err, "meeting %s not found", id)
	}
	return m, nil
}

func (db *DB) ListMeetings(ctx context.Context, conversationID string, page domain.PageRequest) ([]domain.Meeting, int, error) {
	total, err := count(ctx, db.Pool, `SELECT count(*) FROM meetings WHERE conversation_id = $1`, conversationID)
	if err != nil {
		return nil, 0, err
	}
	rows, err := db.Pool.Query(ctx, `SELECT `+meetingCols+` FROM meetings WHERE conversation_id = $1
        ORDER BY scheduled_at, id LIMIT $2 OFFSET $3`, conversationID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	out, err := collect(rows, scanMeeting)
	return out, total, err
}

func (db *DB) ResolveMeeting(ctx context.Context, id string, to domain.MeetingStatus, at time.Time) (domain.Meeting, error) {
	m, err := scanMeeting(db.Pool.QueryRow(ctx, `
        UPDATE meetings SET status = $2, updated_at = $3
        WHERE id = $1 AND status = 'scheduled'
        RETURNING `+meetingCols, id, to, at))
	if errors.Is(err, pgx.ErrNoRows) {
		return m, stateConflict(ctx, db.Pool, "meetings", id, "meeting is already %s")
	}
	return m, err
}
