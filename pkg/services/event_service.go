package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/astraforge/astraforge/pkg/events"
)

// EventService is the PostgreSQL-backed event backlog: it replays persisted
// stream events for reconnecting SSE subscribers. The serial id column gives
// the total per-channel order the protocol promises.
type EventService struct {
	db *sql.DB
}

// NewEventService creates a backlog reader on the shared *sql.DB from
// database.Client.DB().
func NewEventService(db *sql.DB) *EventService {
	return &EventService{db: db}
}

var _ events.Backlog = (*EventService)(nil)

// EventsSince returns up to limit events with id > sinceSeq on the channel,
// oldest first. limit <= 0 means unlimited.
func (s *EventService) EventsSince(ctx context.Context, channel string, sinceSeq int64, limit int) ([]events.BacklogEvent, error) {
	query := `SELECT id, payload, created_at FROM events WHERE channel = $1 AND id > $2 ORDER BY id ASC`
	args := []any{channel, sinceSeq}
	if limit > 0 {
		query += ` LIMIT $3`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query event backlog: %w", err)
	}
	defer rows.Close()

	var out []events.BacklogEvent
	for rows.Next() {
		var evt events.BacklogEvent
		var payloadJSON []byte
		if err := rows.Scan(&evt.Seq, &payloadJSON, &evt.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
			return nil, fmt.Errorf("failed to decode event payload: %w", err)
		}
		// Mirror the NOTIFY path: subscribers resume from the seq they saw
		evt.Payload["seq"] = evt.Seq
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read event rows: %w", err)
	}
	return out, nil
}

// LatestSeq returns the highest stored event id for a channel, or zero when
// the channel has no backlog.
func (s *EventService) LatestSeq(ctx context.Context, channel string) (int64, error) {
	var seq sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		`SELECT MAX(id) FROM events WHERE channel = $1`, channel,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("failed to read latest event seq: %w", err)
	}
	if !seq.Valid {
		return 0, nil
	}
	return seq.Int64, nil
}
