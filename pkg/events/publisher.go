package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Publisher delivers events to a session's stream channel. Persistent events
// are stored in the backlog and broadcast; transient events (heartbeats) are
// broadcast only.
type Publisher interface {
	Publish(ctx context.Context, sessionID string, payload any) error
	PublishTransient(ctx context.Context, sessionID string, payload any) error
}

// PostgresPublisher persists events and broadcasts them with pg_notify.
// Because pg_notify is transactional, the INSERT and the NOTIFY commit
// atomically: a subscriber either sees the notification and can read the row,
// or sees neither.
type PostgresPublisher struct {
	db *sql.DB
}

// NewPostgresPublisher creates a publisher on the shared *sql.DB from
// database.Client.DB().
func NewPostgresPublisher(db *sql.DB) *PostgresPublisher {
	return &PostgresPublisher{db: db}
}

// Publish persists the payload and broadcasts it on the session channel.
func (p *PostgresPublisher) Publish(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return p.persistAndNotify(ctx, sessionID, StreamChannel(sessionID), payloadJSON)
}

// PublishTransient broadcasts the payload without persisting it.
func (p *PostgresPublisher) PublishTransient(ctx context.Context, sessionID string, payload any) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return p.notifyOnly(ctx, StreamChannel(sessionID), payloadJSON)
}

// persistAndNotify stores the event and fires pg_notify in one transaction.
func (p *PostgresPublisher) persistAndNotify(ctx context.Context, sessionID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (session_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		sessionID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// The NOTIFY payload carries the row id so reconnecting clients can
	// resume the backlog from their last position.
	notifyPayload, err := injectSeqAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *PostgresPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectSeqAndTruncate adds the backlog sequence id to the NOTIFY payload and
// applies truncation when the result would exceed PostgreSQL's NOTIFY limit.
func injectSeqAndTruncate(payloadJSON []byte, seq int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for seq injection: %w", err)
	}
	m["seq"] = seq

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits under PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with routing fields
// only. Clients fetch the full event from the backlog using the seq.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}

	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		SessionID string `json:"session_id"`
		Seq       *int64 `json:"seq,omitempty"`
	}
	if err := json.Unmarshal([]byte(payloadStr), &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":       routing.Type,
		"event_id":   routing.EventID,
		"session_id": routing.SessionID,
		"truncated":  true,
	}
	if routing.Seq != nil {
		truncated["seq"] = *routing.Seq
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
