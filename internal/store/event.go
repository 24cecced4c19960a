package store

import (
	"database/sql"
	"time"
)

// VolumeEvent is a volume level applied during a session.
type VolumeEvent struct {
	ID        int64
	SessionID string
	Level     float64
	Percent   int
	CreatedAt time.Time
}

// EventRepository provides operations on volume events.
type EventRepository struct {
	db *sql.DB
}

// Events returns the volume event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Record appends a volume event to a session.
func (r *EventRepository) Record(sessionID string, level float64, percent int) error {
	_, err := r.db.Exec(
		`INSERT INTO volume_events (session_id, level, percent, created_at) VALUES (?, ?, ?, ?)`,
		sessionID, level, percent, time.Now(),
	)
	return err
}

// ListBySession returns a session's events in the order they were recorded.
func (r *EventRepository) ListBySession(sessionID string) ([]VolumeEvent, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, level, percent, created_at
		 FROM volume_events
		 WHERE session_id = ?
		 ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []VolumeEvent
	for rows.Next() {
		var e VolumeEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Level, &e.Percent, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

// Recorder appends volume events to one session.
type Recorder struct {
	events    *EventRepository
	sessionID string
}

// Recorder returns a Recorder bound to sessionID.
func (s *Store) Recorder(sessionID string) *Recorder {
	return &Recorder{events: s.Events(), sessionID: sessionID}
}

// RecordVolume records an applied level and its display percentage.
func (r *Recorder) RecordVolume(level float64, percent int) error {
	return r.events.Record(r.sessionID, level, percent)
}
