package store

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Session is one run of the control loop.
type Session struct {
	ID        string
	VolumeMin float64
	VolumeMax float64
	StartedAt time.Time
	EndedAt   *time.Time
}

// SessionRepository provides operations on sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Start inserts a new open session for the given volume range.
func (r *SessionRepository) Start(volumeMin, volumeMax float64) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		VolumeMin: volumeMin,
		VolumeMax: volumeMax,
		StartedAt: time.Now(),
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, volume_min, volume_max, started_at) VALUES (?, ?, ?, ?)`,
		sess.ID, sess.VolumeMin, sess.VolumeMax, sess.StartedAt,
	)
	if err != nil {
		return nil, err
	}

	return sess, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(id string) error {
	result, err := r.db.Exec(`UPDATE sessions SET ended_at = ? WHERE id = ?`, time.Now(), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(id string) (*Session, error) {
	row := r.db.QueryRow(
		`SELECT id, volume_min, volume_max, started_at, ended_at FROM sessions WHERE id = ?`,
		id,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return sess, err
}

// List returns all sessions, newest first.
func (r *SessionRepository) List() ([]Session, error) {
	rows, err := r.db.Query(
		`SELECT id, volume_min, volume_max, started_at, ended_at FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// EndAbandoned ends sessions left open by a run that did not shut down
// cleanly and returns how many it closed.
func (r *SessionRepository) EndAbandoned() (int, error) {
	sessions, err := r.List()
	if err != nil {
		return 0, err
	}

	ended := 0
	for _, sess := range sessions {
		if sess.EndedAt != nil {
			continue
		}
		if err := r.End(sess.ID); err != nil {
			return ended, err
		}
		ended++
	}
	return ended, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSession(row scanner) (*Session, error) {
	var sess Session
	var ended sql.NullTime
	if err := row.Scan(&sess.ID, &sess.VolumeMin, &sess.VolumeMax, &sess.StartedAt, &ended); err != nil {
		return nil, err
	}
	if ended.Valid {
		sess.EndedAt = &ended.Time
	}
	return &sess, nil
}
