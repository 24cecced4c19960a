package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// One row per run of the control loop
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			volume_min REAL NOT NULL,
			volume_max REAL NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		)`,

		// Volume levels applied by the gesture, recorded when the displayed percentage changes
		`CREATE TABLE IF NOT EXISTS volume_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
			level REAL NOT NULL,
			percent INTEGER NOT NULL CHECK(percent BETWEEN 0 AND 100),
			created_at DATETIME NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_volume_events_session_id ON volume_events(session_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
