package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
//
// This is the single source of truth for the history database. Tests use
// it via GetSchemaSQL() instead of hardcoding CREATE TABLE statements, so
// repository code referencing a column that does not exist here fails
// immediately with "no such column".
const SchemaSQL = `
-- Cycle history (one row per generate or display attempt)
CREATE TABLE IF NOT EXISTS cycle_history (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	kind TEXT NOT NULL CHECK(kind IN ('generate', 'display')),
	slot INTEGER NOT NULL DEFAULT 0,
	path TEXT NOT NULL,
	prompt TEXT,
	seed INTEGER,
	status TEXT NOT NULL CHECK(status IN ('ok', 'failed')),
	detail TEXT,
	started_at DATETIME NOT NULL,
	finished_at DATETIME NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_cycle_history_run ON cycle_history(run_id);
CREATE INDEX IF NOT EXISTS idx_cycle_history_kind ON cycle_history(kind);
CREATE INDEX IF NOT EXISTS idx_cycle_history_started ON cycle_history(started_at);
`

// InitSchema creates the database schema on the given connection.
func InitSchema(conn *sql.DB) error {
	_, err := conn.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
