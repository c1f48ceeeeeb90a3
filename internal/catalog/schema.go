package catalog

const schemaVersion = 1

var schema = []string{
	`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER PRIMARY KEY
	)`,
	`CREATE TABLE IF NOT EXISTS runs (
		id          TEXT PRIMARY KEY,
		started_at  TEXT NOT NULL,
		finished_at TEXT NOT NULL,
		source      TEXT NOT NULL,
		inputs      INTEGER NOT NULL,
		kept        INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at)`,
	`CREATE TABLE IF NOT EXISTS selections (
		run_id      TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		path        TEXT NOT NULL,
		model       TEXT NOT NULL,
		experiment  TEXT NOT NULL,
		realization TEXT NOT NULL,
		grid_label  TEXT NOT NULL,
		version     TEXT NOT NULL,
		candidates  INTEGER NOT NULL,
		reason      TEXT NOT NULL,
		PRIMARY KEY (run_id, path)
	)`,
}

func (c *Catalog) initializeSchema() error {
	for _, stmt := range schema {
		if _, err := c.conn.Exec(stmt); err != nil {
			return err
		}
	}
	_, err := c.conn.Exec(`INSERT OR IGNORE INTO schema_version (version) VALUES (?)`, schemaVersion)
	return err
}
