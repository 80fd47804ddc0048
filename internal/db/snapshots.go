package db

import "database/sql"

// SaveSnapshot stores a serialized collection document under the given key
func (db *DB) SaveSnapshot(key string, data []byte) error {
	_, err := db.Exec(`
		INSERT INTO snapshots (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, string(data))
	return err
}

// LoadSnapshot retrieves a serialized collection document by key. A missing
// key returns nil data and no error; deciding what an empty or corrupt
// document means is the caller's job.
func (db *DB) LoadSnapshot(key string) ([]byte, error) {
	var data string
	err := db.QueryRow("SELECT data FROM snapshots WHERE key = ?", key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

// DeleteSnapshot removes a stored document
func (db *DB) DeleteSnapshot(key string) error {
	_, err := db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	return err
}
