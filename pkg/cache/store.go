package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS rendered (
	template_id  TEXT    NOT NULL,
	payload_hash TEXT    NOT NULL,
	body         BLOB    NOT NULL,
	created_at   INTEGER NOT NULL,
	PRIMARY KEY (template_id, payload_hash)
);
`

// Store caches rendered output keyed by (template id, payload hash) so
// repeated dynamic renders of identical input skip the child spawn.
// Only successful renders are stored; entries age out via Prune.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) a cache database at path.
// Use ":memory:" for an ephemeral cache.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Get returns the cached body for (templateID, payload), reporting
// whether an entry was found.
func (s *Store) Get(ctx context.Context, templateID string, payload []byte) ([]byte, bool, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM rendered WHERE template_id = ? AND payload_hash = ?`,
		templateID, hashPayload(payload),
	).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get %q: %w", templateID, err)
	}
	return body, true, nil
}

// Put stores body for (templateID, payload), replacing any prior entry.
func (s *Store) Put(ctx context.Context, templateID string, payload, body []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO rendered (template_id, payload_hash, body, created_at)
		 VALUES (?, ?, ?, ?)`,
		templateID, hashPayload(payload), body, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("cache: put %q: %w", templateID, err)
	}
	return nil
}

// Prune deletes entries older than maxAge and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).Unix()
	res, err := s.db.ExecContext(ctx, `DELETE FROM rendered WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cache: prune: %w", err)
	}
	return res.RowsAffected()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func hashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
