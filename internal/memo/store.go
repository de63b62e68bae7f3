// Package memo persists simplification results across runs: the search is
// deterministic (given a fixed Config), so the same normalized input text
// always reaches the same winning path, and it is wasteful to re-run the
// driver for an expression already solved in a prior process.
//
// Grounded on the teacher's internal/database/database.go, which opens a
// sql.DB via a blank-imported driver and issues plain query/scan calls
// (Connect, getDBVersion) rather than an ORM. This store keeps that shape
// but swaps the teacher's four-driver quartet (mysql/postgres/sqlite3/
// mssql, all dialing an external server) for modernc.org/sqlite alone,
// since an embedded single-writer cache has no server to dial -- see
// DESIGN.md for why the other three have no home here.
package memo

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"

	"golang.org/x/sync/singleflight"

	"github.com/lexiform/algex/internal/xerrors"
)

// Store is a SQLite-backed cache of (normalized expression) -> (formatted
// winning path, its total cost).
type Store struct {
	db    *sql.DB
	group singleflight.Group
}

// Open creates or opens the SQLite database at path and ensures the
// solutions table exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, xerrors.NewResourceExhaustion("opening memo store", err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS solutions (
		key        TEXT PRIMARY KEY,
		path       TEXT NOT NULL,
		cost       INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, xerrors.NewResourceExhaustion("creating solutions table", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the cached path for key, if one exists.
func (s *Store) Get(key string) (path string, cost int, ok bool, err error) {
	row := s.db.QueryRow(`SELECT path, cost FROM solutions WHERE key = ?`, key)
	err = row.Scan(&path, &cost)
	if err == sql.ErrNoRows {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, err
	}
	return path, cost, true, nil
}

// Put stores (or overwrites) the winning path for key.
func (s *Store) Put(key, path string, cost int) error {
	_, err := s.db.Exec(
		`INSERT INTO solutions (key, path, cost, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET path = excluded.path, cost = excluded.cost, created_at = excluded.created_at`,
		key, path, cost, time.Now().Unix(),
	)
	return err
}

// GetOrCompute returns the cached entry for key, or invokes compute and
// caches the result if key is unseen. Concurrent calls for the same unseen
// key are coalesced via singleflight so only one compute runs.
func (s *Store) GetOrCompute(ctx context.Context, key string, compute func(context.Context) (path string, cost int, err error)) (string, int, error) {
	if path, cost, ok, err := s.Get(key); err != nil {
		return "", 0, err
	} else if ok {
		return path, cost, nil
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		path, cost, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.Put(key, path, cost); err != nil {
			return nil, err
		}
		return [2]interface{}{path, cost}, nil
	})
	if err != nil {
		return "", 0, err
	}
	pair := v.([2]interface{})
	return pair[0].(string), pair[1].(int), nil
}
