/*
Package indexer keeps a Postgres copy of the escrow history. It consumes
the events published by the notify package and maintains two tables:
escrow_events, the append only log keyed by event ID, and escrows, the
latest known state of every escrow.

Writes are idempotent. A redelivered event is ignored by the log and
cannot move an escrow back to an older state.
*/
package indexer

import (
	"context"
	"database/sql"

	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/notify"
	_ "github.com/lib/pq"
)

// Execer runs a statement. Both *sql.DB and *sql.Tx implement it.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// Tx groups statements that are committed together.
type Tx interface {
	Execer
	Commit() error
	Rollback() error
}

var _ Tx = (*sql.Tx)(nil)

// DB is the database the store writes to.
type DB interface {
	Execer
	BeginTx(ctx context.Context) (Tx, error)
}

// SQL adapts a database handle to DB.
func SQL(db *sql.DB) DB {
	return sqlDB{db: db}
}

type sqlDB struct {
	db *sql.DB
}

func (s sqlDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return s.db.ExecContext(ctx, query, args...)
}

func (s sqlDB) BeginTx(ctx context.Context) (Tx, error) {
	return s.db.BeginTx(ctx, nil)
}

// Open connects to the Postgres database described by dsn.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(errors.ErrDatabase, "ping: %s", err)
	}
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS escrow_events (
		id           UUID PRIMARY KEY,
		height       BIGINT NOT NULL,
		tx_index     INTEGER NOT NULL,
		action       TEXT NOT NULL,
		escrow_id    TEXT NOT NULL,
		depositor    TEXT NOT NULL,
		counterparty TEXT NOT NULL DEFAULT '',
		state        INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS escrow_events_escrow_id ON escrow_events (escrow_id)`,
	`CREATE TABLE IF NOT EXISTS escrows (
		escrow_id    TEXT PRIMARY KEY,
		depositor    TEXT NOT NULL,
		counterparty TEXT NOT NULL DEFAULT '',
		state        INTEGER NOT NULL,
		height       BIGINT NOT NULL,
		tx_index     INTEGER NOT NULL
	)`,
}

const insertEvent = `INSERT INTO escrow_events
	(id, height, tx_index, action, escrow_id, depositor, counterparty, state)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO NOTHING`

// Only a later transition may replace the recorded state.
const upsertEscrow = `INSERT INTO escrows
	(escrow_id, depositor, counterparty, state, height, tx_index)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (escrow_id) DO UPDATE SET
		counterparty = EXCLUDED.counterparty,
		state = EXCLUDED.state,
		height = EXCLUDED.height,
		tx_index = EXCLUDED.tx_index
	WHERE (escrows.height, escrows.tx_index) < (EXCLUDED.height, EXCLUDED.tx_index)`

// Store writes escrow events.
type Store struct {
	db DB
}

// NewStore returns a store writing to db.
func NewStore(db DB) *Store {
	return &Store{db: db}
}

// Migrate creates the tables if they do not exist yet.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(errors.ErrDatabase, "migrate: %s", err)
		}
	}
	return nil
}

// Save records the event. Saving the same event twice has no effect.
// The log entry and the escrow state are written in one transaction.
func (s *Store) Save(ctx context.Context, ev *notify.Event) error {
	if err := ev.Validate(); err != nil {
		return errors.Wrap(err, "event")
	}
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "begin: %s", err)
	}
	// no-op once committed
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insertEvent,
		ev.ID, ev.Height, ev.Index, ev.Action, ev.EscrowID, ev.Depositor, ev.Counterparty, ev.State)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "insert event %s: %s", ev.ID, err)
	}
	_, err = tx.ExecContext(ctx, upsertEscrow,
		ev.EscrowID, ev.Depositor, ev.Counterparty, ev.State, ev.Height, ev.Index)
	if err != nil {
		return errors.Wrapf(errors.ErrDatabase, "upsert escrow %s: %s", ev.EscrowID, err)
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "commit event %s: %s", ev.ID, err)
	}
	return nil
}
