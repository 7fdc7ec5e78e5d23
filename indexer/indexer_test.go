package indexer

import (
	"context"
	"database/sql"
	"encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/iov-one/barter/errors"
	"github.com/iov-one/barter/notify"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	query string
	args  []interface{}
}

// fakeDB records executed statements. Statements of a transaction are
// only recorded on commit. failAt makes the n-th statement, counted
// from one, fail with err.
type fakeDB struct {
	calls     []call
	err       error
	failAt    int
	executed  int
	rollbacks int
	beginErr  error
	commitErr error
}

func (db *fakeDB) exec(query string, args []interface{}) error {
	db.executed++
	if db.err != nil && (db.failAt == 0 || db.failAt == db.executed) {
		return db.err
	}
	return nil
}

func (db *fakeDB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if err := db.exec(query, args); err != nil {
		return nil, err
	}
	db.calls = append(db.calls, call{query: query, args: args})
	return driverResult(1), nil
}

func (db *fakeDB) BeginTx(ctx context.Context) (Tx, error) {
	if db.beginErr != nil {
		return nil, db.beginErr
	}
	return &fakeTx{db: db}, nil
}

type fakeTx struct {
	db      *fakeDB
	pending []call
	done    bool
}

func (tx *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	if err := tx.db.exec(query, args); err != nil {
		return nil, err
	}
	tx.pending = append(tx.pending, call{query: query, args: args})
	return driverResult(1), nil
}

func (tx *fakeTx) Commit() error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true
	if tx.db.commitErr != nil {
		return tx.db.commitErr
	}
	tx.db.calls = append(tx.db.calls, tx.pending...)
	return nil
}

func (tx *fakeTx) Rollback() error {
	if tx.done {
		return sql.ErrTxDone
	}
	tx.done = true
	tx.db.rollbacks++
	return nil
}

type driverResult int64

func (r driverResult) LastInsertId() (int64, error) { return 0, nil }
func (r driverResult) RowsAffected() (int64, error) { return int64(r), nil }

func validEvent() notify.Event {
	return notify.Event{
		ID:           "0b6a4b52-6b0f-5d1b-9a43-4a3b1f0d6e21",
		Height:       12,
		Index:        3,
		Action:       "exchange",
		EscrowID:     "0000000000000004",
		Depositor:    "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		Counterparty: "0D0F0A5B8E1C2D3E4F5A6B7C8D9E0F1A2B3C4D5E",
		State:        3,
	}
}

func TestMigrate(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, NewStore(db).Migrate(context.Background()))
	require.Len(t, db.calls, len(schema))
	assert.True(t, strings.Contains(db.calls[0].query, "escrow_events"))
	assert.True(t, strings.Contains(db.calls[2].query, "TABLE IF NOT EXISTS escrows"))

	failing := &fakeDB{err: stderrors.New("connection refused")}
	err := NewStore(failing).Migrate(context.Background())
	require.True(t, errors.ErrDatabase.Is(err), "unexpected error: %+v", err)
}

func TestHandle(t *testing.T) {
	ev := validEvent()
	raw, err := json.Marshal(ev)
	require.NoError(t, err)

	cases := map[string]struct {
		msg       *nats.Msg
		dbErr     error
		wantErr   *errors.Error
		wantCalls int
	}{
		"valid event": {
			msg:       &nats.Msg{Subject: "barter.escrow.exchange", Data: raw},
			wantCalls: 2,
		},
		"subject does not match action": {
			msg:     &nats.Msg{Subject: "barter.escrow.open", Data: raw},
			wantErr: errors.ErrInput,
		},
		"not json": {
			msg:     &nats.Msg{Subject: "barter.escrow.exchange", Data: []byte("{")},
			wantErr: errors.ErrInput,
		},
		"invalid event": {
			msg:     &nats.Msg{Subject: "barter.escrow.exchange", Data: []byte(`{"action": "exchange", "id": "nope"}`)},
			wantErr: errors.ErrInput,
		},
		"database failure": {
			msg:     &nats.Msg{Subject: "barter.escrow.exchange", Data: raw},
			dbErr:   stderrors.New("deadlock"),
			wantErr: errors.ErrDatabase,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := &fakeDB{err: tc.dbErr}
			ix := New(NewStore(db), nil)
			err := ix.Handle(context.Background(), tc.msg)
			require.True(t, tc.wantErr.Is(err), "unexpected error: %+v", err)
			assert.Len(t, db.calls, tc.wantCalls)
		})
	}
}

func TestSaveArguments(t *testing.T) {
	db := &fakeDB{}
	ev := validEvent()
	require.NoError(t, NewStore(db).Save(context.Background(), &ev))

	require.Len(t, db.calls, 2)
	assert.Equal(t, insertEvent, db.calls[0].query)
	assert.Equal(t, []interface{}{ev.ID, ev.Height, ev.Index, ev.Action, ev.EscrowID, ev.Depositor, ev.Counterparty, ev.State}, db.calls[0].args)
	assert.Equal(t, upsertEscrow, db.calls[1].query)
	assert.Equal(t, []interface{}{ev.EscrowID, ev.Depositor, ev.Counterparty, ev.State, ev.Height, ev.Index}, db.calls[1].args)
}

func TestSaveIsAtomic(t *testing.T) {
	cases := map[string]struct {
		db            *fakeDB
		wantRollbacks int
	}{
		"insert fails": {
			db:            &fakeDB{err: stderrors.New("disk full"), failAt: 1},
			wantRollbacks: 1,
		},
		"upsert fails after insert": {
			db:            &fakeDB{err: stderrors.New("serialization failure"), failAt: 2},
			wantRollbacks: 1,
		},
		"commit fails": {
			db:            &fakeDB{commitErr: stderrors.New("connection reset")},
			wantRollbacks: 0,
		},
		"begin fails": {
			db:            &fakeDB{beginErr: stderrors.New("too many connections")},
			wantRollbacks: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			ev := validEvent()
			err := NewStore(tc.db).Save(context.Background(), &ev)
			require.True(t, errors.ErrDatabase.Is(err), "unexpected error: %+v", err)
			assert.Empty(t, tc.db.calls, "nothing may be written")
			assert.Equal(t, tc.wantRollbacks, tc.db.rollbacks)
		})
	}
}
