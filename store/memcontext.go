package store

import (
	"github.com/hashicorp/go-memdb"
)

// varRecord is the row shape memdb stores per context variable.
type varRecord struct {
	Name  string
	Value StoreKind
}

var schema = &memdb.DBSchema{
	Tables: map[string]*memdb.TableSchema{
		"vars": {
			Name: "vars",
			Indexes: map[string]*memdb.IndexSchema{
				"id": {
					Name:    "id",
					Unique:  true,
					Indexer: &memdb.StringFieldIndex{Field: "Name"},
				},
			},
		},
	},
}

// MemContext is the standard Context implementation, backed by
// hashicorp/go-memdb. One write transaction is opened lazily on the
// first mutation of a tick and committed by EndTick, so the store is
// borrowed mutably for exactly the duration of one tick.
type MemContext struct {
	db  *memdb.MemDB
	txn *memdb.Txn
}

// NewMemContext builds an empty Context. The schema above is a fixed,
// compile-time-valid constant, so a construction failure here would
// indicate a bug in this package rather than bad runtime input.
func NewMemContext() *MemContext {
	db, err := memdb.NewMemDB(schema)
	if err != nil {
		panic("store: invalid memdb schema: " + err.Error())
	}
	return &MemContext{db: db}
}

func (m *MemContext) writeTxn() *memdb.Txn {
	if m.txn == nil {
		m.txn = m.db.Txn(true)
	}
	return m.txn
}

// Get looks up key, reading through the in-flight write transaction
// (if any) so a tick observes its own prior writes.
func (m *MemContext) Get(key string) (StoreKind, bool) {
	txn := m.txn
	if txn == nil {
		txn = m.db.Txn(false)
		defer txn.Abort()
	}
	raw, err := txn.First("vars", "id", key)
	if err != nil || raw == nil {
		return StoreKind{}, false
	}
	return raw.(*varRecord).Value, true
}

// Insert adds or replaces a binding unconditionally.
func (m *MemContext) Insert(key string, value StoreKind) {
	m.writeTxn().Insert("vars", &varRecord{Name: key, Value: value})
}

// Set overwrites an existing binding, returning ErrNoSuchKey if key
// is absent.
func (m *MemContext) Set(key string, value StoreKind) error {
	if _, ok := m.Get(key); !ok {
		return ErrNoSuchKey
	}
	m.writeTxn().Insert("vars", &varRecord{Name: key, Value: value})
	return nil
}

// EndTick commits the pending write transaction, if any was opened
// by a mutation during the tick just finished. Safe to call even when
// nothing was mutated.
func (m *MemContext) EndTick() {
	if m.txn != nil {
		m.txn.Commit()
		m.txn = nil
	}
}

// Snapshot returns every variable currently bound, keyed by name, as
// plain Go values (string or int64) rather than StoreKind -- the
// shape cmd/bt's -query flag hands to jmespath.Search, which has no
// notion of StoreKind. Read-only and debugging-only; it plays no part
// in any tick.
func (m *MemContext) Snapshot() map[string]interface{} {
	txn := m.txn
	if txn == nil {
		txn = m.db.Txn(false)
		defer txn.Abort()
	}
	it, err := txn.Get("vars", "id")
	if err != nil {
		return map[string]interface{}{}
	}
	out := make(map[string]interface{})
	for raw := it.Next(); raw != nil; raw = it.Next() {
		rec := raw.(*varRecord)
		if rec.Value.IsString {
			out[rec.Name] = rec.Value.Str
		} else {
			out[rec.Name] = rec.Value.I64
		}
	}
	return out
}
