package ledger

import (
	"bytes"
	"context"
	"sort"

	corestore "cosmossdk.io/core/store"
	dbm "github.com/cosmos/cosmos-db"
)

type txContextKey struct{}

// kvStoreService hands collections either the branch bound to the current
// transaction or a read-only view of the backing database. Writes are only
// legal inside Ledger.WithTx.
type kvStoreService struct {
	db dbm.DB
}

func (s kvStoreService) OpenKVStore(ctx context.Context) corestore.KVStore {
	if b, ok := ctx.Value(txContextKey{}).(*branchStore); ok {
		return b
	}
	return readOnlyStore{db: s.db}
}

// branchStore buffers every write of one invocation on top of the backing
// database. Nothing reaches the database until flush; dropping the branch
// discards the invocation entirely.
type branchStore struct {
	db     dbm.DB
	writes map[string][]byte // nil value marks a deletion
}

func newBranchStore(db dbm.DB) *branchStore {
	return &branchStore{db: db, writes: make(map[string][]byte)}
}

func (b *branchStore) Get(key []byte) ([]byte, error) {
	if v, ok := b.writes[string(key)]; ok {
		if v == nil {
			return nil, nil
		}
		out := make([]byte, len(v))
		copy(out, v)
		return out, nil
	}
	return b.db.Get(key)
}

func (b *branchStore) Has(key []byte) (bool, error) {
	if v, ok := b.writes[string(key)]; ok {
		return v != nil, nil
	}
	return b.db.Has(key)
}

func (b *branchStore) Set(key, value []byte) error {
	v := make([]byte, len(value))
	copy(v, value)
	b.writes[string(key)] = v
	return nil
}

func (b *branchStore) Delete(key []byte) error {
	b.writes[string(key)] = nil
	return nil
}

func (b *branchStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return b.newMergedIterator(start, end, false)
}

func (b *branchStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return b.newMergedIterator(start, end, true)
}

// newMergedIterator materializes the overlay on top of a database snapshot.
// The ledger's state is a handful of fixed-size accounts, so a materialized
// view stays small.
func (b *branchStore) newMergedIterator(start, end []byte, reverse bool) (corestore.Iterator, error) {
	merged := make(map[string][]byte)

	it, err := b.db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	for ; it.Valid(); it.Next() {
		k := make([]byte, len(it.Key()))
		copy(k, it.Key())
		v := make([]byte, len(it.Value()))
		copy(v, it.Value())
		merged[string(k)] = v
	}
	if err := it.Error(); err != nil {
		_ = it.Close()
		return nil, err
	}
	if err := it.Close(); err != nil {
		return nil, err
	}

	for k, v := range b.writes {
		key := []byte(k)
		if !keyInRange(key, start, end) {
			continue
		}
		if v == nil {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if reverse {
		for i, j := 0, len(keys)-1; i < j; i, j = i+1, j-1 {
			keys[i], keys[j] = keys[j], keys[i]
		}
	}

	items := make([]kvPair, 0, len(keys))
	for _, k := range keys {
		items = append(items, kvPair{key: []byte(k), value: merged[k]})
	}
	return &memIterator{start: start, end: end, items: items}, nil
}

// flush replays the buffered writes into a database batch in key order.
func (b *branchStore) flush(batch dbm.Batch) error {
	keys := make([]string, 0, len(b.writes))
	for k := range b.writes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := b.writes[k]; v == nil {
			if err := batch.Delete([]byte(k)); err != nil {
				return err
			}
		} else if err := batch.Set([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func keyInRange(key, start, end []byte) bool {
	if start != nil && bytes.Compare(key, start) < 0 {
		return false
	}
	if end != nil && bytes.Compare(key, end) >= 0 {
		return false
	}
	return true
}

type kvPair struct {
	key   []byte
	value []byte
}

type memIterator struct {
	start []byte
	end   []byte
	items []kvPair
	pos   int
}

func (m *memIterator) Domain() ([]byte, []byte) { return m.start, m.end }
func (m *memIterator) Valid() bool              { return m.pos < len(m.items) }
func (m *memIterator) Next()                    { m.pos++ }
func (m *memIterator) Key() []byte              { return m.items[m.pos].key }
func (m *memIterator) Value() []byte            { return m.items[m.pos].value }
func (m *memIterator) Error() error             { return nil }
func (m *memIterator) Close() error             { return nil }

// readOnlyStore serves queries issued outside a transaction.
type readOnlyStore struct {
	db dbm.DB
}

func (r readOnlyStore) Get(key []byte) ([]byte, error) { return r.db.Get(key) }
func (r readOnlyStore) Has(key []byte) (bool, error)   { return r.db.Has(key) }
func (r readOnlyStore) Set([]byte, []byte) error       { return ErrReadOnly }
func (r readOnlyStore) Delete([]byte) error            { return ErrReadOnly }

func (r readOnlyStore) Iterator(start, end []byte) (corestore.Iterator, error) {
	return r.db.Iterator(start, end)
}

func (r readOnlyStore) ReverseIterator(start, end []byte) (corestore.Iterator, error) {
	return r.db.ReverseIterator(start, end)
}
