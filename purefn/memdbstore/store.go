// Package memdbstore provides a purefn.Store kept in a go-memdb table.
//
// Each result is a row keyed by an encoded form of its argument. Inserts run in
// a write transaction that aborts when the key already exists, so a stored
// result is never overwritten.
package memdbstore

import (
	"errors"
	"fmt"

	memdb "github.com/hashicorp/go-memdb"
	"github.com/on-the-ground/purecall/purefn"
	"github.com/on-the-ground/purecall/shared/helper"
)

const (
	table = "memo"
	index = "id"
)

// ErrStore wraps every failure reported by memdb.
var ErrStore = errors.New("memdb store failure")

type entry struct {
	Key   string
	Value any
}

// Encoder maps a key to the string it is indexed under. Distinct keys must
// encode to distinct, non-empty strings; memdb refuses rows with an empty index.
type Encoder[K comparable] func(K) string

// GoSyntax encodes a key with its dynamic type and Go-syntax representation,
// so int(1) and int64(1) held in an interface key stay apart. Float zeros are
// folded to +0 at the top level to match map key equality. Keys with
// interface-typed or float fields need an Encoder from NewWithEncoder.
func GoSyntax[K comparable](key K) string {
	var k any = key
	switch f := k.(type) {
	case float64:
		if f == 0 {
			k = float64(0)
		}
	case float32:
		if f == 0 {
			k = float32(0)
		}
	}
	return fmt.Sprintf("%T:%#v", k, k)
}

var _ purefn.Store[string, int] = (*Store[string, int])(nil)

// Store is a purefn.Store holding one memdb row per cached result.
type Store[K comparable, V any] struct {
	db     *memdb.MemDB
	encode Encoder[K]
	size   int
}

// New returns a store that encodes keys with GoSyntax.
func New[K comparable, V any]() (*Store[K, V], error) {
	return NewWithEncoder[K, V](GoSyntax[K])
}

// NewWithEncoder returns a store that indexes keys with encode.
func NewWithEncoder[K comparable, V any](encode Encoder[K]) (*Store[K, V], error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStore, err)
	}
	return &Store[K, V]{db: db, encode: encode}, nil
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {
				Name: table,
				Indexes: map[string]*memdb.IndexSchema{
					index: {
						Name:    index,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "Key"},
					},
				},
			},
		},
	}
}

// Load panics with ErrStore if memdb rejects the lookup or the row does not
// hold a V. A present row is a hit even when its value is a nil interface.
func (s *Store[K, V]) Load(key K) (V, bool) {
	var zero V

	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First(table, index, s.encode(key))
	if err != nil {
		panic(fmt.Errorf("%w: load %v: %w", ErrStore, key, err))
	}
	if raw == nil {
		return zero, false
	}

	e := raw.(*entry)
	if e.Value == nil {
		return zero, true
	}
	v, err := helper.GetTypedValueOf[V](func() (any, error) {
		return e.Value, nil
	})
	if err != nil {
		panic(fmt.Errorf("%w: load %v: %w", ErrStore, key, err))
	}
	return v, true
}

// InsertIfAbsent panics with ErrStore if memdb rejects the transaction.
func (s *Store[K, V]) InsertIfAbsent(key K, value V) bool {
	encoded := s.encode(key)

	txn := s.db.Txn(true)
	defer txn.Abort()

	old, err := txn.First(table, index, encoded)
	if err != nil {
		panic(fmt.Errorf("%w: lookup %v: %w", ErrStore, key, err))
	} else if old != nil {
		return false
	}

	if err := txn.Insert(table, &entry{Key: encoded, Value: value}); err != nil {
		panic(fmt.Errorf("%w: insert %v: %w", ErrStore, key, err))
	}
	txn.Commit()
	s.size++
	return true
}

func (s *Store[K, V]) Len() int {
	return s.size
}
