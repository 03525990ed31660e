// Package adb abstracts the key-value stores the node can persist runtime
// state to.
package adb

type DB interface {
	Index(string) Index

	View(func(txn Txn) error) error
	Update(func(txn Txn) error) error
	Close() error
}

// Index is a named key space. Its concrete type depends on the backend.
type Index any

// Txn is a view or update transaction. Slices returned by Get are only valid
// for the duration of the transaction.
type Txn interface {
	Get(Index, []byte) []byte
	Put(Index, []byte, []byte) error
	Del(Index, []byte) error
	ForEach(Index, func(k, v []byte) error) error
	Entries(Index) (uint64, error)
}
