package cache

import (
	"time"

	"github.com/dgraph-io/badger/v4"
)

// defaultTTL bounds how long a rendered image stays valid on disk.
const defaultTTL = 24 * time.Hour

// Badger is a disk-backed cache for rendered chart images.
// Keys are prefixed so the store can later hold other record kinds.
type Badger struct {
	db  *badger.DB
	ttl time.Duration
}

// OpenBadger opens (or creates) a badger cache at the given directory
func OpenBadger(dir string) (*Badger, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Badger{db: db, ttl: defaultTTL}, nil
}

func renderKey(key string) []byte {
	return []byte("render:" + key)
}

func (b *Badger) Get(key string) ([]byte, bool) {
	var out []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(renderKey(key))
		if err != nil {
			return err
		}
		out, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		// Expired and missing keys both surface as ErrKeyNotFound.
		return nil, false
	}
	return out, true
}

func (b *Badger) Set(key string, val []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry(renderKey(key), val).WithTTL(b.ttl)
		return txn.SetEntry(entry)
	})
}

func (b *Badger) Close() error { return b.db.Close() }
