package repositories

import (
	"github.com/dgraph-io/badger/v4"

	"blogpress/log"
)

// OpenStore opens the document store at the given path. An empty path
// selects an in-memory store, used by tests.
func OpenStore(path string) (*badger.DB, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Error.Printf("store connection error: %v", err)
		return nil, err
	}
	log.Info.Printf("store connected at %q", path)
	return db, nil
}

// CloseStore closes the document store, logging the disconnect.
func CloseStore(db *badger.DB) error {
	if err := db.Close(); err != nil {
		log.Error.Printf("store close error: %v", err)
		return err
	}
	log.Info.Println("store disconnected")
	return nil
}
