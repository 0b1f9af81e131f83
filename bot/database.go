// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"fmt"
	"os"

	"github.com/lost1n/lingo/bot/kv"
)

const (
	// 'version' of the database schema
	keySchemaVersion = "db.version"
	// latest schema of the db
	latestDbSchema = "1"
)

// InitDB creates the buntdb datastore, implementing the `lingo initdb`
// command. It refuses to overwrite an existing file.
func InitDB(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf("Datastore already exists (delete it manually to continue): %s", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("Datastore path is inaccessible: %s", err.Error())
	}

	return initializeDB(path)
}

// internal database initialization code
func initializeDB(path string) error {
	store, err := kv.BuntdbOpen(path)
	if err != nil {
		return err
	}
	defer store.Close()

	return store.Update(func(tx kv.Tx) error {
		_, _, err := tx.Set(keySchemaVersion, latestDbSchema, nil)
		return err
	})
}

// OpenDatabase returns the existing buntdb datastore, performing a
// schema version check.
func OpenDatabase(path string) (kv.Store, error) {
	store, err := kv.BuntdbOpen(path)
	if err != nil {
		return nil, err
	}

	var version string
	err = store.View(func(tx kv.Tx) error {
		version, err = tx.Get(keySchemaVersion)
		return err
	})
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("Datastore is missing a schema version (run `lingo initdb`?): %s", err.Error())
	}
	if version != latestDbSchema {
		store.Close()
		return nil, fmt.Errorf("Datastore schema version is %s, expected %s", version, latestDbSchema)
	}

	return store, nil
}
