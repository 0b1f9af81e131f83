// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"path/filepath"
	"testing"
)

func TestInitAndOpenDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.db")

	if err := InitDB(path); err != nil {
		t.Fatal(err)
	}

	// refuses to clobber an existing datastore
	if err := InitDB(path); err == nil {
		t.Fatal("expected second InitDB to fail")
	}

	store, err := OpenDatabase(path)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	contexts := NewBuntContextStore(store)

	context, err := contexts.GetContext("alice")
	assertEqual(err, nil, t)
	assertEqual(context, "", t)

	assertEqual(contexts.SetContext("alice", "en:es"), nil, t)
	assertEqual(contexts.SetContext("bob", "fr:nl"), nil, t)

	context, err = contexts.GetContext("alice")
	assertEqual(err, nil, t)
	assertEqual(context, "en:es", t)

	count, err := contexts.CountContexts()
	assertEqual(err, nil, t)
	assertEqual(count, 2, t)

	// overwrites keep the count stable
	assertEqual(contexts.SetContext("alice", "es:en"), nil, t)
	count, _ = contexts.CountContexts()
	assertEqual(count, 2, t)
}

func TestOpenDatabaseWithoutInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lingo.db")

	if _, err := OpenDatabase(path); err == nil {
		t.Fatal("expected OpenDatabase on an uninitialized path to fail")
	}
}
