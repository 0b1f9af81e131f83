// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"errors"
	"testing"
)

// memContextStore is an in-memory ContextStore for tests, with
// injectable failures.
type memContextStore struct {
	contexts map[string]string
	getErr   error
	setErr   error
	getCalls int
	setCalls int
}

func newMemContextStore() *memContextStore {
	return &memContextStore{contexts: make(map[string]string)}
}

func (m *memContextStore) GetContext(userID string) (string, error) {
	m.getCalls++
	if m.getErr != nil {
		return "", m.getErr
	}
	return m.contexts[userID], nil
}

func (m *memContextStore) SetContext(userID string, context string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.contexts[userID] = context
	return nil
}

func (m *memContextStore) CountContexts() (int, error) {
	return len(m.contexts), nil
}

func (m *memContextStore) Close() error {
	return nil
}

func TestContextRepoReadThrough(t *testing.T) {
	store := newMemContextStore()
	store.contexts["alice"] = "en:es"
	cache := NewBoundedCache(10)
	repo := NewContextRepo(cache, store)

	response, err := repo.Get("alice")
	assertEqual(err, nil, t)
	assertEqual(response.Context, "en:es", t)
	assertEqual(response.Source, SourceStore, t)

	// the miss populated the cache; the store is not consulted again
	response, err = repo.Get("alice")
	assertEqual(err, nil, t)
	assertEqual(response.Context, "en:es", t)
	assertEqual(response.Source, SourceCache, t)
	assertEqual(store.getCalls, 1, t)
}

func TestContextRepoEmptyIsCached(t *testing.T) {
	store := newMemContextStore()
	repo := NewContextRepo(NewBoundedCache(10), store)

	// a never-seen user reads back as "no context", and even that
	// negative result is cached
	response, err := repo.Get("bob")
	assertEqual(err, nil, t)
	assertEqual(response.Context, "", t)
	assertEqual(response.Source, SourceStore, t)

	response, _ = repo.Get("bob")
	assertEqual(response.Source, SourceCache, t)
}

func TestContextRepoSet(t *testing.T) {
	store := newMemContextStore()
	cache := NewBoundedCache(10)
	repo := NewContextRepo(cache, store)

	assertEqual(repo.Set("alice", "fr:nl"), nil, t)
	assertEqual(store.contexts["alice"], "fr:nl", t)

	response, _ := repo.Get("alice")
	assertEqual(response.Context, "fr:nl", t)
	assertEqual(response.Source, SourceCache, t)
}

func TestContextRepoSetFailure(t *testing.T) {
	store := newMemContextStore()
	store.contexts["alice"] = "en:es"
	cache := NewBoundedCache(10)
	repo := NewContextRepo(cache, store)

	repo.Get("alice") // warm the cache

	store.setErr = errors.New("disk full")
	err := repo.Set("alice", "fr:nl")
	if err == nil {
		t.Fatal("expected store write error to propagate")
	}

	// the cache must not advertise a context the store doesn't hold
	response, _ := repo.Get("alice")
	assertEqual(response.Context, "en:es", t)
}

func TestContextRepoReadFailure(t *testing.T) {
	store := newMemContextStore()
	store.getErr = errors.New("connection refused")
	repo := NewContextRepo(NewBoundedCache(10), store)

	_, err := repo.Get("alice")
	if err == nil {
		t.Fatal("expected store read error to propagate")
	}
}
