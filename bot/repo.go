// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"fmt"

	"github.com/lost1n/lingo/bot/kv"
)

const (
	// source labels reported by ContextRepo.Get
	SourceCache = "cache"
	SourceStore = "store"
)

// ContextStore is the durable mapping from user id to context code.
// The empty string means "explicitly cleared"; an absent record also
// reads back as the empty string. Records are never deleted.
type ContextStore interface {
	GetContext(userID string) (string, error)
	SetContext(userID string, context string) error
	CountContexts() (int, error)
	Close() error
}

// keys in the buntdb backend
const keyContextFmt = "context %s"

type buntContextStore struct {
	store kv.Store
}

// NewBuntContextStore wraps an opened kv store as a ContextStore.
func NewBuntContextStore(store kv.Store) ContextStore {
	return &buntContextStore{store: store}
}

func (cs *buntContextStore) GetContext(userID string) (context string, err error) {
	err = cs.store.View(func(tx kv.Tx) error {
		context, err = tx.Get(fmt.Sprintf(keyContextFmt, userID))
		return err
	})
	if err == kv.ErrNotFound {
		// never-seen users read back as "no context"
		return "", nil
	}
	return context, err
}

func (cs *buntContextStore) SetContext(userID string, context string) error {
	return cs.store.Update(func(tx kv.Tx) error {
		_, _, err := tx.Set(fmt.Sprintf(keyContextFmt, userID), context, nil)
		return err
	})
}

func (cs *buntContextStore) CountContexts() (count int, err error) {
	err = cs.store.View(func(tx kv.Tx) error {
		return tx.AscendKeys(fmt.Sprintf(keyContextFmt, "*"), func(key, value string) bool {
			count++
			return true
		})
	})
	return count, err
}

func (cs *buntContextStore) Close() error {
	return cs.store.Close()
}

// ContextResponse reports a context code and where it came from.
type ContextResponse struct {
	Context string
	Source  string
}

// ContextRepo layers the ephemeral session cache in front of the
// durable context store: reads fall through to the store on cache miss
// and populate the cache; writes go to the store first and update the
// cache only after the durable write succeeds.
type ContextRepo struct {
	cache *BoundedCache
	store ContextStore
}

func NewContextRepo(cache *BoundedCache, store ContextStore) *ContextRepo {
	return &ContextRepo{cache: cache, store: store}
}

func (repo *ContextRepo) Get(userID string) (ContextResponse, error) {
	if session, ok := repo.cache.Get(userID); ok && session.HasContext {
		return ContextResponse{Context: session.Context, Source: SourceCache}, nil
	}

	context, err := repo.store.GetContext(userID)
	if err != nil {
		return ContextResponse{}, err
	}
	repo.cache.Update(userID, func(session *Session) {
		session.Context = context
		session.HasContext = true
	})
	return ContextResponse{Context: context, Source: SourceStore}, nil
}

func (repo *ContextRepo) Set(userID string, context string) error {
	if err := repo.store.SetContext(userID, context); err != nil {
		return err
	}
	repo.cache.Update(userID, func(session *Session) {
		session.Context = context
		session.HasContext = true
	})
	return nil
}
