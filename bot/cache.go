// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import (
	"sync"
)

// DefaultCacheCapacity is the session cache's entry ceiling when the
// config doesn't override it.
const DefaultCacheCapacity = 1000

// Session is the ephemeral per-user state: the last-known profile and a
// shadow of the durable context. The durable store remains the source
// of truth; losing a session only costs one extra round trip.
type Session struct {
	Profile    Profile
	HasProfile bool
	Context    string
	HasContext bool
}

// BoundedCache is a mutex-guarded session map with a hard entry
// ceiling. When the ceiling is exceeded the entire cache is dropped in
// one clear, rather than evicting entry by entry; the check runs once
// per inbound event. The check-then-clear sequence takes the lock so
// concurrent event goroutines can't race it.
type BoundedCache struct {
	sync.Mutex
	capacity int
	entries  map[string]Session
}

// NewBoundedCache returns an empty cache holding at most capacity
// entries between clears.
func NewBoundedCache(capacity int) *BoundedCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &BoundedCache{
		capacity: capacity,
		entries:  make(map[string]Session),
	}
}

func (cache *BoundedCache) Get(key string) (session Session, ok bool) {
	cache.Lock()
	defer cache.Unlock()
	session, ok = cache.entries[key]
	return
}

func (cache *BoundedCache) Set(key string, session Session) {
	cache.Lock()
	defer cache.Unlock()
	cache.entries[key] = session
}

// Update applies fn to the session stored under key (the zero Session
// when absent) and stores the result back, all under the lock.
func (cache *BoundedCache) Update(key string, fn func(session *Session)) {
	cache.Lock()
	defer cache.Unlock()
	session := cache.entries[key]
	fn(&session)
	cache.entries[key] = session
}

func (cache *BoundedCache) Len() int {
	cache.Lock()
	defer cache.Unlock()
	return len(cache.entries)
}

func (cache *BoundedCache) Clear() {
	cache.Lock()
	defer cache.Unlock()
	cache.entries = make(map[string]Session)
}

// FlushIfSizeLimitExceeded drops every entry once the cache has grown
// past its capacity. Holding exactly capacity entries does not trigger
// a flush.
func (cache *BoundedCache) FlushIfSizeLimitExceeded() {
	cache.Lock()
	defer cache.Unlock()
	if len(cache.entries) > cache.capacity {
		cache.entries = make(map[string]Session)
	}
}
