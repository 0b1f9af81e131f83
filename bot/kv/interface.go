// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

// This file defines an abstraction over buntdb, allowing alternative
// backends (such as SQL databases) to be used instead of buntdb itself.

package kv

import (
	"time"
)

// SetOptions mirrors the write options we actually use, so callers
// don't import buntdb directly.
type SetOptions struct {
	Expires bool
	TTL     time.Duration
}

type Tx interface {
	AscendKeys(pattern string, iterator func(key, value string) bool) error
	Delete(key string) (val string, err error)
	Get(key string, ignoreExpired ...bool) (val string, err error)
	Set(key string, value string, opts *SetOptions) (previousValue string, replaced bool, err error)
}

type Store interface {
	Close() error
	Update(fn func(tx Tx) error) error
	View(fn func(tx Tx) error) error
}
