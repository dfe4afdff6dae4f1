/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import "github.com/voedger/idfkit/pkg/objcache"

// Schema loading option
type Option func(*options)

type options struct {
	skip      []string
	skipSet   bool
	cacheKind objcache.Kind
	cacheSize int
}

func defaultOptions() options {
	return options{
		cacheKind: objcache.Kind_LRU,
		cacheSize: DefaultNameCacheSize,
	}
}

// Sets classes which standard gaps repair should skip.
//
// If option is not used then Load uses DefaultSkipList for schema version.
func WithSkipList(skip ...string) Option {
	return func(o *options) {
		o.skip = skip
		o.skipSet = true
	}
}

// Sets backend and capacity of per-class cache which memoizes extensible field names resolution.
// Zero size disables cache.
func WithNameCache(kind objcache.Kind, size int) Option {
	return func(o *options) {
		o.cacheKind = kind
		o.cacheSize = size
	}
}
