/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

// Bounded objects cache.
//
// Implementations are safe for concurrent use.
type ICache[K comparable, V any] interface {
	// Gets value by key. Returns value and true if key exists, zero value and false overwise
	Get(K) (value V, ok bool)

	// Puts value with key. Least recently used values are evicted then cache is full
	Put(K, V)

	// Returns count of cached values
	Len() int

	// Removes all values
	Purge()
}

// Cache backend kind
type Kind uint8

const (
	// hashicorp/golang-lru backend
	Kind_LRU Kind = iota

	// erni27/imcache backend
	Kind_imcache

	Kind_count
)
