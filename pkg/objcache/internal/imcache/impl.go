/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package imcache

import "github.com/erni27/imcache"

// LRU cache implemented by imcache with max entries limit
type Cache[K comparable, V any] struct {
	cache *imcache.Cache[K, V]
}

func New[K comparable, V any](size int) *Cache[K, V] {
	return &Cache[K, V]{
		cache: imcache.New[K, V](imcache.WithMaxEntriesOption[K, V](size)),
	}
}

func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	return c.cache.Get(key)
}

func (c *Cache[K, V]) Put(key K, value V) {
	c.cache.Set(key, value, imcache.WithNoExpiration())
}

func (c *Cache[K, V]) Len() int {
	return c.cache.Len()
}

func (c *Cache[K, V]) Purge() {
	c.cache.RemoveAll()
}
