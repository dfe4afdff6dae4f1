/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

import (
	"fmt"

	"github.com/voedger/idfkit/pkg/objcache/internal/hashicorp"
	"github.com/voedger/idfkit/pkg/objcache/internal/imcache"
)

// Creates and return new LRU object cache with K key type and V value type.
//
// Maximum cache size is limited by size param.
func New[K comparable, V any](size int) ICache[K, V] {
	return NewKind[K, V](Kind_LRU, size)
}

// Creates and return new object cache with specified backend kind.
//
// # Panics:
//   - if size is not positive,
//   - if kind is unknown.
func NewKind[K comparable, V any](kind Kind, size int) ICache[K, V] {
	if size <= 0 {
		panic(fmt.Errorf("cache size must be positive, got %d", size))
	}
	switch kind {
	case Kind_LRU:
		return hashicorp.New[K, V](size)
	case Kind_imcache:
		return imcache.New[K, V](size)
	}
	panic(fmt.Errorf("unknown cache kind %d", kind))
}
