/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import "strings"

// Read-only schema registry.
//
// Registry is built once by RegistryBuilder and passed to every component
// which needs schema. It is safe for concurrent reads.
type Registry struct {
	version Version
	classes []*Class
	byKey   map[string]*Class
}

// Returns schema version. Empty if schema has no version line
func (r *Registry) Version() Version { return r.version }

// Returns classes in declaration order
func (r *Registry) Classes() []*Class {
	return append([]*Class(nil), r.classes...)
}

func (r *Registry) ClassCount() int { return len(r.classes) }

// Returns class by name, case-insensitive. Returns nil if class is unknown
func (r *Registry) Class(name string) *Class {
	return r.byKey[strings.ToUpper(strings.TrimSpace(name))]
}

// Returns class keys in declaration order
func (r *Registry) ClassNames() []string {
	nn := make([]string, len(r.classes))
	for i, c := range r.classes {
		nn[i] = c.key
	}
	return nn
}
