/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package refindex

import (
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Derived index of schema references.
//
// Index knows which reference lists class names are declared into and which
// class fields draw values from lists. It never holds record values, holders are
// collected from store on every call. Index is built lazily on first use.
type Index struct {
	reg       *idd.Registry
	built     bool
	lists     map[string][]string   // class key → lists which class name declared into
	consumers map[string][]Consumer // lowercased list → consumers
	members   map[string][]*idd.Class
}

func (x *Index) build() {
	if x.built {
		return
	}
	x.lists = make(map[string][]string)
	x.consumers = make(map[string][]Consumer)
	x.members = make(map[string][]*idd.Class)

	for _, c := range x.reg.Classes() {
		if nf := c.NameField(); nf != nil {
			x.lists[c.Key()] = nf.References()
			for _, l := range nf.References() {
				k := strings.ToLower(l)
				x.members[k] = append(x.members[k], c)
			}
		}
		for _, f := range c.Fields() {
			for _, l := range f.ObjectLists() {
				k := strings.ToLower(l)
				x.consumers[k] = append(x.consumers[k], Consumer{Class: c, Field: f})
			}
		}
	}
	x.built = true

	if logger.IsVerbose() {
		logger.Verbose("reference index built:", len(x.members), "declared lists,", len(x.consumers), "consumed lists")
	}
}

// Drops built index. Next call rebuilds it
func (x *Index) Invalidate() {
	x.built = false
	x.lists, x.consumers, x.members = nil, nil, nil
}

// Returns reference lists which class name field declared into.
//
// Returns empty list if class is unknown or has no name field.
func (x *Index) ReferenceListsOf(class string) []string {
	x.build()
	c := x.reg.Class(class)
	if c == nil {
		return []string{}
	}
	return append([]string{}, x.lists[c.Key()]...)
}

// Returns class fields which draw values from reference list, in class declaration and field position order
func (x *Index) ConsumersOf(list string) []Consumer {
	x.build()
	return append([]Consumer{}, x.consumers[strings.ToLower(list)]...)
}

// Returns classes whose names are declared into reference list
func (x *Index) MembersOf(list string) []*idd.Class {
	x.build()
	return append([]*idd.Class{}, x.members[strings.ToLower(list)]...)
}

// Returns record positions which hold name as reference to any of lists.
//
// Name is compared case-insensitive. Extensible positions past declared fields are scanned too.
func (x *Index) HoldersOf(s *objstore.Store, lists []string, name string) (holders []Holder) {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	for _, c := range x.consumerClasses(lists) {
		for _, rec := range s.RecordsOf(c.Key()) {
			for p := 1; p < rec.Len(); p++ {
				f := c.FieldAt(p)
				if f == nil || !f.DrawsFromAny(lists) {
					continue
				}
				if rec.Value(p).EqualFold(name) {
					holders = append(holders, Holder{Class: c, Record: rec, Field: f, Position: p})
				}
			}
		}
	}
	return holders
}

// Returns record positions which hold references to names absent in store.
//
// Lists which no class declares names into are not checked.
func (x *Index) Dangling(s *objstore.Store) (dangling []Holder) {
	x.build()

	names := make(map[string]map[string]bool)
	for l, classes := range x.members {
		set := make(map[string]bool)
		for _, c := range classes {
			nf := c.NameField()
			for _, rec := range s.RecordsOf(c.Key()) {
				if v := rec.Value(nf.Position()); !v.IsBlank() {
					set[strings.ToLower(strings.TrimSpace(v.String()))] = true
				}
			}
		}
		names[l] = set
	}

	resolved := func(f *idd.Field, value string) bool {
		checked := false
		for _, l := range f.ObjectLists() {
			set, ok := names[strings.ToLower(l)]
			if !ok {
				continue
			}
			checked = true
			if set[value] {
				return true
			}
		}
		return !checked
	}

	for _, c := range x.reg.Classes() {
		if !consumes(c) {
			continue
		}
		for _, rec := range s.RecordsOf(c.Key()) {
			for p := 1; p < rec.Len(); p++ {
				f := c.FieldAt(p)
				if f == nil || len(f.ObjectLists()) == 0 {
					continue
				}
				v := rec.Value(p)
				if v.IsBlank() {
					continue
				}
				if !resolved(f, strings.ToLower(strings.TrimSpace(v.String()))) {
					dangling = append(dangling, Holder{Class: c, Record: rec, Field: f, Position: p})
				}
			}
		}
	}
	return dangling
}

// Returns classes which have consumers of any of lists, in declaration order
func (x *Index) consumerClasses(lists []string) (classes []*idd.Class) {
	x.build()
	seen := make(map[*idd.Class]bool)
	for _, c := range x.reg.Classes() {
		for _, l := range lists {
			for _, cons := range x.consumers[strings.ToLower(l)] {
				if cons.Class == c && !seen[c] {
					seen[c] = true
					classes = append(classes, c)
				}
			}
		}
	}
	return classes
}

// Returns is class has fields which draw from any list
func consumes(c *idd.Class) bool {
	for _, f := range c.Fields() {
		if len(f.ObjectLists()) > 0 {
			return true
		}
	}
	return false
}
