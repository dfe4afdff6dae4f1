/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package objstore

import (
	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/slices"

	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
)

// Holds all records grouped by class key, in insertion order.
//
// Store does not validate values; it only checks classes exist in registry.
// Store is not safe for concurrent mutation.
type Store struct {
	reg     *idd.Registry
	records map[string][]*Record
	count   int
}

func newStore(reg *idd.Registry) *Store {
	return &Store{
		reg:     reg,
		records: make(map[string][]*Record),
	}
}

func (s *Store) Registry() *idd.Registry { return s.reg }

// Returns keys of all classes known to registry, in declaration order
func (s *Store) AllClasses() []string {
	return s.reg.ClassNames()
}

// Returns records of class in insertion order. Returns empty slice if class has no records or unknown
func (s *Store) RecordsOf(class string) []*Record {
	cls := s.reg.Class(class)
	if cls == nil {
		return []*Record{}
	}
	return slices.Clone(s.records[cls.Key()])
}

// Returns total records count
func (s *Store) Count() int { return s.count }

// Appends record to the end of class records.
//
// Returns ErrUnknownClassError if class is absent in registry. Record position 0
// is set to class key.
func (s *Store) Append(class string, rec *Record) error {
	cls := s.reg.Class(class)
	if cls == nil {
		return idd.ErrUnknownClass(class)
	}
	rec.values = ExtendTo(rec.values, 0, fieldconv.Value{})
	rec.values[0] = fieldconv.Text(cls.Key())
	s.records[cls.Key()] = append(s.records[cls.Key()], rec)
	s.count++
	return nil
}

// Normalizes raw fields texts of class object and appends record.
//
// Fields are object fields without class name, as read from data file.
func (s *Store) Load(class string, fields []string) (*Record, error) {
	cls := s.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	raw := make([]string, 0, len(fields)+1)
	raw = append(raw, cls.Key())
	raw = append(raw, fields...)
	rec := &Record{values: fieldconv.Normalize(cls.FieldsFor(len(raw)), raw)}
	if err := s.Append(cls.Key(), rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Removes record from class records by identity.
//
// Returns ErrNotFoundError if record is not found.
func (s *Store) Remove(class string, rec *Record) error {
	cls := s.reg.Class(class)
	if cls == nil {
		return idd.ErrUnknownClass(class)
	}
	recs := s.records[cls.Key()]
	i := slices.Index(recs, rec)
	if i < 0 {
		return idd.ErrNotFound("record of class «%s»", cls.Name())
	}
	s.records[cls.Key()] = slices.Delete(recs, i, i+1)
	s.count--
	if logger.IsVerbose() {
		logger.Verbose(cls, "record", i, "removed")
	}
	return nil
}

// Removes last record of class.
//
// Returns ErrNotFoundError if class has no records.
func (s *Store) RemoveLast(class string) error {
	cls := s.reg.Class(class)
	if cls == nil {
		return idd.ErrUnknownClass(class)
	}
	recs := s.records[cls.Key()]
	if len(recs) == 0 {
		return idd.ErrNotFound("records of class «%s»", cls.Name())
	}
	return s.Remove(class, recs[len(recs)-1])
}

// Returns deep copy of store. Registry is shared
func (s *Store) Snapshot() *Store {
	c := newStore(s.reg)
	for k, recs := range s.records {
		cc := make([]*Record, len(recs))
		for i, r := range recs {
			cc[i] = r.clone()
		}
		c.records[k] = cc
	}
	c.count = s.count
	return c
}

// Returns is stores hold equal records in the same order
func (s *Store) Equal(o *Store) bool {
	if s.count != o.count {
		return false
	}
	for _, k := range s.AllClasses() {
		a, b := s.records[k], o.records[k]
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !a[i].equal(b[i]) {
				return false
			}
		}
	}
	return true
}
