/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package objstore

import (
	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
)

// One object of class: ordered positional values. Position 0 holds class key.
//
// Record identity is pointer identity.
type Record struct {
	values []fieldconv.Value
}

// Creates new record of class from values. Position 0 is set to class key.
func NewRecord(cls *idd.Class, values []fieldconv.Value) *Record {
	r := &Record{values: make([]fieldconv.Value, 0, len(values)+1)}
	r.values = append(r.values, values...)
	r.values = ExtendTo(r.values, 0, fieldconv.Value{})
	r.values[0] = fieldconv.Text(cls.Key())
	return r
}

// Returns values count, class key slot included
func (r *Record) Len() int { return len(r.values) }

// Returns value at position, or blank text if position is past record end
func (r *Record) Value(i int) fieldconv.Value {
	if i < 0 || i >= len(r.values) {
		return fieldconv.Text("")
	}
	return r.values[i]
}

// Returns copy of values
func (r *Record) Values() []fieldconv.Value {
	return append([]fieldconv.Value(nil), r.values...)
}

// Returns values rendered to strings
func (r *Record) Strings() []string {
	ss := make([]string, len(r.values))
	for i, v := range r.values {
		ss[i] = v.String()
	}
	return ss
}

// Sets value at position i.
//
// If record is shorter then it is extended: every new intermediate position p
// gets fill(p), or blank text if fill is nil.
func (r *Record) Set(i int, v fieldconv.Value, fill func(pos int) fieldconv.Value) {
	for p := len(r.values); p < i; p++ {
		d := fieldconv.Text("")
		if fill != nil {
			d = fill(p)
		}
		r.values = append(r.values, d)
	}
	r.values = ExtendTo(r.values, i, v)
	r.values[i] = v
}

// Truncates record to n values. Class key slot is always kept
func (r *Record) Truncate(n int) {
	if n < 1 {
		n = 1
	}
	if n < len(r.values) {
		r.values = r.values[:n]
	}
}

func (r *Record) clone() *Record {
	return &Record{values: r.Values()}
}

func (r *Record) equal(o *Record) bool {
	if len(r.values) != len(o.values) {
		return false
	}
	for i, v := range r.values {
		if !v.Equal(o.values[i]) {
			return false
		}
	}
	return true
}
