/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package fieldconv

import (
	"math"
	"strconv"
	"strings"
)

//go:generate stringer -type=ValueKind -output=value-kind_string.go

// Kind of field value
type ValueKind uint8

const (
	ValueKind_text ValueKind = iota
	ValueKind_real
	ValueKind_integer

	ValueKind_FakeLast
)

// Field value: text, real or integer number.
//
// Numbers parsed from text keep the source text, so values render back as
// they were read. Zero Value is blank text.
type Value struct {
	kind  ValueKind
	text  string
	num   float64
	whole int64
}

// Returns text value
func Text(s string) Value {
	return Value{kind: ValueKind_text, text: s}
}

// Returns real number value
func Real(f float64) Value {
	return Value{kind: ValueKind_real, num: f}
}

// Returns integer number value
func Integer(i int64) Value {
	return Value{kind: ValueKind_integer, whole: i, num: float64(i)}
}

func (v Value) Kind() ValueKind { return v.kind }

// Returns is value a number
func (v Value) IsNumber() bool {
	return v.kind == ValueKind_real || v.kind == ValueKind_integer
}

// Returns value in positional serialization form
func (v Value) String() string {
	if v.text != "" || v.kind == ValueKind_text {
		return v.text
	}
	switch v.kind {
	case ValueKind_integer:
		return strconv.FormatInt(v.whole, 10)
	default:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	}
}

// Returns value as float number. Integers are converted. Returns false for text
func (v Value) Float() (float64, bool) {
	if !v.IsNumber() {
		return 0, false
	}
	return v.num, true
}

// Returns value as integer number. Reals with fractional part and text return false
func (v Value) Int() (int64, bool) {
	switch v.kind {
	case ValueKind_integer:
		return v.whole, true
	case ValueKind_real:
		if t := math.Trunc(v.num); t == v.num && math.Abs(t) < math.MaxInt64 {
			return int64(t), true
		}
	}
	return 0, false
}

// Returns is value blank text
func (v Value) IsBlank() bool {
	return v.kind == ValueKind_text && strings.TrimSpace(v.text) == ""
}

// Returns is value rendering equal to s, case-insensitive
func (v Value) EqualFold(s string) bool {
	return strings.EqualFold(strings.TrimSpace(v.String()), strings.TrimSpace(s))
}

// Returns is values have the same kind and rendering
func (v Value) Equal(o Value) bool {
	return v.kind == o.kind && v.String() == o.String()
}
