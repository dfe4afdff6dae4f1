/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"strings"
)

//go:generate stringer -type=DataKind -output=data-kind_string.go

// Declared type of field.
type DataKind uint8

const (
	// No `\type` declared, untyped
	DataKind_null DataKind = iota

	DataKind_alpha
	DataKind_real
	DataKind_integer
	DataKind_choice
	DataKind_objectList
	DataKind_externalList
	DataKind_node

	DataKind_FakeLast
)

var dataKindByIDD = map[string]DataKind{
	"alpha":         DataKind_alpha,
	"real":          DataKind_real,
	"integer":       DataKind_integer,
	"choice":        DataKind_choice,
	"object-list":   DataKind_objectList,
	"external-list": DataKind_externalList,
	"node":          DataKind_node,
}

// Returns data kind for `\type` attribute value.
func DataKindFromIDD(s string) (DataKind, bool) {
	k, ok := dataKindByIDD[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}

// Returns is data kind numeric: real or integer
func (k DataKind) IsNumeric() bool {
	return k == DataKind_real || k == DataKind_integer
}

// Returns is data kind text: alpha, object, external list or node
func (k DataKind) IsText() bool {
	switch k {
	case DataKind_alpha, DataKind_objectList, DataKind_externalList, DataKind_node:
		return true
	}
	return false
}

// Renders an DataKind in human-readable form, without "DataKind_" prefix,
// suitable for debugging or error messages
func (k DataKind) TrimString() string {
	const pref = "DataKind_"
	return strings.TrimPrefix(k.String(), pref)
}
