/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package fieldconv

import "github.com/voedger/idfkit/pkg/idd"

// Tries to parse field text as number of declared kind.
//
// Integer and real fields are parsed to numbers; untyped fields are parsed as
// real if tag is numeric («N1»). If text is not a finite number then returns
// text unchanged: «autocalculate», «autosize» and blanks pass through.
func TryParseNumber(s string, kind idd.DataKind, tag string) Value {
	return tryParseNumberImpl(s, kind, tag)
}

// Normalizes raw field texts by fields aligned with raw, see idd.Class.FieldsFor.
//
// Class name slot at position 0 and positions without field are never coerced.
func Normalize(fields []*idd.Field, raw []string) []Value {
	return normalizeImpl(fields, raw)
}

// Returns normalized declared default of field, or blank text if field has no default
func DefaultValue(f *idd.Field) Value {
	return defaultValueImpl(f)
}
