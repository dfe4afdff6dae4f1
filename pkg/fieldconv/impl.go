/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package fieldconv

import (
	"math"
	"strconv"
	"strings"

	"github.com/voedger/idfkit/pkg/idd"
)

func tryParseNumberImpl(s string, kind idd.DataKind, tag string) Value {
	t := strings.TrimSpace(s)
	if t == "" {
		return Text(s)
	}
	switch kind {
	case idd.DataKind_integer:
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			v := Integer(i)
			v.text = t
			return v
		}
		// integer fields in real files sometimes hold «1.0»
		return parseReal(s, t)
	case idd.DataKind_real:
		return parseReal(s, t)
	case idd.DataKind_null:
		if strings.HasPrefix(strings.ToUpper(tag), "N") {
			return parseReal(s, t)
		}
	}
	return Text(s)
}

func parseReal(s, t string) Value {
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return Text(s)
	}
	v := Real(f)
	v.text = t
	return v
}

func normalizeImpl(fields []*idd.Field, raw []string) []Value {
	vv := make([]Value, len(raw))
	for i, s := range raw {
		if i == 0 || i >= len(fields) || fields[i] == nil {
			vv[i] = Text(s)
			continue
		}
		f := fields[i]
		vv[i] = TryParseNumber(s, f.DataKind(), f.Tag())
	}
	return vv
}

func defaultValueImpl(f *idd.Field) Value {
	if f == nil {
		return Text("")
	}
	d, ok := f.Default()
	if !ok {
		return Text("")
	}
	return TryParseNumber(d, f.DataKind(), f.Tag())
}
