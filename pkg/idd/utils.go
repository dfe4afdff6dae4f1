/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Makes accessor name from field label.
//
// Runs of whitespace and punctuation are collapsed to single «_», leading and
// trailing separators are trimmed:
//
//	"Vertex 1 X-coordinate" → "Vertex_1_X_coordinate"
//	"  Outside Layer "      → "Outside_Layer"
//
// Accessor names are compared case-insensitive.
func MakeAccessName(label string) string {
	b := strings.Builder{}
	b.Grow(len(label))
	sep := false
	for _, r := range label {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if sep && b.Len() > 0 {
				b.WriteByte('_')
			}
			sep = false
			b.WriteRune(r)
			continue
		}
		sep = true
	}
	return b.String()
}

// Returns lookup key for specified field name
func accessKey(name string) string {
	return strings.ToLower(MakeAccessName(name))
}

var firstGroupNumber = regexp.MustCompile(`(^|[^0-9])1([^0-9]|$)`)

// Returns is label has standalone «1» number token
func hasGroupNumber(label string) bool {
	return firstGroupNumber.MatchString(label)
}

// Replicates template label for specified extensible group.
//
// First standalone «1» in label is replaced by group+1. Labels without such
// number are suffixed by « group+1» for groups above zero.
func replicateLabel(label string, group int) string {
	if group == 0 {
		return label
	}
	num := strconv.Itoa(group + 1)
	if loc := firstGroupNumber.FindStringSubmatchIndex(label); loc != nil {
		// loc[4]:loc[5] is the second group, digit «1» is just before it
		one := loc[4] - 1
		return label[:one] + num + label[one+1:]
	}
	return label + " " + num
}

// Returns is name exists in list, case-insensitive
func containsFold(list []string, name string) bool {
	for _, s := range list {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}
