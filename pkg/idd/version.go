/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"fmt"
	"strconv"
	"strings"
)

// Schema version tuple, e.g. {8, 0, 0}.
//
// Empty version means schema source has no version line.
type Version []int

// Parses dot separated version text.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, nil
	}
	parts := strings.Split(s, ".")
	v := make(Version, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version «%s»: %w", s, ErrSchemaParseError)
		}
		v = append(v, n)
	}
	return v, nil
}

// Compares versions. Returns -1, 0 or +1. Missed components are treated as zeros.
func (v Version) Compare(o Version) int {
	l := len(v)
	if len(o) > l {
		l = len(o)
	}
	for i := 0; i < l; i++ {
		a, b := v.at(i), o.at(i)
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
	}
	return 0
}

// Returns is version less than specified
func (v Version) Less(o Version) bool {
	return v.Compare(o) < 0
}

// Returns version with major and minor components only
func (v Version) MajorMinor() Version {
	return Version{v.at(0), v.at(1)}
}

func (v Version) String() string {
	if len(v) == 0 {
		return "0"
	}
	s := make([]string, len(v))
	for i, n := range v {
		s[i] = strconv.Itoa(n)
	}
	return strings.Join(s, ".")
}

func (v Version) at(i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

// Returns standard gaps skip list suitable for schema version.
//
// Legacy schemas (below 8.0) keep the irregular shape of table lookup class.
func DefaultSkipList(v Version) []string {
	if v.Less(Version{legacySkipListBelowMajor}) {
		return append([]string(nil), legacySkipList...)
	}
	return nil
}
