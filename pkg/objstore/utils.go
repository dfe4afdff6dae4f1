/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package objstore

// Extends list to contain index i, filling new slots with def.
//
// If i is less than list length then list is returned unchanged.
func ExtendTo[T any](lst []T, i int, def T) []T {
	for len(lst) <= i {
		lst = append(lst, def)
	}
	return lst
}

// Trims trailing blank items from list.
//
//	[1, 2, 3, "", 56, "", "", "", ""] → [1, 2, 3, "", 56]
func TrimTrailing[T any](lst []T, isBlank func(T) bool) []T {
	n := len(lst)
	for n > 0 && isBlank(lst[n-1]) {
		n--
	}
	return lst[:n]
}
