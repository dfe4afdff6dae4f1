/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package editor

// Editor option
type Option func(*Editor)

// Allows Rename and AddObject to make objects with duplicate names in class.
//
// By default such operations fail with ErrNameUniqueViolation.
func AllowDuplicateNames() Option {
	return func(e *Editor) {
		e.allowDuplicates = true
	}
}
