/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Michael Saigachenko
 */

package parser

import (
	"errors"
	"fmt"
)

var ErrSyntax = errors.New("syntax error")

func ErrMissedSeparator(class string) error {
	return fmt.Errorf("object «%s» misses field separator: %w", class, ErrSyntax)
}
