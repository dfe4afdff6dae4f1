/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrSchemaParseError = errors.New("schema parse error")

func ErrSchemaParse(pos *lexer.Position, msg string, args ...any) error {
	if pos == nil {
		return EnrichError(ErrSchemaParseError, msg, args...)
	}
	return fmt.Errorf("%s: %w", pos.String(), EnrichError(ErrSchemaParseError, msg, args...))
}

var ErrUnknownClassError = errors.New("unknown class")

func ErrUnknownClass(name string) error {
	return EnrichError(ErrUnknownClassError, "«%s»", name)
}

var ErrUnknownFieldError = errors.New("unknown field")

func ErrUnknownField(class, field string) error {
	return EnrichError(ErrUnknownFieldError, "class «%s» has no field «%s»", class, field)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

func ErrObjectNotFound(class, name string) error {
	return ErrNotFound("«%s» object «%s»", class, name)
}

var ErrUnrepairedGapsError = errors.New("schema gaps are not repaired")

func ErrUnrepairedGaps(class, what string) error {
	return EnrichError(ErrUnrepairedGapsError, "class «%s» %s", class, what)
}

var ErrRegistryBuilt = errors.New("registry is already built")
