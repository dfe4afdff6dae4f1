/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"fmt"

	"github.com/voedger/idfkit/pkg/parser"
)

// Parses schema source text into registry builder.
//
// Returns error wrapped ErrSchemaParseError if source is malformed. All semantic
// errors found are joined into returned error.
func Parse(fileName, src string, opts ...Option) (*RegistryBuilder, error) {
	ast, err := parser.ParseIDD(fileName, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchemaParseError, err)
	}
	b := newRegistryBuilder(opts...)
	if err := b.parse(ast); err != nil {
		return nil, err
	}
	return b, nil
}

// Parses schema source text, repairs gaps and builds registry.
//
// Skip list for standard gaps repair is DefaultSkipList for schema version,
// unless WithSkipList option is used.
func Load(fileName, src string, opts ...Option) (*Registry, error) {
	b, err := Parse(fileName, src, opts...)
	if err != nil {
		return nil, err
	}
	skip := b.opts.skip
	if !b.opts.skipSet {
		skip = DefaultSkipList(b.version)
	}
	noFirst := b.RepairStandardGaps(skip...)
	b.RepairExtensibleGaps(noFirst)
	return b.Build()
}
