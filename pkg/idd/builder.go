/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idfkit/pkg/parser"
)

// Builds registry from parsed schema.
//
// Builder holds classes as declared. Gaps repair should be made before Build:
//
//	b, err := idd.Parse(fileName, src)
//	noFirst := b.RepairStandardGaps(idd.DefaultSkipList(b.Version())...)
//	b.RepairExtensibleGaps(noFirst)
//	reg, err := b.Build()
type RegistryBuilder struct {
	version Version
	classes []*Class
	byKey   map[string]*Class
	opts    options
	built   *Registry
}

func newRegistryBuilder(opts ...Option) *RegistryBuilder {
	b := &RegistryBuilder{
		byKey: make(map[string]*Class),
		opts:  defaultOptions(),
	}
	for _, o := range opts {
		o(&b.opts)
	}
	return b
}

// Returns schema version
func (b *RegistryBuilder) Version() Version { return b.version }

// Returns class by name, case-insensitive, or nil
func (b *RegistryBuilder) Class(name string) *Class {
	return b.byKey[strings.ToUpper(strings.TrimSpace(name))]
}

// Builds read-only registry.
//
// Returns ErrUnrepairedGapsError if some class misses key slot or extensible template.
// Repeated calls return the same registry.
func (b *RegistryBuilder) Build() (*Registry, error) {
	if b.built != nil {
		return b.built, nil
	}
	for _, c := range b.classes {
		if len(c.fields) == 0 || !c.fields[0].IsKey() {
			return nil, ErrUnrepairedGaps(c.name, "has no key slot")
		}
		if c.extSize > 0 && (c.extBase == 0 || c.extBase+c.extSize > len(c.fields)) {
			return nil, ErrUnrepairedGaps(c.name, "has no extensible group template")
		}
	}
	for _, c := range b.classes {
		c.prepare(b.opts.cacheKind, b.opts.cacheSize)
	}
	b.built = &Registry{
		version: b.version,
		classes: b.classes,
		byKey:   b.byKey,
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("schema %v built: %d classes", b.version, len(b.classes)))
	}
	return b.built, nil
}

func (b *RegistryBuilder) checkNotBuilt() {
	if b.built != nil {
		panic(ErrRegistryBuilt)
	}
}

func (b *RegistryBuilder) parse(ast *parser.IDDAST) (err error) {
	v, e := ParseVersion(ast.VersionText())
	if e != nil {
		err = errors.Join(err, e)
	}
	b.version = v

	group := ""
	for _, raw := range ast.Attrs {
		if a := parser.ParseAttr(raw); a.Name == "group" {
			group = a.Value
		}
	}

	for _, c := range ast.Classes {
		err = errors.Join(err, b.addClass(c, &group))
	}
	return err
}

func (b *RegistryBuilder) addClass(ast *parser.ClassAST, group *string) (err error) {
	pos := &ast.Pos
	c := newClass(ast.Name)
	c.group = *group

	if _, dup := b.byKey[c.key]; dup {
		err = errors.Join(err, ErrSchemaParse(pos, "duplicate class «%s»", c.name))
	} else {
		b.classes = append(b.classes, c)
		b.byKey[c.key] = c
	}

	switch {
	case ast.Term == ";" && len(ast.Fields) > 0:
		err = errors.Join(err, ErrSchemaParse(pos, "class «%s» terminated by «;» has fields", c.name))
	case ast.Term == "," && len(ast.Fields) == 0:
		err = errors.Join(err, ErrSchemaParse(pos, "class «%s» has no fields", c.name))
	}

	for _, raw := range ast.Attrs {
		err = errors.Join(err, c.applyAttr(parser.ParseAttr(raw), pos, group))
	}

	for i, fa := range ast.Fields {
		f := newField(fa.Tag, i+1)
		last := i == len(ast.Fields)-1
		switch {
		case fa.Term == ";" && !last:
			err = errors.Join(err, ErrSchemaParse(&fa.Pos, "field %s of class «%s» terminated by «;» is not last", fa.Tag, c.name))
		case fa.Term == "," && last:
			err = errors.Join(err, ErrSchemaParse(&fa.Pos, "last field %s of class «%s» is not terminated by «;»", fa.Tag, c.name))
		}
		for _, raw := range fa.Attrs {
			err = errors.Join(err, f.applyAttr(parser.ParseAttr(raw), &fa.Pos, group))
		}
		c.fields = append(c.fields, f)
	}
	return err
}

func (c *Class) applyAttr(a parser.Attr, pos *lexer.Position, group *string) error {
	switch a.Name {
	case "memo":
		c.memo = append(c.memo, a.Value)
	case "unique-object":
		c.unique = true
	case "required-object":
		c.required = true
	case "obsolete":
		c.obsolete = true
	case "format":
		c.format = a.Value
	case "min-fields":
		n, err := strconv.Atoi(firstWord(a.Value))
		if err != nil || n < 0 {
			return ErrSchemaParse(pos, "class «%s» has invalid \\min-fields «%s»", c.name, a.Value)
		}
		c.minFields = n
	case "extensible":
		n, err := strconv.Atoi(firstWord(a.Value))
		if err != nil || n <= 0 {
			return ErrSchemaParse(pos, "class «%s» has invalid \\extensible «%s»", c.name, a.Value)
		}
		c.extSize = n
	case "group":
		*group = a.Value
	default:
		if logger.IsTrace() {
			logger.Trace(c, "ignores attribute", a.Name)
		}
	}
	return nil
}

func (f *Field) applyAttr(a parser.Attr, pos *lexer.Position, group *string) error {
	switch a.Name {
	case "field":
		f.label = a.Value
	case "type":
		k, ok := DataKindFromIDD(a.Value)
		if !ok {
			return ErrSchemaParse(pos, "field %s has unknown type «%s»", f.tag, a.Value)
		}
		f.kind = k
	case "default":
		f.def, f.hasDef = a.Value, true
	case "required-field":
		f.required = true
	case "reference":
		f.refs = append(f.refs, a.Value)
	case "object-list":
		f.objLists = append(f.objLists, a.Value)
	case "units":
		f.units = a.Value
	case "key":
		f.keys = append(f.keys, a.Value)
	case "note":
		if f.note != "" {
			f.note += "\n"
		}
		f.note += a.Value
	case "autosizable":
		f.autosizable = true
	case "autocalculatable":
		f.autocalculatable = true
	case "begin-extensible":
		f.beginExt = true
	case "group":
		*group = a.Value
	default:
		if logger.IsTrace() {
			logger.Trace(f, "ignores attribute", a.Name)
		}
	}
	return nil
}

func firstWord(s string) string {
	if ff := strings.Fields(s); len(ff) > 0 {
		return ff[0]
	}
	return ""
}
