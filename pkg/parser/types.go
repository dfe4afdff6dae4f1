/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Michael Saigachenko
 */

package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// IDDAST is the syntax tree of a data dictionary source.
type IDDAST struct {
	Version string      `parser:"@Version?"`
	Attrs   []string    `parser:"@Attr*"`
	Classes []*ClassAST `parser:"@@*"`
}

// ClassAST is one class declaration: its name line, class-level attributes and fields.
type ClassAST struct {
	Pos    lexer.Position
	Name   string      `parser:"@Name"`
	Term   string      `parser:"@Punct"`
	Attrs  []string    `parser:"@Attr*"`
	Fields []*FieldAST `parser:"@@*"`
}

// FieldAST is one field line (A1, N3, …) with the attribute lines that follow it.
type FieldAST struct {
	Pos   lexer.Position
	Tag   string   `parser:"@Tag"`
	Term  string   `parser:"@Punct"`
	Attrs []string `parser:"@Attr*"`
}

// Attr is a parsed attribute line, `\name value`.
type Attr struct {
	Name  string
	Value string
}

// ParseAttr splits raw attribute text into name and value.
//
// `\extensible:3 -- comment` splits into name `extensible` and value `3 -- comment`.
func ParseAttr(raw string) Attr {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(raw), `\`))
	name, value := s, ""
	if i := strings.IndexAny(s, " \t:"); i >= 0 {
		name, value = s[:i], strings.TrimSpace(s[i+1:])
	}
	return Attr{Name: strings.ToLower(name), Value: value}
}

// Returns version text from `!IDD_Version x.y.z` token, or empty string.
func (ast *IDDAST) VersionText() string {
	if ast.Version == "" {
		return ""
	}
	fields := strings.Fields(ast.Version)
	if len(fields) < 2 {
		return ""
	}
	return fields[len(fields)-1]
}

type idfAST struct {
	Objects []*idfObjectAST `parser:"@@*"`
}

type idfObjectAST struct {
	Pos   lexer.Position
	Class string   `parser:"@Value"`
	Items []string `parser:"( @',' | @Value )* ';'"`
}

// RawObject is one data object as split by the data file grammar:
// the class word and the ordered field strings, empty fields kept in place.
type RawObject struct {
	Pos    lexer.Position
	Class  string
	Fields []string
}

// Values returns class word followed by fields, the positional form
// expected by the object store.
func (o RawObject) Values() []string {
	v := make([]string, 0, len(o.Fields)+1)
	v = append(v, o.Class)
	return append(v, o.Fields...)
}
