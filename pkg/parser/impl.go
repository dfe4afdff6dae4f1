/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Michael Saigachenko
 */

package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var iddLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Version", Pattern: `![ \t]*IDD_Version[^\r\n]*`},
	{Name: "Comment", Pattern: `![^\r\n]*`},
	{Name: "Attr", Pattern: `\\[^\r\n]*`},
	{Name: "Tag", Pattern: `[AaNn][0-9]+`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "Name", Pattern: `[^,;!\\\s][^,;!\\\r\n]*`},
})

var iddParser = participle.MustBuild[IDDAST](
	participle.Lexer(iddLexer),
	participle.Elide("Whitespace", "Comment"),
)

var idfLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Comment", Pattern: `![^\r\n]*`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "Value", Pattern: `[^,;!\s][^,;!\r\n]*`},
})

var idfParser = participle.MustBuild[idfAST](
	participle.Lexer(idfLexer),
	participle.Elide("Whitespace", "Comment"),
)

func parseIDDImpl(fileName, content string) (*IDDAST, error) {
	ast, err := iddParser.ParseString(fileName, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	for _, c := range ast.Classes {
		c.Name = strings.TrimSpace(c.Name)
		for _, f := range c.Fields {
			f.Tag = strings.ToUpper(f.Tag)
		}
	}
	return ast, nil
}

func parseIDFImpl(fileName, content string) ([]RawObject, error) {
	ast, err := idfParser.ParseString(fileName, content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	objects := make([]RawObject, 0, len(ast.Objects))
	for _, o := range ast.Objects {
		obj := RawObject{
			Pos:   o.Pos,
			Class: strings.TrimSpace(o.Class),
		}
		valued := false
		for _, item := range o.Items {
			if item == "," {
				obj.Fields = append(obj.Fields, "")
				valued = false
				continue
			}
			if len(obj.Fields) == 0 || valued {
				return nil, errorAt(ErrMissedSeparator(obj.Class), &o.Pos)
			}
			obj.Fields[len(obj.Fields)-1] = strings.TrimSpace(item)
			valued = true
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

func errorAt(err error, pos *lexer.Position) error {
	return fmt.Errorf("%s: %w", pos.String(), err)
}
