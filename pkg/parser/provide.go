/*
* Copyright (c) 2024-present unTill Software Development Group B.V.
* @author Michael Saigachenko
 */

package parser

// ParseIDD parses data dictionary text and returns its syntax tree.
// Performs syntax analysis only, semantic checks are made by the schema registry.
func ParseIDD(fileName, content string) (*IDDAST, error) {
	return parseIDDImpl(fileName, content)
}

// ParseIDF splits data file text into raw objects.
func ParseIDF(fileName, content string) ([]RawObject, error) {
	return parseIDFImpl(fileName, content)
}
