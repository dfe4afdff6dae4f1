/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idfio

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/text/encoding/charmap"

	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
	"github.com/voedger/idfkit/pkg/parser"
)

// Reads text file. Files which are not valid UTF-8 are decoded as ISO-8859-2
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return Decode(b)
}

// Decodes file content. Content which is not valid UTF-8 is decoded as ISO-8859-2
func Decode(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}
	d, err := charmap.ISO8859_2.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	logger.Verbose("content is not UTF-8, decoded as ISO-8859-2")
	return string(d), nil
}

// Reads schema file and loads registry
func LoadRegistry(path string, opts ...idd.Option) (*idd.Registry, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return idd.Load(path, src, opts...)
}

// Reads data file and loads its objects into new store
func LoadStore(reg *idd.Registry, path string) (*objstore.Store, error) {
	src, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ReadStore(reg, path, src)
}

// Parses data file text and loads its objects into new store
func ReadStore(reg *idd.Registry, fileName, src string) (*objstore.Store, error) {
	objs, err := parser.ParseIDF(fileName, src)
	if err != nil {
		return nil, err
	}
	s := objstore.New(reg)
	for _, o := range objs {
		if _, err := s.Load(o.Class, o.Fields); err != nil {
			return nil, fmt.Errorf("%s: %w", o.Pos.String(), err)
		}
	}
	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s: %d objects loaded", fileName, s.Count()))
	}
	return s, nil
}

// Checks data file Version object matches schema version by major and minor numbers.
//
// Mismatch is logged as warning and returned as error.
func CheckVersion(reg *idd.Registry, s *objstore.Store) error {
	recs := s.RecordsOf(versionClass)
	if len(recs) == 0 {
		logger.Warning(ErrNoVersion)
		return ErrNoVersion
	}
	v, err := idd.ParseVersion(recs[0].Value(1).String())
	if err != nil {
		return err
	}
	if v.MajorMinor().Compare(reg.Version().MajorMinor()) != 0 {
		err := idd.EnrichError(ErrVersionMismatch, "data file %v, schema %v", v, reg.Version())
		logger.Warning(err)
		return err
	}
	return nil
}
