/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idfio

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Writes store objects as data file text.
//
// Objects are written class by class in registry order, fields positionally with
// «!- label» comments. Trailing blank fields are trimmed, but not below class min-fields.
func Write(w io.Writer, s *objstore.Store) error {
	bw := bufio.NewWriter(w)
	reg := s.Registry()
	for _, key := range s.AllClasses() {
		cls := reg.Class(key)
		for _, rec := range s.RecordsOf(key) {
			writeObject(bw, cls, rec)
		}
	}
	return bw.Flush()
}

// Writes store objects to file, see Write
func WriteFile(path string, s *objstore.Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if e := f.Close(); err == nil {
			err = e
		}
	}()
	return Write(f, s)
}

func writeObject(w *bufio.Writer, cls *idd.Class, rec *objstore.Record) {
	values := fieldValues(cls, rec)

	if len(values) == 0 {
		w.WriteString(cls.Name() + ";\n\n")
		return
	}

	if strings.EqualFold(cls.Format(), singleLineFormat) {
		ss := make([]string, len(values))
		for i, v := range values {
			ss[i] = v.String()
		}
		w.WriteString(cls.Name() + "," + strings.Join(ss, ",") + ";\n\n")
		return
	}

	w.WriteString(cls.Name() + ",\n")
	for i, v := range values {
		sep := ","
		if i == len(values)-1 {
			sep = ";"
		}
		line := fieldIndent + v.String() + sep
		if pad := commentColumn - len(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		} else {
			line += "  "
		}
		w.WriteString(line + "!- " + fieldComment(cls.FieldAt(i+1)) + "\n")
	}
	w.WriteString("\n")
}

// Returns object values to write, class key excluded
func fieldValues(cls *idd.Class, rec *objstore.Record) []fieldconv.Value {
	all := rec.Values()[1:]
	values := objstore.TrimTrailing(all, fieldconv.Value.IsBlank)
	if n := cls.MinFields(); len(values) < n {
		if n > len(all) {
			n = len(all)
		}
		values = all[:n]
	}
	return values
}

func fieldComment(f *idd.Field) string {
	if f == nil {
		return ""
	}
	if u := f.Units(); u != "" {
		return f.Name() + " {" + u + "}"
	}
	return f.Name()
}
