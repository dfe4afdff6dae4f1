/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package record

import (
	"fmt"

	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Named fields view onto one store record.
//
// Facade does not cache values: every read goes to the record, every write goes
// through to it. Facades bound to the same record observe each other writes.
type Facade struct {
	cls *idd.Class
	rec *objstore.Record
}

func (f *Facade) Class() *idd.Class { return f.cls }

func (f *Facade) Record() *objstore.Record { return f.rec }

// Returns class key, value of record position 0
func (f *Facade) Key() string { return f.cls.Key() }

// Returns record values count, key slot included
func (f *Facade) Len() int { return f.rec.Len() }

// Returns field value by name.
//
// Name is normalized by idd.MakeAccessName and compared case-insensitive. Returns
// ErrUnknownFieldError if class has no such field. Positions past record end
// return field default.
func (f *Facade) Get(name string) (fieldconv.Value, error) {
	p, ok := f.cls.FieldPosition(name)
	if !ok {
		return fieldconv.Value{}, idd.ErrUnknownField(f.cls.Name(), name)
	}
	return f.At(p), nil
}

// Returns rendered field value by name, see Get
func (f *Facade) GetString(name string) (string, error) {
	v, err := f.Get(name)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

// Returns value at position. Positions past record end return field default
func (f *Facade) At(pos int) fieldconv.Value {
	if pos < f.rec.Len() {
		return f.rec.Value(pos)
	}
	return fieldconv.DefaultValue(f.cls.FieldAt(pos))
}

// Sets field value by name.
//
// If record is shorter than field position then record is extended, every new
// intermediate position gets its declared default.
func (f *Facade) Set(name string, v fieldconv.Value) error {
	p, ok := f.cls.FieldPosition(name)
	if !ok {
		return idd.ErrUnknownField(f.cls.Name(), name)
	}
	return f.SetAt(p, v)
}

// Sets field value by name from text. Text is normalized by field data kind
func (f *Facade) SetString(name, s string) error {
	p, ok := f.cls.FieldPosition(name)
	if !ok {
		return idd.ErrUnknownField(f.cls.Name(), name)
	}
	fld := f.cls.FieldAt(p)
	return f.SetAt(p, fieldconv.TryParseNumber(s, fld.DataKind(), fld.Tag()))
}

// Sets value at position, see Set.
//
// Returns ErrKeyFieldReadOnlyError for position 0, ErrUnknownFieldError if
// position is out of class shape.
func (f *Facade) SetAt(pos int, v fieldconv.Value) error {
	if pos == 0 {
		return ErrKeyFieldReadOnly(f.cls.Name())
	}
	if f.cls.FieldAt(pos) == nil {
		return idd.ErrUnknownField(f.cls.Name(), fmt.Sprint(pos))
	}
	f.rec.Set(pos, v, f.defaultAt)
	return nil
}

// Returns object name: value of class name field, or empty string if class has no name field
func (f *Facade) Name() string {
	nf := f.cls.NameField()
	if nf == nil {
		return ""
	}
	return f.At(nf.Position()).String()
}

// Returns fields aligned with record values
func (f *Facade) Fields() []*idd.Field {
	return f.cls.FieldsFor(f.rec.Len())
}

// Returns labels of fields aligned with record values
func (f *Facade) Labels() []string {
	ff := f.Fields()
	ll := make([]string, len(ff))
	for i, fld := range ff {
		if fld != nil {
			ll[i] = fld.Name()
		}
	}
	return ll
}

func (f *Facade) String() string {
	if n := f.Name(); n != "" {
		return f.cls.Name() + " «" + n + "»"
	}
	return f.cls.Name()
}

func (f *Facade) defaultAt(pos int) fieldconv.Value {
	return fieldconv.DefaultValue(f.cls.FieldAt(pos))
}
