/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package editor

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/voedger/idfkit/pkg/fieldconv"
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
	"github.com/voedger/idfkit/pkg/record"
	"github.com/voedger/idfkit/pkg/refindex"
)

// Edits objects of store keeping name references consistent.
//
// Editor is not safe for concurrent use. Rename cascade is not atomic, use
// objstore.Store.Snapshot to keep rollback point.
type Editor struct {
	reg             *idd.Registry
	store           *objstore.Store
	index           *refindex.Index
	allowDuplicates bool
}

func (e *Editor) Registry() *idd.Registry { return e.reg }

func (e *Editor) Store() *objstore.Store { return e.store }

func (e *Editor) Index() *refindex.Index { return e.index }

// Returns first object of class with specified name, case-insensitive.
//
// Returns false if class is unknown, has no name field or has no such object.
func (e *Editor) GetNamed(class, name string) (*record.Facade, bool) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, false
	}
	nf := cls.NameField()
	if nf == nil {
		return nil, false
	}
	for _, rec := range e.store.RecordsOf(cls.Key()) {
		if rec.Value(nf.Position()).EqualFold(name) {
			return record.New(cls, rec), true
		}
	}
	return nil, false
}

// Returns facades of all class objects in insertion order
func (e *Editor) Objects(class string) []*record.Facade {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil
	}
	recs := e.store.RecordsOf(cls.Key())
	ff := make([]*record.Facade, len(recs))
	for i, rec := range recs {
		ff[i] = record.New(cls, rec)
	}
	return ff
}

// Returns new object values: class key and declared defaults of every declared field
func (e *Editor) NewRawObject(class string) ([]fieldconv.Value, error) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	return newRawObject(cls), nil
}

func newRawObject(cls *idd.Class) []fieldconv.Value {
	ff := cls.Fields()
	vv := make([]fieldconv.Value, len(ff))
	vv[0] = fieldconv.Text(cls.Key())
	for i := 1; i < len(ff); i++ {
		vv[i] = fieldconv.DefaultValue(ff[i])
	}
	return vv
}

// Adds new object of class.
//
// Object gets declared defaults, then fields values are applied in position
// order. Unknown field name fails with ErrUnknownFieldError, two names of the
// same field fail with ErrFieldAssignedTwice; nothing is added then.
func (e *Editor) AddObject(class string, fields map[string]fieldconv.Value) (*record.Facade, error) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	if cls.Unique() && len(e.store.RecordsOf(cls.Key())) > 0 {
		return nil, idd.EnrichError(ErrUniqueObjectViolation, "class «%s»", cls.Name())
	}

	values := make(map[int]fieldconv.Value, len(fields))
	for name, v := range fields {
		p, ok := cls.FieldPosition(name)
		if !ok {
			return nil, idd.ErrUnknownField(cls.Name(), name)
		}
		if p == 0 {
			return nil, record.ErrKeyFieldReadOnly(cls.Name())
		}
		if _, dup := values[p]; dup {
			return nil, idd.EnrichError(ErrFieldAssignedTwice, "class «%s» position %d, «%s»", cls.Name(), p, name)
		}
		values[p] = v
	}

	if nf := cls.NameField(); nf != nil {
		if v, ok := values[nf.Position()]; ok {
			if err := e.checkUnique(cls, v.String(), nil); err != nil {
				return nil, err
			}
		}
	}

	rec := objstore.NewRecord(cls, newRawObject(cls))
	obj := record.New(cls, rec)
	positions := maps.Keys(values)
	slices.Sort(positions)
	for _, p := range positions {
		if err := obj.SetAt(p, values[p]); err != nil {
			return nil, err
		}
	}
	if err := e.store.Append(cls.Key(), rec); err != nil {
		return nil, err
	}

	if logger.IsVerbose() {
		logger.Verbose("added", obj)
	}
	return obj, nil
}

// Renames object and updates every reference to it.
//
// Reference lists which class name declared into are taken from index. Every
// field of store which draws from these lists and holds old name is set to new
// name. Returns ErrNotFoundError if object is not found, ErrNameUniqueViolation
// if class already has object with new name and duplicates are not allowed.
// Renaming to the same name does nothing.
func (e *Editor) Rename(class, oldName, newName string) (*record.Facade, error) {
	obj, _, err := e.RenameWithReferences(class, oldName, newName)
	return obj, err
}

// Renames object like Rename and returns fields which were rewritten by cascade.
//
// Renaming to the same name returns no fields.
func (e *Editor) RenameWithReferences(class, oldName, newName string) (*record.Facade, []refindex.Holder, error) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, nil, idd.ErrUnknownClass(class)
	}
	if cls.NameField() == nil {
		return nil, nil, idd.EnrichError(ErrNoNameField, "class «%s»", cls.Name())
	}
	obj, ok := e.GetNamed(cls.Key(), oldName)
	if !ok {
		return nil, nil, idd.ErrObjectNotFound(cls.Name(), oldName)
	}
	if oldName == newName {
		return obj, nil, nil
	}
	if err := e.checkUnique(cls, newName, obj.Record()); err != nil {
		return nil, nil, err
	}

	lists := e.index.ReferenceListsOf(cls.Key())
	holders := e.index.HoldersOf(e.store, lists, oldName)

	if err := obj.SetAt(cls.NameField().Position(), fieldconv.Text(newName)); err != nil {
		return nil, nil, err
	}
	for _, h := range holders {
		h.Record.Set(h.Position, fieldconv.Text(newName), nil)
	}

	if logger.IsVerbose() {
		logger.Verbose(fmt.Sprintf("%s «%s» renamed to «%s», %d references updated", cls.Name(), oldName, newName, len(holders)))
	}
	return obj, holders, nil
}

// Removes object of class by name.
//
// References to removed object are not changed, see refindex.Index.Dangling.
func (e *Editor) RemoveObject(class, name string) error {
	cls := e.reg.Class(class)
	if cls == nil {
		return idd.ErrUnknownClass(class)
	}
	obj, ok := e.GetNamed(cls.Key(), name)
	if !ok {
		return idd.ErrObjectNotFound(cls.Name(), name)
	}
	if err := e.store.Remove(cls.Key(), obj.Record()); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("removed", obj)
	}
	return nil
}

// Removes extensible fields of object, keeping fields before extensible group
func (e *Editor) RemoveExtensibles(class, name string) (*record.Facade, error) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	obj, ok := e.GetNamed(cls.Key(), name)
	if !ok {
		return nil, idd.ErrObjectNotFound(cls.Name(), name)
	}
	if cls.Extensible() {
		obj.Record().Truncate(cls.ExtensibleBase())
	}
	return obj, nil
}

// Returns fields which refer to object
func (e *Editor) ReferencesTo(class, name string) ([]refindex.Holder, error) {
	cls := e.reg.Class(class)
	if cls == nil {
		return nil, idd.ErrUnknownClass(class)
	}
	obj, ok := e.GetNamed(cls.Key(), name)
	if !ok {
		return nil, idd.ErrObjectNotFound(cls.Name(), name)
	}
	return e.index.HoldersOf(e.store, e.index.ReferenceListsOf(cls.Key()), obj.Name()), nil
}

// Checks class has no object named name other than self
func (e *Editor) checkUnique(cls *idd.Class, name string, self *objstore.Record) error {
	if e.allowDuplicates || fieldconv.Text(name).IsBlank() {
		return nil
	}
	if other, ok := e.GetNamed(cls.Key(), name); ok && other.Record() != self {
		return idd.EnrichError(ErrNameUniqueViolation, "%s «%s» already exists", cls.Name(), name)
	}
	return nil
}
