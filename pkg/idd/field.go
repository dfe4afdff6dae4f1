/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"fmt"
)

// Describes single field of class.
//
// Fields are immutable after registry is built.
type Field struct {
	label            string
	access           string
	tag              string
	pos              int
	kind             DataKind
	def              string
	hasDef           bool
	required         bool
	refs             []string
	objLists         []string
	units            string
	keys             []string
	note             string
	autosizable      bool
	autocalculatable bool
	beginExt         bool
	group            int
	slot             int
	template         *Field
}

func newField(tag string, pos int) *Field {
	return &Field{
		tag:   tag,
		pos:   pos,
		group: -1,
	}
}

func newKeyField() *Field {
	f := newField("", 0)
	f.label = KeyFieldName
	f.kind = DataKind_alpha
	f.required = true
	return f
}

// Returns field label as declared by `\field`, or synthesized by gaps repair
func (f *Field) Name() string { return f.label }

// Returns accessor name, see MakeAccessName
func (f *Field) AccessName() string { return f.access }

// Returns field tag, like «A1» or «N3». Key slot and derived extensible fields have empty tag
func (f *Field) Tag() string { return f.tag }

// Returns field position in record. Key slot has position 0
func (f *Field) Position() int { return f.pos }

// Returns declared data kind
func (f *Field) DataKind() DataKind { return f.kind }

// Returns declared default value and is default declared
func (f *Field) Default() (string, bool) { return f.def, f.hasDef }

// Returns is field required
func (f *Field) Required() bool { return f.required }

// Returns reference lists which field declares its value into
func (f *Field) References() []string { return f.refs }

// Returns reference lists which field draws its value from
func (f *Field) ObjectLists() []string { return f.objLists }

// Returns is field declares values into specified reference list
func (f *Field) DeclaresInto(list string) bool { return containsFold(f.refs, list) }

// Returns is field draws values from specified reference list
func (f *Field) DrawsFrom(list string) bool { return containsFold(f.objLists, list) }

// Returns is field draws values from any of specified reference lists
func (f *Field) DrawsFromAny(lists []string) bool {
	for _, l := range lists {
		if f.DrawsFrom(l) {
			return true
		}
	}
	return false
}

func (f *Field) Units() string { return f.units }

// Returns choice keys
func (f *Field) Keys() []string { return f.keys }

func (f *Field) Note() string { return f.note }

func (f *Field) Autosizable() bool { return f.autosizable }

func (f *Field) Autocalculatable() bool { return f.autocalculatable }

// Returns is field is class-name slot
func (f *Field) IsKey() bool { return f.pos == 0 }

// Returns is field belongs to extensible group
func (f *Field) Extensible() bool { return f.template != nil }

// Returns extensible group repetition ordinal, or -1 if field is not extensible
func (f *Field) Group() int { return f.group }

// Returns field slot in extensible group, or 0 if field is not extensible
func (f *Field) Slot() int { return f.slot }

// Returns template of extensible group slot which field repeats.
//
// Template of first group fields is field itself. Returns nil if field is not extensible.
func (f *Field) Template() *Field { return f.template }

func (f *Field) String() string {
	if f.tag == "" {
		return fmt.Sprintf("field «%s»", f.label)
	}
	return fmt.Sprintf("field «%s» [%s]", f.label, f.tag)
}

// Returns derived field for specified position of extensible group
func (f *Field) derive(pos, group int) *Field {
	d := *f
	d.tag = ""
	d.pos = pos
	d.group = group
	d.beginExt = false
	d.template = f
	d.label = replicateLabel(f.label, group)
	d.access = MakeAccessName(d.label)
	return &d
}
