/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"strconv"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/idfkit/pkg/objcache"
)

// Describes object class: ordered fields and class-level metadata.
//
// Classes are owned by registry and immutable after registry is built.
type Class struct {
	name      string
	key       string
	group     string
	memo      []string
	format    string
	unique    bool
	required  bool
	obsolete  bool
	minFields int
	extSize   int
	extBase   int
	fields    []*Field

	positions map[string]int
	patterns  []extPattern
	names     objcache.ICache[string, int]
}

// Accessor name pattern of extensible group slot: prefix, group number, suffix
type extPattern struct {
	prefix, suffix string
	slot           int
}

func newClass(name string) *Class {
	return &Class{
		name: name,
		key:  strings.ToUpper(name),
	}
}

// Returns class name as declared
func (c *Class) Name() string { return c.name }

// Returns canonical uppercased class name. Records of class store key at position 0
func (c *Class) Key() string { return c.key }

// Returns `\group` which class declared in
func (c *Class) Group() string { return c.group }

// Returns documentation text. Informational only
func (c *Class) Memo() string { return strings.Join(c.memo, "\n") }

// Returns `\format` attribute value
func (c *Class) Format() string { return c.format }

// Returns is class allows single instance only
func (c *Class) Unique() bool { return c.unique }

// Returns is class instance required in data file
func (c *Class) RequiredObject() bool { return c.required }

func (c *Class) Obsolete() bool { return c.obsolete }

// Returns minimum fields count to write, class name slot excluded
func (c *Class) MinFields() int { return c.minFields }

// Returns is class has extensible group
func (c *Class) Extensible() bool { return c.extSize > 0 }

// Returns extensible group size, or zero if class is not extensible
func (c *Class) ExtensibleSize() int { return c.extSize }

// Returns position of first extensible field, or zero if class is not extensible
func (c *Class) ExtensibleBase() int { return c.extBase }

// Returns declared fields, including key slot at position 0
func (c *Class) Fields() []*Field {
	return append([]*Field(nil), c.fields...)
}

// Returns declared fields count, including key slot
func (c *Class) FieldCount() int { return len(c.fields) }

// Returns field for specified position.
//
// Positions past declared fields of extensible class resolve to fields derived
// from extensible group template. Returns nil if position is out of class shape
// or is not less than MaxRecordLength.
func (c *Class) FieldAt(pos int) *Field {
	if pos < 0 {
		return nil
	}
	if pos < len(c.fields) {
		return c.fields[pos]
	}
	if c.extSize == 0 || pos >= MaxRecordLength {
		return nil
	}
	off := pos - c.extBase
	t := c.fields[c.extBase+off%c.extSize].template
	return t.derive(pos, off/c.extSize)
}

// Returns fields aligned with record of specified length.
//
// Entries past shape of not extensible class are nil.
func (c *Class) FieldsFor(length int) []*Field {
	ff := make([]*Field, length)
	for i := range ff {
		ff[i] = c.FieldAt(i)
	}
	return ff
}

// Returns field position by name. Name is normalized by MakeAccessName and compared case-insensitive.
func (c *Class) FieldPosition(name string) (int, bool) {
	key := accessKey(name)
	if key == "" {
		return 0, false
	}
	if p, ok := c.positions[key]; ok {
		return p, true
	}
	if c.extSize == 0 {
		return 0, false
	}
	if c.names != nil {
		if p, ok := c.names.Get(key); ok {
			return p, p >= 0
		}
	}
	p := c.resolveExtensible(key)
	if c.names != nil {
		c.names.Put(key, p)
	}
	return p, p >= 0
}

// Returns field by name, or nil if not found
func (c *Class) Field(name string) *Field {
	if p, ok := c.FieldPosition(name); ok {
		return c.FieldAt(p)
	}
	return nil
}

// Returns object name field.
//
// This is field labeled «Name», or first field which label ends with «Name».
// Returns nil if class has no name field.
func (c *Class) NameField() *Field {
	if p, ok := c.positions[strings.ToLower(NameFieldName)]; ok {
		return c.fields[p]
	}
	for _, f := range c.fields[1:] {
		if strings.HasSuffix(f.label, NameFieldName) {
			return f
		}
	}
	return nil
}

func (c *Class) String() string {
	return "class «" + c.name + "»"
}

// Resolves accessor key past declared fields by extensible patterns. Returns -1 if not resolved
func (c *Class) resolveExtensible(key string) int {
	for _, p := range c.patterns {
		if !strings.HasPrefix(key, p.prefix) || !strings.HasSuffix(key, p.suffix) {
			continue
		}
		if len(key) <= len(p.prefix)+len(p.suffix) {
			continue
		}
		n, err := strconv.Atoi(key[len(p.prefix) : len(key)-len(p.suffix)])
		if err != nil || n < 1 {
			continue
		}
		limit := MaxRecordLength - 1 - c.extBase - p.slot
		if limit < 0 || n-1 > limit/c.extSize {
			continue
		}
		pos := c.extBase + (n-1)*c.extSize + p.slot
		if logger.IsTrace() {
			logger.Trace(c, "resolves", key, "to position", pos)
		}
		return pos
	}
	return -1
}

// Prepares lookup tables. Called once then registry builds
func (c *Class) prepare(cacheKind objcache.Kind, cacheSize int) {
	c.positions = make(map[string]int, len(c.fields))
	for i, f := range c.fields {
		if f.label == "" {
			f.label = f.tag
		}
		f.access = MakeAccessName(f.label)
		k := strings.ToLower(f.access)
		if k == "" {
			continue
		}
		if prev, exists := c.positions[k]; exists {
			logger.Verbose(c, f, "duplicates accessor name of position", prev)
			continue
		}
		c.positions[k] = i
	}

	if c.extSize == 0 {
		return
	}

	marker := strconv.Itoa(groupMarker)
	for s := 0; s < c.extSize; s++ {
		t := c.fields[c.extBase+s]
		k := strings.ToLower(MakeAccessName(replicateLabel(t.label, groupMarker-1)))
		i := strings.Index(k, marker)
		if i < 0 {
			continue
		}
		c.patterns = append(c.patterns, extPattern{prefix: k[:i], suffix: k[i+len(marker):], slot: s})
	}
	if cacheSize > 0 {
		c.names = objcache.NewKind[string, int](cacheKind, cacheSize)
	}
}
