/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

import (
	"fmt"

	"github.com/untillpro/goutils/logger"
)

// Repairs standard schema gaps.
//
// Every class gets key slot at position 0. Classes not in skip list get labels for
// unlabeled fields, replicated from numbered template: contiguous run of labeled
// fields started by label with standalone «1».
//
// Returns keys of classes which have unlabeled fields but no numbered template.
// Panics if registry is already built.
func (b *RegistryBuilder) RepairStandardGaps(skip ...string) (noFirst []string) {
	b.checkNotBuilt()

	for _, c := range b.classes {
		c.ensureKey()
		if containsFold(skip, c.key) {
			if logger.IsTrace() {
				logger.Trace(c, "skipped by standard gaps repair")
			}
			continue
		}
		if !c.hasUnlabeled(1) {
			continue
		}
		if !c.labelFromTemplate() {
			noFirst = append(noFirst, c.key)
		}
	}
	return noFirst
}

// Repairs extensible groups.
//
// For each extensible class group base is position of `\begin-extensible` field,
// or start of last declared group. Missed template slots are synthesized. Every
// field at or past base gets group, slot and template. Unlabeled extensible
// fields of classes listed in noFirst get labels replicated from template.
// Panics if registry is already built.
func (b *RegistryBuilder) RepairExtensibleGaps(noFirst []string) {
	b.checkNotBuilt()

	for _, c := range b.classes {
		if c.extSize == 0 {
			continue
		}
		c.ensureKey()
		c.repairExtensible(containsFold(noFirst, c.key))
	}
}

func (c *Class) ensureKey() {
	if len(c.fields) > 0 && c.fields[0].IsKey() {
		return
	}
	c.fields = append([]*Field{newKeyField()}, c.fields...)
}

// Returns is class has unlabeled fields at or past specified position
func (c *Class) hasUnlabeled(from int) bool {
	for i := from; i < len(c.fields); i++ {
		if c.fields[i].label == "" {
			return true
		}
	}
	return false
}

// Labels unlabeled fields from numbered template. Returns false if class has no template
func (c *Class) labelFromTemplate() bool {
	start := -1
	for i := 1; i < len(c.fields); i++ {
		if l := c.fields[i].label; l != "" && hasGroupNumber(l) {
			start = i
			break
		}
	}
	if start < 0 {
		return false
	}
	end := start
	for end < len(c.fields) && c.fields[end].label != "" {
		end++
	}
	tmpl := make([]string, 0, end-start)
	for _, f := range c.fields[start:end] {
		tmpl = append(tmpl, f.label)
	}

	n := len(tmpl)
	for i := end; i < len(c.fields); i++ {
		f := c.fields[i]
		if f.label != "" {
			continue
		}
		off := i - start
		f.label = replicateLabel(tmpl[off%n], off/n)
		if logger.IsTrace() {
			logger.Trace(c, f.tag, "labeled as", f.label)
		}
	}
	return true
}

func (c *Class) repairExtensible(labelUnlabeled bool) {
	n := c.extSize
	base := 0
	for i := 1; i < len(c.fields); i++ {
		if c.fields[i].beginExt {
			base = i
			break
		}
	}
	if base == 0 {
		base = len(c.fields) - n
		if base < 1 {
			base = 1
		}
	}
	c.extBase = base

	for s := 0; s < n; s++ {
		p := base + s
		if p < len(c.fields) {
			continue
		}
		f := newField("", p)
		c.fields = append(c.fields, f)
		if logger.IsTrace() {
			logger.Trace(c, "synthesizes extensible template slot", s)
		}
	}

	for s := 0; s < n; s++ {
		t := c.fields[base+s]
		if t.label == "" {
			t.label = fmt.Sprintf(synthesizedLabelFmt, s+1)
		}
	}

	for p := base; p < len(c.fields); p++ {
		f := c.fields[p]
		off := p - base
		f.group = off / n
		f.slot = off % n
		f.template = c.fields[base+f.slot]
		if f.label == "" && labelUnlabeled {
			f.label = replicateLabel(f.template.label, f.group)
		}
	}
}
