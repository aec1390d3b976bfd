// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gltypes maps the C type spellings of the Khronos OpenGL, GLX and WGL
// registries to the type spellings used by the generated bindings.
//
// A spelling is matched exactly as it appears in the registry, whitespace
// included: bare C scalars carry a trailing space ("int "), pointers end in
// " *" or " **", and const-qualified pointers start with "const ".
// Nothing is normalized, so "GLuint *" and "GLuint **" are unrelated keys.
//
// The package also holds the alias blocks, the fixed declaration lines that
// define the registry types in the generated source.
package gltypes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	// MutPtr marks a pointer the bindings may write through.
	MutPtr = "*mut "
	// ConstPtr marks a read-only pointer.
	ConstPtr = "*const "
)

// ErrUnresolvedType is matched by every *UnresolvedTypeError.
var ErrUnresolvedType = errors.New("type conversion not implemented")

// UnresolvedTypeError reports a spelling that has no entry in the table.
type UnresolvedTypeError struct {
	C string
}

func (e *UnresolvedTypeError) Error() string {
	return fmt.Sprintf("type conversion not implemented for %q", e.C)
}

// Is reports whether target is ErrUnresolvedType.
func (e *UnresolvedTypeError) Is(target error) bool { return target == ErrUnresolvedType }

// DuplicateError reports a spelling listed twice while building a Table.
type DuplicateError struct {
	C      string
	First  string
	Second string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate mapping for %q: %q and %q", e.C, e.First, e.Second)
}

// Entry is one literal pair of the table.
type Entry struct {
	C      string `json:"c" yaml:"c"`
	Target string `json:"target" yaml:"target"`
}

// Table is an immutable mapping from C spellings to target spellings.
// It is safe for concurrent use.
type Table struct {
	m map[string]string
}

// NewTable builds a Table from entries.
//
// A spelling that occurs more than once is an error even when both targets
// agree, so an entry can never be silently shadowed by a later one.
func NewTable(entries []Entry) (*Table, error) {
	t := &Table{m: make(map[string]string, len(entries))}
	for _, e := range entries {
		if prev, ok := t.m[e.C]; ok {
			return nil, &DuplicateError{C: e.C, First: prev, Second: e.Target}
		}
		t.m[e.C] = e.Target
	}

	return t, nil
}

// Map returns the target spelling of the C spelling c.
func (t *Table) Map(c string) (string, error) {
	ty, ok := t.m[c]
	if !ok {
		return "", &UnresolvedTypeError{C: c}
	}

	return ty, nil
}

// voidTypes are the spellings that need no return annotation.
var voidTypes = map[string]bool{
	"c_void":         true,
	"VOID":           true,
	"GLvoid":         true,
	"::libc::c_void": true, // mapped form of "void "
}

// ReturnSuffix returns the annotation that follows the parameter list of a
// function returning ty, such as " -> GLuint".
//
// ty may be a C spelling or text that was already mapped; C spellings found in
// the table are mapped first. Void types yield "": c_void, VOID, GLvoid and
// ::libc::c_void, the mapped form of "void ", so a void command gets no return
// annotation. Every mutable pointer marker is rewritten to a const one, as
// returned pointers are treated as read-only.
func (t *Table) ReturnSuffix(ty string) string {
	if voidTypes[ty] {
		return ""
	}
	if mapped, ok := t.m[ty]; ok {
		ty = mapped
	}
	if voidTypes[ty] {
		return ""
	}

	return " -> " + strings.ReplaceAll(ty, MutPtr, ConstPtr)
}

// ReturnType maps the C spelling c and returns its return annotation.
// Unlike ReturnSuffix it fails on spellings missing from the table.
func (t *Table) ReturnType(c string) (string, error) {
	ty, err := t.Map(c)
	if err != nil {
		return "", err
	}

	return t.ReturnSuffix(ty), nil
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.m) }

// Entries returns a copy of the table sorted by C spelling.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.m))
	for c, ty := range t.m {
		entries = append(entries, Entry{C: c, Target: ty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].C < entries[j].C })

	return entries
}

var defaultTable = mustNewTable(glEntries, glxEntries, wglEntries)

func mustNewTable(lists ...[]Entry) *Table {
	var all []Entry
	for _, l := range lists {
		all = append(all, l...)
	}

	t, err := NewTable(all)
	if err != nil {
		panic("gltypes: " + err.Error())
	}

	return t
}

// Default returns the table covering gl.xml, glx.xml and wgl.xml.
func Default() *Table { return defaultTable }

// Map maps c with the default table.
func Map(c string) (string, error) { return defaultTable.Map(c) }

// ReturnSuffix returns the return annotation of ty using the default table.
func ReturnSuffix(ty string) string { return defaultTable.ReturnSuffix(ty) }
