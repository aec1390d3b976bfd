// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glgen writes the native bindings of a Khronos registry: the alias
// blocks of its API followed by one foreign function declaration per command.
package glgen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-logr/logr"

	"go-darwin.dev/glgen/pkg/glregistry"
	"go-darwin.dev/glgen/pkg/gltypes"
)

func init() {
	spew.Config = spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true, // maps should be spewed in a deterministic order
		DisablePointerAddresses: true, // don't spew the addresses of pointers
		DisableCapacities:       true, // don't spew capacities of collections
		MaxDepth:                4,
	}
}

// DefaultHeader is the first line of every generated file.
const DefaultHeader = "// Code generated by go-darwin.dev/glgen; DO NOT EDIT."

// Generator writes bindings using a gltypes.Table.
//
// The alias blocks it writes come from gltypes.Aliases and are shared by the
// whole process; nothing may modify their lines.
type Generator struct {
	table  *gltypes.Table
	log    logr.Logger
	api    string
	header string
}

// Option configures a Generator.
type Option interface {
	apply(g *Generator)
}

// optionFunc wraps a func so it satisfies the Option interface.
type optionFunc func(g *Generator)

// apply implements Option.apply.
func (f optionFunc) apply(g *Generator) {
	f(g)
}

// WithTable sets the type table. The default is gltypes.Default().
func WithTable(t *gltypes.Table) Option {
	return optionFunc(func(g *Generator) {
		g.table = t
	})
}

// WithLogger sets the logger.
func WithLogger(log logr.Logger) Option {
	return optionFunc(func(g *Generator) {
		g.log = log
	})
}

// WithAPI selects the alias blocks written ahead of the commands. The default is "gl".
func WithAPI(api string) Option {
	return optionFunc(func(g *Generator) {
		g.api = api
	})
}

// WithHeader replaces DefaultHeader.
func WithHeader(header string) Option {
	return optionFunc(func(g *Generator) {
		g.header = header
	})
}

// New returns a new Generator.
func New(opts ...Option) *Generator {
	g := &Generator{
		table:  gltypes.Default(),
		log:    logr.Discard(),
		api:    "gl",
		header: DefaultHeader,
	}
	for _, opt := range opts {
		opt.apply(g)
	}

	return g
}

// Generate writes the bindings of reg to w.
//
// Nothing is written unless every type spelling of reg resolves. The error of
// an unresolved spelling wraps a *gltypes.UnresolvedTypeError.
func (g *Generator) Generate(w io.Writer, reg *glregistry.Registry) error {
	if reg == nil {
		return errors.New("generate: nil registry")
	}

	blocks, err := gltypes.BlocksFor(g.api)
	if err != nil {
		return err
	}

	if v := g.log.V(2); v.Enabled() {
		v.Info("registry", "dump", spew.Sdump(reg))
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n", g.header)
	for _, b := range blocks {
		buf.WriteString("\n")
		for _, line := range gltypes.Aliases(b) {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	buf.WriteString("\nextern \"system\" {\n")
	for _, cmd := range reg.Commands {
		decl, err := g.command(cmd)
		if err != nil {
			return err
		}
		g.log.V(1).Info("command", "name", cmd.Name, "decl", decl)
		fmt.Fprintf(&buf, "    %s\n", decl)
	}
	buf.WriteString("}\n")

	g.log.Info("generated", "api", g.api, "namespace", reg.Namespace, "commands", len(reg.Commands))

	_, err = buf.WriteTo(w)
	return err
}

func (g *Generator) command(cmd glregistry.Command) (string, error) {
	params := make([]string, 0, len(cmd.Params))
	for _, p := range cmd.Params {
		ty, err := g.table.Map(p.Type)
		if err != nil {
			return "", fmt.Errorf("%s: parameter %s: %w", cmd.Name, p.Name, err)
		}
		params = append(params, paramName(p.Name)+": "+ty)
	}

	ret, err := g.table.ReturnType(cmd.Proto)
	if err != nil {
		return "", fmt.Errorf("%s: return type: %w", cmd.Name, err)
	}

	return fmt.Sprintf("pub fn %s(%s)%s;", cmd.Name, strings.Join(params, ", "), ret), nil
}

// Unresolved returns the spellings of reg missing from the table, sorted.
func (g *Generator) Unresolved(reg *glregistry.Registry) []string {
	var missing []string
	for _, s := range reg.Spellings() {
		if _, err := g.table.Map(s); err != nil {
			missing = append(missing, s)
		}
	}
	sort.Strings(missing)

	return missing
}
