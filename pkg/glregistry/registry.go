// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glregistry reads the command declarations of the Khronos OpenGL,
// GLX and WGL XML registries.
package glregistry

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Registry holds the commands declared by one registry file.
type Registry struct {
	Namespace string
	Commands  []Command
}

// Command is a single <command> declaration.
//
// Proto and Param.Type hold type spellings in the registry convention, which
// is the form the gltypes table is keyed by.
type Command struct {
	Name   string
	Proto  string
	Params []Param
}

// Param is a single command parameter.
type Param struct {
	Name string
	Type string
}

type xmlRegistry struct {
	XMLName  xml.Name      `xml:"registry"`
	Commands []xmlCommands `xml:"commands"`
}

type xmlCommands struct {
	Namespace string       `xml:"namespace,attr"`
	Command   []xmlCommand `xml:"command"`
}

type xmlCommand struct {
	Proto  decl   `xml:"proto"`
	Params []decl `xml:"param"`
}

// decl is a <proto> or <param> element: mixed text, an optional <ptype> and a <name>.
type decl struct {
	Name string
	Type string
}

// UnmarshalXML rebuilds the type spelling from the text around <ptype>.
func (d *decl) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	var (
		before, after strings.Builder
		ptype         string
		hasPtype      bool
		hasName       bool
	)

	for {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("<%s>: %w", start.Name.Local, err)
		}

		switch tok := tok.(type) {
		case xml.CharData:
			switch {
			case hasName: // array suffixes such as "[2]"
			case hasPtype:
				after.Write(tok)
			default:
				before.Write(tok)
			}

		case xml.StartElement:
			var text string
			if err := dec.DecodeElement(&text, &tok); err != nil {
				return fmt.Errorf("<%s>: %w", start.Name.Local, err)
			}
			switch tok.Name.Local {
			case "ptype":
				ptype, hasPtype = text, true
			case "name":
				d.Name, hasName = strings.TrimSpace(text), true
			}

		case xml.EndElement:
			d.Type = spelling(before.String(), ptype, hasPtype, after.String())
			return nil
		}
	}
}

// spelling joins the pieces of a declaration. A whitespace-only tail after a
// <ptype> is dropped, while text-only declarations keep their trailing space:
// "<ptype>GLuint</ptype> " is "GLuint" but "void " stays "void ".
func spelling(before, ptype string, hasPtype bool, after string) string {
	before = strings.TrimLeft(before, " \t\r\n")
	if !hasPtype {
		return before
	}
	if strings.TrimSpace(after) == "" {
		after = ""
	}

	return before + ptype + after
}

// Parse decodes a registry from r.
//
// Commands are sorted by name and commands declared twice are kept once.
func Parse(r io.Reader) (*Registry, error) {
	var x xmlRegistry
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("decode registry: %w", err)
	}

	reg := new(Registry)
	seen := make(map[string]bool)
	for _, cmds := range x.Commands {
		if reg.Namespace == "" {
			reg.Namespace = cmds.Namespace
		}
		for _, c := range cmds.Command {
			if c.Proto.Name == "" {
				return nil, errors.New("decode registry: command without name")
			}
			if seen[c.Proto.Name] {
				continue
			}
			seen[c.Proto.Name] = true

			cmd := Command{
				Name:  c.Proto.Name,
				Proto: c.Proto.Type,
			}
			for i, p := range c.Params {
				if p.Name == "" {
					return nil, fmt.Errorf("decode registry: %s: parameter %d without name", cmd.Name, i)
				}
				cmd.Params = append(cmd.Params, Param{Name: p.Name, Type: p.Type})
			}
			reg.Commands = append(reg.Commands, cmd)
		}
	}

	sort.Slice(reg.Commands, func(i, j int) bool { return reg.Commands[i].Name < reg.Commands[j].Name })

	return reg, nil
}

// Spellings returns every distinct type spelling used by reg, sorted.
func (reg *Registry) Spellings() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(s string) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	for _, c := range reg.Commands {
		add(c.Proto)
		for _, p := range c.Params {
			add(p.Type)
		}
	}
	sort.Strings(out)

	return out
}
