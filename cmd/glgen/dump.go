// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
	yaml "github.com/goccy/go-yaml"
	flag "github.com/spf13/pflag"

	"go-darwin.dev/glgen/pkg/gltypes"
)

func dump(w io.Writer, flags *flag.FlagSet) int {
	block, err := flags.GetString(fnameBlock)
	if err != nil {
		log.Error(err, "get flag", "name", fnameBlock)
		return exitFailure
	}
	if block != "" {
		b, err := gltypes.ParseBlock(block)
		if err != nil {
			log.Error(err, "dump")
			return exitFailure
		}
		for _, line := range gltypes.Aliases(b) {
			if _, err := fmt.Fprintln(w, line); err != nil {
				log.Error(err, "write block", "block", block)
				return exitFailure
			}
		}

		return exitSuccess
	}

	format, err := flags.GetString(fnameFormat)
	if err != nil {
		log.Error(err, "get flag", "name", fnameFormat)
		return exitFailure
	}

	data, err := marshalEntries(format, gltypes.Default().Entries())
	if err != nil {
		log.Error(err, "dump")
		return exitFailure
	}
	if _, err := w.Write(data); err != nil {
		log.Error(err, "write table", "format", format)
		return exitFailure
	}

	return exitSuccess
}

func marshalEntries(format string, entries []gltypes.Entry) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshal json: %w", err)
		}
		return append(data, '\n'), nil

	case "yaml":
		quoted := make([]yamlEntry, len(entries))
		for i, e := range entries {
			quoted[i] = yamlEntry{C: yamlString(e.C), Target: yamlString(e.Target)}
		}
		data, err := yaml.Marshal(quoted)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return data, nil

	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// yamlEntry is a gltypes.Entry whose strings are always double-quoted, so the
// trailing space of spellings such as "void " survives a round trip.
type yamlEntry struct {
	C      yamlString `yaml:"c"`
	Target yamlString `yaml:"target"`
}

type yamlString string

// MarshalYAML implements yaml.BytesMarshaler.
func (s yamlString) MarshalYAML() ([]byte, error) {
	return []byte(strconv.Quote(string(s))), nil
}
