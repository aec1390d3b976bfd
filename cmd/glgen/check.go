// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"

	"go-darwin.dev/glgen/pkg/glgen"
	"go-darwin.dev/glgen/pkg/glregistry"
)

// check prints every type spelling of the registry read from r that has no
// mapping, one quoted spelling per line.
func check(r io.Reader, w io.Writer) int {
	reg, err := glregistry.Parse(r)
	if err != nil {
		log.Error(err, "read registry")
		return exitFailure
	}

	missing := glgen.New().Unresolved(reg)
	for _, s := range missing {
		fmt.Fprintf(w, "%q\n", s)
	}
	if len(missing) > 0 {
		log.Info("unresolved type spellings", "namespace", reg.Namespace, "count", len(missing))
		return exitFailure
	}

	return exitSuccess
}
