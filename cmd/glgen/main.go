// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command glgen generates OpenGL, GLX and WGL bindings from the Khronos XML registries.
//
// Usage:
//
//	glgen [flags]          generate the bindings of one registry, or every job of --config
//	glgen check < gl.xml   list the type spellings of a registry that have no mapping
//	glgen dump             print the type table, or one alias block with --block
package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exitSuccess = iota
	exitFailure
)

const (
	fnameAPI      = "api"
	fnameRegistry = "registry"
	fnameOutput   = "output"
	fnameConfig   = "config"
	fnameJobs     = "jobs"
	fnameFormat   = "format"
	fnameBlock    = "block"
	fnameDebug    = "debug"
)

var log = logr.Discard()

func newFlagSet(name string) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ExitOnError)
	flags.String(fnameAPI, "gl", "api of the registry: gl, gles1, gles2, glcore, glx or wgl")
	flags.String(fnameRegistry, "", "registry XML file, downloaded from Khronos when empty")
	flags.String(fnameOutput, "", "output file, stdout when empty")
	flags.String(fnameConfig, "", "YAML file listing generation jobs")
	flags.Int(fnameJobs, 0, "number of jobs run at once, the number of CPUs when zero")
	flags.String(fnameFormat, "json", "dump format: json or yaml")
	flags.String(fnameBlock, "", "dump the named alias block instead of the table")
	flags.Bool(fnameDebug, false, "debug log output")

	return flags
}

func main() {
	flags := newFlagSet(os.Args[0])
	flags.Parse(os.Args[1:])

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	zc := zap.NewDevelopmentConfig()
	zc.Level = lvl
	zl, err := zc.Build(zap.AddCaller(), zap.AddStacktrace(zapcore.DPanicLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "new zap development logger: %v\n", err)
		os.Exit(int(exitFailure))
	}
	if debug, _ := flags.GetBool(fnameDebug); debug {
		lvl.SetLevel(zapcore.Level(-2)) // logr V(2)
	}
	log = zapr.NewLogger(zl)

	switch cmd := flags.Arg(0); cmd {
	case "":
	case "check":
		os.Exit(check(os.Stdin, os.Stdout))
	case "dump":
		os.Exit(dump(os.Stdout, flags))
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", cmd)
		flags.Usage()
		os.Exit(int(exitFailure))
	}

	os.Exit(run(flags))
}
