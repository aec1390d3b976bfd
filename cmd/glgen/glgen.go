// Copyright 2021 The Go Darwin Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	yaml "github.com/goccy/go-yaml"
	flag "github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"go-darwin.dev/glgen/pkg/glgen"
	"go-darwin.dev/glgen/pkg/glregistry"
	"go-darwin.dev/glgen/pkg/gltypes"
)

// Job is the generation of one registry.
type Job struct {
	API      string `yaml:"api"`
	Registry string `yaml:"registry,omitempty"`
	Output   string `yaml:"output,omitempty"`
}

func (j Job) String() string {
	if j.Registry == "" {
		return j.API
	}

	return j.API + ":" + j.Registry
}

// Config represents a glgen config.
type Config struct {
	Jobs        []Job `yaml:"jobs"`
	Concurrency int   `yaml:"concurrency,omitempty"`
}

// ReadConfig reads config and return new Config from r.
func ReadConfig(r io.Reader) (config *Config, err error) {
	dec := yaml.NewDecoder(r)
	config = new(Config)
	if err := dec.Decode(config); err != nil {
		return nil, err
	}

	return config, nil
}

func ConfigFromFlags(flags *flag.FlagSet) (config *Config, err error) {
	configFile, err := flags.GetString(fnameConfig)
	if err != nil {
		return nil, err
	}
	jobs, err := flags.GetInt(fnameJobs)
	if err != nil {
		return nil, err
	}

	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return nil, fmt.Errorf("open %s config file: %w", configFile, err)
		}
		defer f.Close()

		config, err = ReadConfig(f)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		api, err := flags.GetString(fnameAPI)
		if err != nil {
			return nil, err
		}
		registry, err := flags.GetString(fnameRegistry)
		if err != nil {
			return nil, err
		}
		output, err := flags.GetString(fnameOutput)
		if err != nil {
			return nil, err
		}

		config = &Config{
			Jobs: []Job{{API: api, Registry: registry, Output: output}},
		}
	}

	if flags.Changed(fnameJobs) || config.Concurrency <= 0 {
		config.Concurrency = jobs
	}
	if config.Concurrency <= 0 {
		config.Concurrency = runtime.NumCPU()
	}

	for _, job := range config.Jobs {
		if _, err := glregistry.File(job.API); err != nil {
			return nil, fmt.Errorf("job %s: %w", job, err)
		}
	}

	return config, nil
}

func run(flags *flag.FlagSet) int {
	config, err := ConfigFromFlags(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse configs: %v\n", err)
		return exitFailure
	}

	if len(config.Jobs) == 0 {
		fmt.Fprintf(os.Stderr, "please provide at least one job\n")
		return exitFailure
	}

	return runJobs(context.Background(), config)
}

// runJobs runs every job of config. A failed job does not stop the others.
func runJobs(ctx context.Context, config *Config) int {
	errs := make([]error, len(config.Jobs))

	var eg errgroup.Group
	eg.SetLimit(config.Concurrency)
	for i, job := range config.Jobs {
		i, job := i, job
		eg.Go(func() error {
			errs[i] = generate(ctx, job)
			return nil
		})
	}
	eg.Wait()

	code := exitSuccess
	for i, err := range errs {
		if err == nil {
			continue
		}
		code = exitFailure

		kv := []interface{}{"job", config.Jobs[i].String()}
		var uerr *gltypes.UnresolvedTypeError
		if errors.As(err, &uerr) {
			kv = append(kv, "spelling", uerr.C)
		}
		log.Error(err, "generate", kv...)
	}

	return code
}

var stdoutMu sync.Mutex

func generate(ctx context.Context, job Job) error {
	data, err := loadRegistry(ctx, job)
	if err != nil {
		return err
	}

	reg, err := glregistry.Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}

	gen := glgen.New(
		glgen.WithAPI(job.API),
		glgen.WithLogger(log.WithValues("job", job.String())),
	)

	var buf bytes.Buffer
	if err := gen.Generate(&buf, reg); err != nil {
		return err
	}

	if job.Output == "" {
		stdoutMu.Lock()
		defer stdoutMu.Unlock()

		_, err := buf.WriteTo(os.Stdout)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(job.Output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", job.Output, err)
	}
	log.Info("wrote", "job", job.String(), "output", job.Output)

	return nil
}

func loadRegistry(ctx context.Context, job Job) ([]byte, error) {
	if job.Registry != "" {
		return os.ReadFile(job.Registry)
	}

	uri, err := glregistry.URL(job.API)
	if err != nil {
		return nil, err
	}
	log.V(1).Info("download", "job", job.String(), "url", uri)

	return glregistry.Download(ctx, job.API)
}
