// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command chartscale computes the scales of a chart from its dataset.
//
// chartscale reads a dataset (see internal/dataset for the format),
// classifies and scales it according to a YAML configuration, and
// writes a JSON report with the break set, the value domain, the axis
// ticks and the color legend, ready for a renderer to draw.
//
// # Usage
//
//	chartscale [-config chartscale.yaml] [-o report.json] -data dataset.json
//
// With no -config, five classes, five ticks and the Blues palette are
// used. The report goes to standard output unless -o is given.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aclements/go-chartscale/breaks"
	"github.com/aclements/go-chartscale/internal/config"
	"github.com/aclements/go-chartscale/internal/dataset"
	"github.com/cockroachdb/errors"
)

func main() {
	var (
		flagConfig  = flag.String("config", "", "read options from YAML `file`")
		flagData    = flag.String("data", "", "read the dataset from JSON `file`")
		flagOut     = flag.String("o", "", "write the report to `file` instead of stdout")
		flagVerbose = flag.Bool("v", false, "log debug output")
	)
	flag.Parse()
	if flag.NArg() > 0 || *flagData == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *flagVerbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger, *flagConfig, *flagData, *flagOut); err != nil {
		logFailure(logger, os.Stderr, err)
		os.Exit(1)
	}
}

// logFailure logs err and prints any hints attached to it to w.
func logFailure(logger *slog.Logger, w io.Writer, err error) {
	logger.Error("chartscale failed", "err", err.Error())
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintln(w, "hint:", hint)
	}
}

func run(logger *slog.Logger, configPath, dataPath, outPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded config", "path", configPath, "steps", cfg.Steps, "ticks", cfg.Ticks, "palette", cfg.Palette)

	f, err := os.Open(dataPath)
	if err != nil {
		return errors.Wrap(err, "opening dataset")
	}
	defer f.Close()
	ds, err := dataset.Decode(f)
	if err != nil {
		return errors.Wrapf(err, "dataset %s", dataPath)
	}
	logger.Debug("loaded dataset", "kind", ds.Kind(), "rows", len(ds.Data()))

	rep, err := newBuilder(cfg, breaks.NewCache(cfg.CacheTTL)).build(ds)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		out, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "creating report")
		}
		defer out.Close()
		w = out
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return errors.Wrap(err, "writing report")
	}
	logger.Info("wrote report", "kind", rep.Kind, "breaks", len(rep.Breaks), "ticks", len(rep.Ticks))
	return nil
}
