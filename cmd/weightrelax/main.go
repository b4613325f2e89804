// SPDX-License-Identifier: MIT

// Command weightrelax runs one skin-weight relaxation session over a YAML
// scene and prints the smoothed target weights as YAML.
//
//	weightrelax -scene scene.yaml [-config relax.yaml] [-targets 1,2,3] [-out out.yaml] [-v]
package main

import (
	"flag"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/skinrelax/relax"
	"github.com/katalvlaran/skinrelax/weights"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	scenePath := flag.String("scene", "", "path of the YAML scene (points, triangles, weights, locked)")
	configPath := flag.String("config", "", "path of the YAML session config; defaults when empty")
	targetList := flag.String("targets", "", "comma-separated target vertices; every connected vertex when empty")
	outPath := flag.String("out", "", "output file; stdout when empty")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *scenePath == "" {
		logger.Error("missing -scene")
		flag.Usage()
		return 2
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			logger.Error("create output", "error", err)
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := run(*scenePath, *configPath, *targetList, out, logger); err != nil {
		logger.Error("relax failed", "error", err)
		return 1
	}

	return 0
}

func run(scenePath, configPath, targetList string, out io.Writer, logger *slog.Logger) error {
	cfg, err := relax.LoadConfig(configPath)
	if err != nil {
		return err
	}
	sc, err := loadScene(scenePath)
	if err != nil {
		return err
	}
	m, store, err := sc.build()
	if err != nil {
		return err
	}
	targets, err := parseTargets(targetList, m, len(sc.Weights))
	if err != nil {
		return err
	}

	opts := []relax.Option{relax.WithLogger(logger), relax.WithPositions(m)}
	if len(sc.Locked) > 0 {
		opts = append(opts, relax.WithLocks(weights.Locks(sc.Locked)))
	}
	rep, err := relax.Relax(cfg, store, m, targets, opts...)
	if err != nil {
		return err
	}
	logger.Info("relaxed",
		"session", rep.SessionID,
		"targets", len(rep.Targets),
		"reverted", len(rep.Warnings),
		"duration", rep.Duration)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(newResult(rep)); err != nil {
		return err
	}

	return enc.Close()
}
