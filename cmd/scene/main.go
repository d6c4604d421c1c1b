package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"still-life/internal/commands"
	"still-life/internal/config"
	"still-life/internal/env"
	"still-life/internal/logger"
	"still-life/internal/scene"
)

func main() {
	log := logger.New()
	if _, err := env.Load(".env"); err != nil {
		log.Logf("env: %v", err)
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Logf("config: %v (using defaults)", err)
	}
	cfg.ApplyEnv()

	reg := newRegistry(cfg, log, os.Stdout)
	if err := reg.Execute(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "commands:")
		reg.Usage(os.Stderr)
		os.Exit(1)
	}
}

// newRegistry registers the scene subcommands. Headless commands write their report to out
// and mirror the log to stderr.
func newRegistry(cfg config.Config, log *logger.Logger, out io.Writer) *commands.Registry {
	reg := commands.NewRegistry()

	runFlags := flag.NewFlagSet("run", flag.ContinueOnError)
	runAxis := runFlags.Bool("axis", cfg.ShowAxis, "draw the axis reference")
	runGrid := runFlags.Bool("grid", cfg.ShowGrid, "draw the ground grid")
	fullscreen := runFlags.Bool("fullscreen", cfg.Window.Fullscreen, "open a fullscreen window")
	reg.Register("run", "open a window and render the scene", runFlags, func() error {
		c := cfg.Clone()
		c.ShowAxis, c.ShowGrid, c.Window.Fullscreen = *runAxis, *runGrid, *fullscreen
		return run(c, log)
	})

	listFlags := flag.NewFlagSet("list", flag.ContinueOnError)
	listAxis := listFlags.Bool("axis", cfg.ShowAxis, "include the axis reference")
	reg.Register("list", "print every render item per object", listFlags, func() error {
		return list(out, *listAxis)
	})

	traceFlags := flag.NewFlagSet("trace", flag.ContinueOnError)
	traceAxis := traceFlags.Bool("axis", cfg.ShowAxis, "include the axis reference")
	withPrepare := traceFlags.Bool("prepare", false, "also print the uploads made while preparing")
	reg.Register("trace", "prepare and render one frame headless, printing uniform uploads and draws", traceFlags, func() error {
		log.SetMirror(os.Stderr)
		c := cfg.Clone()
		c.ShowAxis = *traceAxis
		return trace(out, c, log, *withPrepare)
	})

	reg.SetDefault("run")
	return reg
}

// textureSources resolves the configured texture manifest against the texture directory.
func textureSources(cfg config.Config) []scene.TextureSource {
	src := make([]scene.TextureSource, len(cfg.Textures))
	for i, t := range cfg.Textures {
		src[i] = scene.TextureSource{Tag: t.Tag, Path: cfg.TexturePath(t)}
	}
	return src
}
