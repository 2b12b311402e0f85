package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jovian/orrery"
	"github.com/jovian/orrery/export"
	"github.com/tdewolff/argp"
)

type Render struct {
	Config      string  `short:"c" desc:"TOML file with layout constants"`
	ArcSteps    int     `name:"arc-steps" desc:"Arc steps of a zero digit around a circle (overrides config)"`
	SpacerSteps int     `name:"spacer-steps" desc:"Spacer steps between digits around a circle (overrides config)"`
	Output      string  `short:"o" default:"orrery" desc:"Output basename, or a filename with extension to write a single file"`
	DPI         float64 `default:"300" desc:"Resolution of raster images"`
	Minify      bool    `desc:"Minify SVG output"`
	Verbose     bool    `short:"v" desc:"Verbose logging"`
	Input       string  `index:"0" desc:"JSON file with body records, primary first"`
}

type Layout struct {
	Config      string `short:"c" desc:"TOML file with layout constants"`
	ArcSteps    int    `name:"arc-steps" desc:"Arc steps of a zero digit around a circle (overrides config)"`
	SpacerSteps int    `name:"spacer-steps" desc:"Spacer steps between digits around a circle (overrides config)"`
	Verbose     bool   `short:"v" desc:"Verbose logging"`
	Input       string `index:"0" desc:"JSON file with body records, primary first"`
}

func main() {
	root := argp.NewCmd(&Render{}, "Binary orbital diagrams of a planet and its moons")
	root.AddCmd(&Layout{}, "layout", "Print the resolved layout without writing images")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Render) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	sys, cfg, err := load(log, cmd.Input, cmd.Config, cmd.ArcSteps, cmd.SpacerSteps)
	if err != nil {
		log.Error("load failed", "input", cmd.Input, "error", err)
		return err
	}

	c, l, err := orrery.Render(sys, cfg)
	if err != nil {
		log.Error("layout failed", "input", cmd.Input, "error", err)
		return err
	}
	log.Debug("layout resolved", "scale", l.Scale, "origin_x", l.OriginX, "origin_y", l.OriginY)

	opts := &export.Options{
		Resolution: export.DPI(cmd.DPI),
		Minify:     cmd.Minify,
	}
	if filepath.Ext(cmd.Output) != "" {
		if err := export.Write(cmd.Output, c, opts); err != nil {
			log.Error("write failed", "error", err)
			return err
		}
		log.Info("written", "file", cmd.Output)
		return nil
	}

	files, err := export.WriteAll(cmd.Output, c, opts)
	for _, file := range files {
		log.Info("written", "file", file)
	}
	if err != nil {
		log.Error("write failed", "error", err)
		return err
	}
	return nil
}

func (cmd *Layout) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	log := newLogger(cmd.Verbose)

	sys, cfg, err := load(log, cmd.Input, cmd.Config, cmd.ArcSteps, cmd.SpacerSteps)
	if err != nil {
		log.Error("load failed", "input", cmd.Input, "error", err)
		return err
	}
	l, err := orrery.Resolve(sys, cfg)
	if err != nil {
		log.Error("layout failed", "input", cmd.Input, "error", err)
		return err
	}

	rec := &orrery.Recorder{}
	orrery.Draw(rec, sys, l)

	fmt.Println("Bodies:", 1+len(sys.Secondaries))
	fmt.Printf("Scale: %g\n", l.Scale)
	fmt.Printf("Origin: %g %g\n", l.OriginX, l.OriginY)
	fmt.Printf("Commands: %d moves, %d lines, %d arcs\n", rec.Count(orrery.MoveToOp), rec.Count(orrery.LineToOp), rec.Count(orrery.ArcOp))
	if b, ok := rec.Bounds(); ok {
		fmt.Printf("Bounds: %g %g %g %g (canvas %g %g %g %g)\n", b.X0, b.Y0, b.X1, b.Y1, -l.Width/2.0, -l.Height/2.0, l.Width/2.0, l.Height/2.0)
	}
	return nil
}

func load(log *slog.Logger, input, config string, arcSteps, spacerSteps int) (*orrery.System, orrery.Config, error) {
	cfg, err := loadConfig(config)
	if err != nil {
		return nil, cfg, err
	}
	if arcSteps != 0 {
		cfg.ArcSteps = arcSteps
	}
	if spacerSteps != 0 {
		cfg.SpacerSteps = spacerSteps
	}

	sys, err := orrery.Load(input)
	if err != nil {
		return nil, cfg, err
	}
	log.Debug("loaded", "input", input, "primary", sys.Primary.String(), "secondaries", len(sys.Secondaries))
	return sys, cfg, nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
