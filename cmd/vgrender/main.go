// seehuhn.de/go/vgcore - a 2D vector graphics core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Vgrender renders YAML scene files to PNG images.
//
// Usage:
//
//	vgrender [-o out.png] [-watch] [-v] scene.yaml
//	vgrender -export dir
//
// With -watch, the scene is rendered again each time the file changes,
// until the program is interrupted.  With -export, the built-in
// rasterizer test cases are written to dir as scene files.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"seehuhn.de/go/vgcore"
	"seehuhn.de/go/vgcore/cmd/vgrender/internal/scene"
)

func main() {
	os.Exit(run())
}

func run() int {
	out := flag.String("o", "", "output file (default: scene name with .png extension)")
	watch := flag.Bool("watch", false, "render again whenever the scene file changes")
	verbose := flag.Bool("v", false, "enable debug logging")
	export := flag.String("export", "", "write the built-in test cases as scene files to this directory")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.yaml\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vgcore.SetLogger(logger)

	if *export != "" {
		n, err := scene.ExportTestCases(*export)
		if err != nil {
			logger.Error("export failed", "error", err)
			return 1
		}
		logger.Info("exported test cases", "count", n, "dir", *export)
		return 0
	}

	if flag.NArg() != 1 {
		flag.Usage()
		return 2
	}
	in := flag.Arg(0)
	if *out == "" {
		*out = strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}

	render := func() error {
		return renderFile(in, *out)
	}
	if err := render(); err != nil {
		logger.Error("render failed", "error", err)
		if !*watch {
			return 1
		}
	} else {
		logger.Info("rendered", "scene", in, "output", *out)
	}
	if !*watch {
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("watching for changes", "scene", in)
	err := scene.Watch(ctx, in, scene.DefaultDebounce,
		func() error {
			if err := render(); err != nil {
				return err
			}
			logger.Info("rendered", "scene", in, "output", *out)
			return nil
		},
		func(err error) {
			logger.Error("render failed", "error", err)
		})
	if err != nil {
		logger.Error("watch failed", "error", err)
		return 1
	}
	return 0
}

// renderFile renders the scene in fname and writes it to out as a PNG
// image.  The output file is replaced atomically.
func renderFile(fname, out string) error {
	s, err := scene.Load(fname)
	if err != nil {
		return err
	}
	cv, err := s.Render()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(out), ".vgrender-*.png")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, cv.Surface()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode %s: %w", out, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), out)
}
