// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// epdplane converts images to and from the packed planes of the Crystalfontz
// CFAP104212E0-0213 black/white/yellow e-paper panel.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	origin := bitplane.TopLeft

	app := cli.NewApp()

	app.Name = "epdplane"
	app.Usage = "CFAP104212E0-0213 e-paper plane converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"EPDPLANE_VERBOSE"},
			Usage:   "increase verbosity",
		},
		&cli.GenericFlag{
			Name:    "origin",
			EnvVars: []string{"EPDPLANE_ORIGIN"},
			Value:   &origin,
			Usage:   "corner of the panel used as the image origin: top-left, top-right, bottom-right or bottom-left",
		},
	}

	app.Before = func(c *cli.Context) error {
		level := slog.LevelInfo
		if c.Bool("verbose") {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))
		return nil
	}

	app.Commands = []*cli.Command{
		encodeCommand(),
		decodeCommand(),
		showCommand(),
		splashCommand(),
		renderCommand(),
		extractCommand(),
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
