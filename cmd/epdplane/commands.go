// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
	"github.com/crystalfontz/CFAP104212E0-0213/cfap104212e00213"
	"github.com/crystalfontz/CFAP104212E0-0213/preview"
	"github.com/crystalfontz/CFAP104212E0-0213/termview"
)

func outFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "out",
		Aliases:  []string{"o"},
		Usage:    "output file: .h for a C header, .png, .jpg or .bmp for a preview",
		Required: true,
	}
}

func scaleFlag() cli.Flag {
	return &cli.IntFlag{
		Name:  "scale",
		Value: 1,
		Usage: "pixel size of previews",
	}
}

func ditherFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "dither",
		EnvVars: []string{"EPDPLANE_DITHER"},
		Usage:   "use error diffusion instead of the closest colour",
	}
}

func prefixFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "prefix",
		Value: "Image",
		Usage: "name prefix of C tables and plane files",
	}
}

func origin(c *cli.Context) bitplane.Corner {
	return *c.Generic("origin").(*bitplane.Corner)
}

func newFrame(c *cli.Context) (*cfap104212e00213.Frame, error) {
	return cfap104212e00213.NewFrame(&cfap104212e00213.Opts{
		Origin: origin(c),
		Dither: c.Bool("dither"),
	})
}

// readImage returns the planes named by args: nothing for the splash
// screen, a C header, or one .bin file per plane in panel order.
func readImage(args []string) (*bitplane.Image, error) {
	switch {
	case len(args) == 0:
		return cfap104212e00213.Splash()

	case len(args) == 1 && strings.EqualFold(filepath.Ext(args[0]), ".h"):
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()

		h, err := parseHeader(f, cfap104212e00213.Dims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", args[0], err)
		}
		return h.Image, nil

	case len(args) == len(cfap104212e00213.PlaneOrder):
		planes := map[string][]byte{}
		for i, name := range cfap104212e00213.PlaneOrder {
			data, err := os.ReadFile(args[i])
			if err != nil {
				return nil, err
			}
			planes[name] = data
		}
		return bitplane.ComposePlanes(planes, cfap104212e00213.Dims)
	}

	return nil, fmt.Errorf("expected a .h file or %d .bin files (%s), got %d arguments",
		len(cfap104212e00213.PlaneOrder), strings.Join(cfap104212e00213.PlaneOrder, ", "), len(args))
}

// writeImage stores img in the format selected by the extension of path.
func writeImage(c *cli.Context, img *bitplane.Image, path string) error {
	ext := filepath.Ext(path)
	isHeader := strings.EqualFold(ext, ".h")

	var format preview.ImageFormat
	if !isHeader {
		var err error
		if format, err = preview.ImageFormatFromString(ext); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if isHeader {
		err = writeHeader(f, &header{
			Prefix: c.String("prefix"),
			Source: c.Args().First(),
			Order:  cfap104212e00213.PlaneOrder,
			Image:  img,
		})
	} else {
		err = writePreview(c, img, f, format)
	}

	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	slog.Info("wrote", "file", path, "image", img)
	return nil
}

func writePreview(c *cli.Context, img *bitplane.Image, f *os.File, format preview.ImageFormat) error {
	frame, err := newFrame(c)
	if err != nil {
		return err
	}
	if err := frame.Load(img); err != nil {
		return err
	}

	return preview.Encode(f, frame, &preview.Options{Format: format, Scale: c.Int("scale")})
}

func exit(err error) error {
	if err == nil {
		return nil
	}
	return cli.Exit(err, 1)
}

func encodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Convert an image to panel planes",
		ArgsUsage: "IMAGE",
		Flags: []cli.Flag{
			outFlag(),
			ditherFlag(),
			prefixFlag(),
			&cli.BoolFlag{
				Name:  "bin",
				Usage: "write one .bin file per plane into the --out directory instead",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return exit(errors.New("encode: expected one image"))
			}

			src, err := loadImage(c.Args().First())
			if err != nil {
				return exit(err)
			}

			f, err := newFrame(c)
			if err != nil {
				return exit(err)
			}
			slog.Debug("encoding", "file", c.Args().First(), "size", src.Bounds().Size(), "frame", f)

			if err := f.Draw(f.Bounds(), fit(src, f.Bounds()), image.Point{}); err != nil {
				return exit(err)
			}

			if c.Bool("bin") {
				if err := os.MkdirAll(c.String("out"), 0o755); err != nil {
					return exit(err)
				}
				return exit(f.Send(&fileSink{dir: c.String("out"), prefix: c.String("prefix")}))
			}

			img, err := f.Planes()
			if err != nil {
				return exit(err)
			}
			return exit(writeImage(c, img, c.String("out")))
		},
	}
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "Convert panel planes to a header or a preview",
		Description: "Without arguments the built-in splash screen is used.",
		ArgsUsage:   "[HEADER | MONO.bin YELLOW.bin]",
		Flags:       []cli.Flag{outFlag(), scaleFlag(), prefixFlag()},
		Action: func(c *cli.Context) error {
			img, err := readImage(c.Args().Slice())
			if err != nil {
				return exit(err)
			}
			return exit(writeImage(c, img, c.String("out")))
		},
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print panel planes on the terminal",
		ArgsUsage: "[HEADER | MONO.bin YELLOW.bin]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "ascii",
				Usage: "print characters instead of colours",
			},
		},
		Action: func(c *cli.Context) error {
			img, err := readImage(c.Args().Slice())
			if err != nil {
				return exit(err)
			}

			frame, err := newFrame(c)
			if err != nil {
				return exit(err)
			}
			if err := frame.Load(img); err != nil {
				return exit(err)
			}

			opts := &termview.Opts{
				Width:  frame.Bounds().Dx(),
				Height: frame.Bounds().Dy(),
				ASCII:  c.Bool("ascii"),
			}
			if c.App.Writer != os.Stdout {
				opts.W = c.App.Writer
			}
			dev := termview.New(opts)

			if err := dev.Draw(dev.Bounds(), frame, image.Point{}); err != nil {
				return exit(err)
			}
			return exit(dev.Halt())
		},
	}
}

func splashCommand() *cli.Command {
	return &cli.Command{
		Name:  "splash",
		Usage: "Export the built-in splash screen",
		Flags: []cli.Flag{outFlag(), scaleFlag(), prefixFlag()},
		Action: func(c *cli.Context) error {
			img, err := cfap104212e00213.Splash()
			if err != nil {
				return exit(err)
			}
			return exit(writeImage(c, img, c.String("out")))
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render a line of text in a yellow frame",
		ArgsUsage: "TEXT",
		Flags: []cli.Flag{
			outFlag(),
			scaleFlag(),
			prefixFlag(),
			ditherFlag(),
			&cli.Float64Flag{
				Name:  "size",
				Value: 16,
				Usage: "font size in points",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return exit(errors.New("render: expected one line of text"))
			}

			f, err := newFrame(c)
			if err != nil {
				return exit(err)
			}

			m, err := renderText(f.Bounds(), c.Args().First(), c.Float64("size"))
			if err != nil {
				return exit(err)
			}
			if err := f.Draw(f.Bounds(), m, image.Point{}); err != nil {
				return exit(err)
			}

			img, err := f.Planes()
			if err != nil {
				return exit(err)
			}
			return exit(writeImage(c, img, c.String("out")))
		},
	}
}

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Write the tables of a C header to .bin files",
		ArgsUsage: "HEADER",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Value:   ".",
				Usage:   "output directory",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return exit(errors.New("extract: expected one header"))
			}

			f, err := os.Open(c.Args().First())
			if err != nil {
				return exit(err)
			}
			defer f.Close()

			h, err := parseHeader(f, cfap104212e00213.Dims)
			if err != nil {
				return exit(fmt.Errorf("%s: %w", c.Args().First(), err))
			}

			if err := os.MkdirAll(c.String("out"), 0o755); err != nil {
				return exit(err)
			}

			s := &fileSink{dir: c.String("out"), prefix: h.Prefix}
			if err := bitplane.Send(s, h.Image, h.Order...); err != nil {
				return exit(err)
			}

			slog.Info("extracted", "header", c.Args().First(), "files", s.written)
			return nil
		},
	}
}
