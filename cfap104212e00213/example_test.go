// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package cfap104212e00213_test

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/crystalfontz/CFAP104212E0-0213/bitplane"
	"github.com/crystalfontz/CFAP104212E0-0213/cfap104212e00213"
)

func Example() {
	// Landscape, with the connector on the left.
	f, err := cfap104212e00213.NewFrame(&cfap104212e00213.Opts{Origin: bitplane.TopRight})
	if err != nil {
		log.Fatal(err)
	}

	// Yellow text on a white background.
	face := basicfont.Face7x13
	drawer := font.Drawer{
		Dst:  f,
		Src:  &image.Uniform{cfap104212e00213.YellowInk},
		Face: face,
		Dot:  fixed.P(4, f.Bounds().Dy()/2),
	}
	drawer.DrawString("Hello from Go!")

	img, err := f.Planes()
	if err != nil {
		log.Fatal(err)
	}
	for _, name := range cfap104212e00213.PlaneOrder {
		data, _ := img.Plane(name)
		fmt.Println(name, len(data))
	}
	// Output:
	// mono 2756
	// yellow 2756
}
