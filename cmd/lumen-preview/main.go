//go:build !tinygo

// Command lumen-preview renders a demo display list into a desktop window.
// It drives the same scanline pipeline the panel drivers use, so what the
// window shows is what a 565 panel would receive.
package main

import (
	"flag"
	"fmt"
	"os"

	"tinygo.org/x/tinyfont/proggy"

	"lumen/fonts"
	"lumen/hal"
	"lumen/raster"
	"lumen/scene"
)

func main() {
	var width, height int
	flag.IntVar(&width, "width", 240, "Panel width in pixels.")
	flag.IntVar(&height, "height", 320, "Panel height in pixels.")
	flag.Parse()

	if err := run(width, height); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type stderrLog struct{}

func (stderrLog) WriteLineString(s string) { fmt.Fprintln(os.Stderr, s) }

func run(width, height int) error {
	panel := hal.NewPreview(width, height)
	pl, err := raster.NewPipeline(panel.Profile(), panel)
	if err != nil {
		return err
	}
	pl.SetLogger(stderrLog{})

	font, err := fonts.Fixed(&proggy.TinySZ8pt7b, ' ', '~')
	if err != nil {
		return err
	}

	sprite := checkerSprite(8, 8)
	banner, err := fonts.Render("lumen", &proggy.TinySZ8pt7b, 0xFFFFFF, 12, 12)
	if err != nil {
		return err
	}

	tick := 0
	return panel.Run(func() error {
		tick++
		bx := (tick * 2) % (width + 60)

		list := scene.List{
			banner,
			&scene.Text{
				X: 12, Y: height - 24,
				Color:      0x00FF00,
				Background: scene.Transparent,
				Font:       font,
				Text:       "scanline compositor demo",
			},
			sprite(bx-60, height/2),
			&scene.Rect{X: width / 4, Y: height / 4, W: width / 2, H: height / 2, Color: 0x2040A0},
			&scene.Rect{X: 0, Y: 0, W: width, H: height, Color: 0x101010},
		}

		return pl.Render(list)
	})
}

// checkerSprite returns a builder for a magnified two-color checker tile.
func checkerSprite(srcW, srcH int) func(x, y int) *scene.ScaledImage {
	pix := make([]byte, srcW*srcH*4)
	for yy := 0; yy < srcH; yy++ {
		for xx := 0; xx < srcW; xx++ {
			off := (yy*srcW + xx) * 4
			if (xx+yy)%2 == 0 {
				pix[off], pix[off+1], pix[off+2], pix[off+3] = 0xFF, 0xC0, 0x00, 0xFF
			} else {
				pix[off+3] = 0x00
			}
		}
	}
	return func(x, y int) *scene.ScaledImage {
		s, err := scene.NewScaledImage(x, y, srcW*4, srcH*4, scene.Transparent, 0, 0, 4, 4, srcW, srcH, pix)
		if err != nil {
			panic(err)
		}
		return s
	}
}
