//go:build !tinygo

// Command lumen-dl works with display-list update messages on the host:
// it can emit a sample update for transport testing and dump a captured
// one back into readable form.
package main

import (
	"flag"
	"fmt"
	"os"

	"tinygo.org/x/tinyfont/proggy"

	"lumen/fonts"
	"lumen/proto"
	"lumen/scene"
)

func main() {
	var emitPath string
	var dumpPath string
	flag.StringVar(&emitPath, "emit", "", "Write a sample update message to this path.")
	flag.StringVar(&dumpPath, "dump", "", "Read an update message from this path and print its items.")
	flag.Parse()

	if emitPath == "" && dumpPath == "" {
		fmt.Fprintln(os.Stderr, "error: one of -emit or -dump is required")
		os.Exit(2)
	}

	if err := run(emitPath, dumpPath); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// The tool and a device agree on font ids out of band; id 1 is the
// built-in 8-bit cell font derived from proggy.
const builtinFontID = 1

func builtinFont() (*scene.Font, error) {
	return fonts.Fixed(&proggy.TinySZ8pt7b, ' ', '~')
}

func run(emitPath, dumpPath string) error {
	font, err := builtinFont()
	if err != nil {
		return err
	}

	if emitPath != "" {
		list := sampleList(font)
		msg := proto.EncodeUpdate(list, func(*scene.Font) (uint8, bool) {
			return builtinFontID, true
		})
		if err := os.WriteFile(emitPath, msg, 0o644); err != nil {
			return fmt.Errorf("write %q: %w", emitPath, err)
		}
		fmt.Printf("wrote %d bytes, %d items\n", len(msg), len(list))
	}

	if dumpPath != "" {
		msg, err := os.ReadFile(dumpPath)
		if err != nil {
			return fmt.Errorf("read %q: %w", dumpPath, err)
		}
		list, degraded, err := proto.DecodeUpdate(msg, func(id uint8) *scene.Font {
			if id == builtinFontID {
				return font
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("decode %q: %w", dumpPath, err)
		}
		dump(list, degraded)
	}

	return nil
}

func sampleList(font *scene.Font) scene.List {
	pix := make([]byte, 4*4*4)
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0xFF
	}
	img, err := scene.NewImage(10, 10, scene.Bg(0x000000), 4, 4, pix)
	if err != nil {
		panic(err)
	}

	return scene.List{
		&scene.Text{X: 4, Y: 4, Color: 0xFFFFFF, Background: scene.Transparent, Font: font, Text: "hello"},
		img,
		&scene.Rect{X: 0, Y: 0, W: 64, H: 32, Color: 0x2040A0},
	}
}

func dump(list scene.List, degraded int) {
	for i, it := range list {
		x, y, w, h := it.Bounds()
		switch v := it.(type) {
		case *scene.Rect:
			fmt.Printf("%3d rect   %4d,%-4d %dx%d color %06X\n", i, x, y, w, h, uint32(v.Color))
		case *scene.Text:
			fmt.Printf("%3d text   %4d,%-4d %dx%d %q\n", i, x, y, w, h, v.Text)
		case *scene.Image:
			fmt.Printf("%3d image  %4d,%-4d %dx%d\n", i, x, y, w, h)
		case *scene.ScaledImage:
			fmt.Printf("%3d scaled %4d,%-4d %dx%d x%d,x%d\n", i, x, y, w, h, v.XScale, v.YScale)
		default:
			fmt.Printf("%3d inert\n", i)
		}
	}
	if degraded > 0 {
		fmt.Printf("%d item(s) degraded\n", degraded)
	}
}
