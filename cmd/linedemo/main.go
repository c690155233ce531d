// Command linedemo demonstrates the bresenham line walker by plotting
// a starburst of walks onto a PNG image.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/bresenham"
	"golang.org/x/image/draw"
)

func main() {
	var (
		width   = flag.Int("width", 64, "grid width in cells")
		height  = flag.Int("height", 64, "grid height in cells")
		scale   = flag.Int("scale", 8, "output pixels per grid cell")
		output  = flag.String("output", "starburst.png", "output file")
		verbose = flag.Bool("v", false, "log each walk at debug level")
	)
	flag.Parse()

	if *verbose {
		bresenham.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	grid := image.NewRGBA(image.Rect(0, 0, *width, *height))
	drawStarburst(grid, *width, *height)

	// Fatten the unit grid cells so individual walk points stay visible.
	out := image.NewRGBA(image.Rect(0, 0, *width**scale, *height**scale))
	draw.NearestNeighbor.Scale(out, out.Bounds(), grid, grid.Bounds(), draw.Src, nil)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *output, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	log.Printf("Starburst saved to %s (%dx%d cells at %dx)\n", *output, *width, *height, *scale)
}

// drawStarburst walks lines from the grid center to every fourth cell
// on the boundary, marking each produced point.
func drawStarburst(grid *image.RGBA, w, h int) {
	center := bresenham.Pt(w/2, h/2)

	mark := func(start, end bresenham.Point, c color.RGBA) {
		walk := bresenham.WalkInclusive(start, end)
		for p := range walk.Points() {
			grid.SetRGBA(p.X, p.Y, c)
		}
	}

	red := color.RGBA{R: 0xd0, A: 0xff}
	blue := color.RGBA{B: 0xd0, A: 0xff}

	for x := 0; x < w; x += 4 {
		mark(center, bresenham.Pt(x, 0), red)
		mark(center, bresenham.Pt(x, h-1), red)
	}
	for y := 0; y < h; y += 4 {
		mark(center, bresenham.Pt(0, y), blue)
		mark(center, bresenham.Pt(w-1, y), blue)
	}
}
