// Command blockdemo renders a small stack of block silhouettes to a PNG.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/blockpath/blockpath"
	"github.com/blockpath/blockpath/render"
)

func main() {
	var (
		width   = flag.Int("width", 480, "image width")
		height  = flag.Int("height", 360, "image height")
		scale   = flag.Float64("scale", 1.0, "display scale applied to block geometry")
		config  = flag.String("config", "", "optional TOML layout config file")
		output  = flag.String("output", "blocks.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		blockpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := blockpath.DefaultConfig()
	if *config != "" {
		var err error
		cfg, err = blockpath.LoadConfig(*config)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg = cfg.Scaled(*scale)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Bad layout config: %v", err)
	}

	builder := blockpath.NewOutlineBuilder(cfg)
	canvas := render.NewCanvas(*width, *height)
	canvas.Clear(color.White)

	blocks := []struct {
		x, y  float64
		shape blockpath.BlockShape
		fill  color.RGBA
	}{
		{
			x: 40, y: 40,
			shape: blockpath.BlockShape{
				Width:              200,
				Height:             56,
				PreviousConnection: true,
				NextConnection:     true,
			},
			fill: color.RGBA{R: 0x4a, G: 0x90, B: 0xd9, A: 0xff},
		},
		{
			x: 40, y: 100,
			shape: blockpath.BlockShape{
				Width:              200,
				Height:             72,
				PreviousConnection: true,
				NextConnection:     true,
				InputConnectionYs:  []float64{20},
			},
			fill: color.RGBA{R: 0x8e, G: 0x5c, B: 0xd9, A: 0xff},
		},
		{
			x: 300, y: 110,
			shape: blockpath.BlockShape{
				Width:            120,
				Height:           40,
				OutputConnection: true,
			},
			fill: color.RGBA{R: 0x5c, G: 0xb7, B: 0x22, A: 0xff},
		},
		{
			x: 40, y: 240,
			shape: blockpath.BlockShape{
				Width:              200,
				Height:             48,
				PreviousConnection: true,
				Collapsed:          true,
			},
			fill: color.RGBA{R: 0xd9, G: 0x83, B: 0x1f, A: 0xff},
		},
	}

	outline := color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	for _, blk := range blocks {
		p := blockpath.NewPath()
		p.MoveTo(blockpath.Pt(blk.x, blk.y), false)
		builder.AddBlockOutline(p, blk.shape)

		canvas.Fill(p, blk.fill)
		canvas.Stroke(p, 1.5, outline)
	}

	if err := canvas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}
