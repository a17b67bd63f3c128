package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/rudovc/ray-tracer/pkg/core"
	"github.com/rudovc/ray-tracer/pkg/geometry"
	"github.com/rudovc/ray-tracer/pkg/renderer"
	"github.com/rudovc/ray-tracer/pkg/scene"
)

const (
	orbitRadius = 6.4 // distance of the orbiting camera from the target
	orbitHeight = 5.0
	orbitSpeed  = 0.5 // radians per second
)

// Game drives the animation: the camera orbits the scene target and every
// frame is re-traced from scratch. Camera relocation happens in Update and
// rendering in Draw, so the two never interleave within a frame.
type Game struct {
	scene    *scene.Scene
	renderer *renderer.Renderer
	frame    *image.RGBA
	start    time.Time
	width    int
	height   int
}

// NewGame builds the default scene: a red unit sphere at the origin on a
// blue background.
func NewGame(width, height int) (*Game, error) {
	s, err := buildScene(width, height)
	if err != nil {
		return nil, err
	}
	return &Game{
		scene:    s,
		renderer: renderer.NewRenderer(width, height),
		frame:    image.NewRGBA(image.Rect(0, 0, width, height)),
		start:    time.Now(),
		width:    width,
		height:   height,
	}, nil
}

func buildScene(width, height int) (*scene.Scene, error) {
	camera := renderer.NewCamera(core.NewVec3(-4, 5, -5), core.Zero, width, height)

	sphere, err := geometry.NewSphere(core.Zero, 1, core.Red)
	if err != nil {
		return nil, fmt.Errorf("building default scene: %w", err)
	}

	return scene.NewScene(camera, core.Blue, sphere), nil
}

// orbitPosition returns the camera position after t seconds of orbiting
func orbitPosition(t float64) core.Vec3 {
	angle := t * orbitSpeed
	return core.NewVec3(orbitRadius*math.Sin(angle), orbitHeight, orbitRadius*math.Cos(angle))
}

// Update relocates the camera for the next frame
func (g *Game) Update() error {
	elapsed := time.Since(g.start).Seconds()
	g.scene.MoveCamera(orbitPosition(elapsed))
	return nil
}

// Draw traces the full pixel grid into the frame buffer and blits it
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.scene, func(x, y int, c core.Color) {
		g.frame.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	})
	screen.WritePixels(g.frame.Pix)
}

// Layout reports the fixed render resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// renderToFile traces a single frame and saves it as a timestamped PNG
func renderToFile(outputDir string, width, height int) error {
	s, err := buildScene(width, height)
	if err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer.NewRenderer(width, height).Render(s, func(x, y int, c core.Color) {
		img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	})

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("saving PNG: %w", err)
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	width := flag.Int("width", 1024, "Render width in pixels")
	height := flag.Int("height", 768, "Render height in pixels")
	output := flag.String("output", "", "Render a single frame to a PNG under this directory and exit")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		log.Fatalf("Resolution must be positive, got %dx%d", *width, *height)
	}

	if *output != "" {
		if err := renderToFile(*output, *width, *height); err != nil {
			log.Fatal(err)
		}
		return
	}

	game, err := NewGame(*width, *height)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Ray Tracer")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
