package videoslider

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Frame is the clip geometry derived from a normalized position: the
// secondary surface is visible on [ClipX, right edge] and the handle
// sits at HandleX. Purely a translation of the position; the compositor
// adds no logic of its own.
type Frame struct {
	HandleX float64 // pixel position of the draggable handle
	ClipX   float64 // leftmost visible pixel of the secondary surface
	Reveal  float64 // fraction of the secondary surface exposed
}

// Layout translates a normalized position into clip geometry for the
// given content rect and container width.
func Layout(p float64, r Rect, containerWidth float64) Frame {
	x := NormalizedToPixel(ClampPosition(p), r, containerWidth)
	return Frame{
		HandleX: x,
		ClipX:   x,
		Reveal:  RoundPosition(1 - ClampPosition(p)),
	}
}

// CompositorConfig defines the visual parameters of rendered composites.
type CompositorConfig struct {
	Width       int        // Output width in pixels
	Height      int        // Output height in pixels
	SliderColor color.RGBA // Divider line color
	Background  color.RGBA // Backdrop behind undersized surfaces
	Placeholder color.RGBA // Fill used when a surface is missing
}

// DefaultCompositorConfig returns a 640x360 composite with a white
// divider on a black backdrop.
func DefaultCompositorConfig() CompositorConfig {
	return CompositorConfig{
		Width:       640,
		Height:      360,
		SliderColor: color.RGBA{255, 255, 255, 255},
		Background:  color.RGBA{0, 0, 0, 255},
		Placeholder: color.RGBA{24, 24, 24, 255},
	}
}

// RevealCompositor renders two stacked media surfaces split at a
// normalized position: the primary surface fills the output, the
// secondary is drawn only right of the boundary, and the divider line
// lands on the boundary itself. A missing surface renders as a
// placeholder fill rather than an error.
type RevealCompositor struct {
	config CompositorConfig
	font   font.Face
	frame  *image.RGBA
}

// NewRevealCompositor creates a compositor with the given configuration.
func NewRevealCompositor(config CompositorConfig) *RevealCompositor {
	return &RevealCompositor{
		config: config,
		font:   basicfont.Face7x13,
	}
}

// Render composites the two surfaces at the given normalized position
// and returns the result. The composite is retained for CaptureFrame.
func (rc *RevealCompositor) Render(primary, secondary image.Image, position float64) *image.RGBA {
	w, h := rc.config.Width, rc.config.Height
	out := image.NewRGBA(image.Rect(0, 0, w, h))

	rc.fill(out, out.Bounds(), rc.config.Background)

	if primary != nil {
		xdraw.ApproxBiLinear.Scale(out, out.Bounds(), primary, primary.Bounds(), xdraw.Src, nil)
	} else {
		rc.fill(out, out.Bounds(), rc.config.Placeholder)
	}

	p := ClampPosition(position)
	boundary := int(math.Round(p * float64(w)))

	if boundary < w {
		dr := image.Rect(boundary, 0, w, h)
		if secondary != nil {
			// Scale only the exposed horizontal slice of the source so
			// both surfaces stay spatially aligned across the boundary.
			sb := secondary.Bounds()
			srcX := sb.Min.X + int(math.Round(p*float64(sb.Dx())))
			if srcX < sb.Max.X {
				sr := image.Rect(srcX, sb.Min.Y, sb.Max.X, sb.Max.Y)
				xdraw.ApproxBiLinear.Scale(out, dr, secondary, sr, xdraw.Src, nil)
			}
		} else {
			rc.fill(out, dr, rc.config.Placeholder)
		}
	}

	rc.drawDivider(out, boundary)
	rc.drawLabel(out, fmt.Sprintf("%.5f", p))

	rc.frame = out
	return out
}

// Frame returns the most recent composite, or nil before the first Render.
func (rc *RevealCompositor) Frame() *image.RGBA {
	return rc.frame
}

// CaptureFrame writes the most recent composite to a PNG file.
func (rc *RevealCompositor) CaptureFrame(filename string) error {
	if rc.frame == nil {
		return fmt.Errorf("no frame rendered yet")
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, rc.frame)
}

func (rc *RevealCompositor) fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// drawDivider paints a two-pixel divider column at the boundary.
func (rc *RevealCompositor) drawDivider(img *image.RGBA, boundary int) {
	w, h := rc.config.Width, rc.config.Height
	left := boundary - 1
	if left < 0 {
		left = 0
	}
	right := left + 2
	if right > w {
		right = w
		left = w - 2
		if left < 0 {
			left = 0
		}
	}
	for y := 0; y < h; y++ {
		for x := left; x < right; x++ {
			img.SetRGBA(x, y, rc.config.SliderColor)
		}
	}
}

// drawLabel renders the position readout in the bottom-left corner.
func (rc *RevealCompositor) drawLabel(img *image.RGBA, text string) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(rc.config.SliderColor),
		Face: rc.font,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(4 << 6),
			Y: fixed.Int26_6((rc.config.Height - 4) << 6),
		},
	}
	drawer.DrawString(text)
}
