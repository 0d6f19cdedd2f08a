package diagram

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Image returns an image w wide and h high, centered on ⟨0, 0⟩. src is passed
// on to the renderer as is.
func Image(src string, w, h float64) *Diagram {
	d := Rectangle(w, h)
	d.kind = ImageKind
	d.image = &ImageData{Src: src}
	return d
}

// ImageFromReader returns an image sized to the intrinsic pixel size of the
// image data in r, one unit per pixel. Only the image header is read. PNG,
// JPEG, GIF, BMP, TIFF and WebP are supported.
func ImageFromReader(src string, r io.Reader) (*Diagram, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return nil, fmt.Errorf("diagram: reading image header: %w", err)
	}
	d := Image(src, float64(cfg.Width), float64(cfg.Height))
	d.image.PixelWidth = cfg.Width
	d.image.PixelHeight = cfg.Height
	return d, nil
}
