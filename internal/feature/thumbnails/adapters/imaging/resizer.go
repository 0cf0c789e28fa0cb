// Package imaging implements image resizing for thumbnail renditions.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"math"

	"golang.org/x/image/draw"

	"github.com/AdetokunAdenike/alx-files-manager/internal/feature/thumbnails/usecase"
)

// resizer scales images to a target width, preserving the aspect ratio
// and re-encoding in the source format.
type resizer struct{}

// Compile-time check that resizer satisfies the pipeline's Resizer interface.
var _ usecase.Resizer = (*resizer)(nil)

// NewResizer creates a new resizer instance.
func NewResizer() *resizer {
	return &resizer{}
}

// Resize decodes data, scales it to the given width and re-encodes it.
// PNG and JPEG sources are supported; the output format matches the input.
func (*resizer) Resize(data []byte, width int) ([]byte, error) {
	if width <= 0 {
		return nil, fmt.Errorf("invalid width %d", width)
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, errors.New("image has no pixels")
	}

	height := int(math.Round(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		err = png.Encode(&buf, dst)
	case "jpeg":
		err = jpeg.Encode(&buf, dst, nil)
	default:
		return nil, fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
