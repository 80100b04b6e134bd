package recording

import (
	"fmt"
	"image"
	"os"

	"github.com/gogpu/drawlib"

	// Image formats understood by ResourceDimensions and DecodeImageFile.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ResourceDimensions returns the pixel size of an image file without
// decoding its pixels. PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func ResourceDimensions(filename string) (width, height int, err error) {
	// #nosec G304 -- resource file names are provided by the caller
	f, err := os.Open(filename)
	if err != nil {
		return 0, 0, fmt.Errorf("recording: open resource: %w", err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("recording: decode %s: %w", filename, err)
	}
	drawlib.Logger().Debug("recording: resource dimensions",
		"file", filename, "format", format, "width", cfg.Width, "height", cfg.Height)
	return cfg.Width, cfg.Height, nil
}

// DecodeImageFile decodes an image file in any supported format.
func DecodeImageFile(filename string) (image.Image, error) {
	// #nosec G304 -- resource file names are provided by the caller
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("recording: open resource: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("recording: decode %s: %w", filename, err)
	}
	return img, nil
}
