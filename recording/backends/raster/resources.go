package raster

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/drawlib"
	"github.com/gogpu/drawlib/recording"
)

// LoadResources decodes image files into textures keyed by ID. Loading an
// ID again replaces its texture. Resources survive Begin, so a backend can
// render several stores against the same set.
func (b *Backend) LoadResources(resources []recording.Resource) error {
	for _, res := range resources {
		img, err := recording.DecodeImageFile(res.Filename)
		if err != nil {
			return err
		}
		b.textures[res.ID] = toRGBA(img)
		bounds := img.Bounds()
		drawlib.Logger().Info("raster: loaded texture",
			"id", res.ID, "file", res.Filename, "width", bounds.Dx(), "height", bounds.Dy())
	}
	return nil
}

// UnloadResources releases textures. Unknown IDs are ignored.
func (b *Backend) UnloadResources(ids []string) error {
	for _, id := range ids {
		delete(b.textures, id)
	}
	return nil
}

// HasTexture reports whether a texture is loaded under id.
func (b *Backend) HasTexture(id string) bool {
	_, ok := b.textures[id]
	return ok
}

// toRGBA converts img to an *image.RGBA whose bounds start at the origin.
func toRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && bounds.Min == (image.Point{}) {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Bounds(), img, bounds.Min, draw.Src)
	return out
}
