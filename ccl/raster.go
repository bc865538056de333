package ccl

import (
	"image"
	"image/color"
)

// Raster adapts a decoded image.Image to Image. A pixel is foreground when
// its gray luminance is strictly above the threshold, so threshold 0 means
// "any non-black pixel". *image.Gray is read straight from Pix.
type Raster struct {
	img       image.Image
	gray      *image.Gray
	bounds    image.Rectangle
	threshold uint8
}

// FromImage wraps img. A nil img yields an empty Raster, which
// ConnectedComponents rejects with ErrEmptyImage.
func FromImage(img image.Image, threshold uint8) *Raster {
	r := &Raster{img: img, threshold: threshold}
	if img == nil {
		return r
	}
	r.bounds = img.Bounds()
	if g, ok := img.(*image.Gray); ok {
		r.gray = g
	}

	return r
}

// Dims returns (height, width) of the image bounds.
func (r *Raster) Dims() (rows, cols int) {
	return r.bounds.Dy(), r.bounds.Dx()
}

// Foreground thresholds the luminance at (row, col) relative to Bounds().Min.
func (r *Raster) Foreground(row, col int) bool {
	x, y := r.bounds.Min.X+col, r.bounds.Min.Y+row
	if r.gray != nil {
		return r.gray.Pix[r.gray.PixOffset(x, y)] > r.threshold
	}
	g := color.GrayModel.Convert(r.img.At(x, y)).(color.Gray)

	return g.Y > r.threshold
}
