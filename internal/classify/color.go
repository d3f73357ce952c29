package classify

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit color sample with alpha ignored
type RGB struct {
	R, G, B int
}

// String formats the sample as rgb(r, g, b)
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the #rrggbb form of the sample
func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// DistanceSquared returns the squared Euclidean distance between two samples
func (c RGB) DistanceSquared(o RGB) int {
	dr := c.R - o.R
	dg := c.G - o.G
	db := c.B - o.B
	return dr*dr + dg*dg + db*db
}

// MeanColor averages every pixel of img inside region.
// Channels are non-premultiplied 8-bit values and the mean is floored.
func MeanColor(img image.Image, region image.Rectangle) (RGB, error) {
	area := region.Intersect(img.Bounds())
	if area.Empty() {
		return RGB{}, fmt.Errorf("region %v lies outside image bounds %v", region, img.Bounds())
	}

	var r, g, b int
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			r += int(px.R)
			g += int(px.G)
			b += int(px.B)
		}
	}

	n := area.Dx() * area.Dy()
	return RGB{R: r / n, G: g / n, B: b / n}, nil
}
