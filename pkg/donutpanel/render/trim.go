package render

import (
	"image"
	"image/color"
)

// TrimToContent crops img to the bounding box of pixels that differ from bg
// joined with keep, grown by pad pixels on each side and clamped to the image.
// keep marks an area that counts as content even when it is blank; pass
// image.Rectangle{} for none. An image with no content is returned unchanged.
func TrimToContent(img *image.RGBA, bg color.Color, pad int, keep image.Rectangle) *image.RGBA {
	b := img.Bounds()
	c := color.RGBAModel.Convert(bg).(color.RGBA)

	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		row := img.Pix[off : off+4*b.Dx()]
		for i := 0; i < len(row); i += 4 {
			if row[i] == c.R && row[i+1] == c.G && row[i+2] == c.B && row[i+3] == c.A {
				continue
			}
			x := b.Min.X + i/4
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	var content image.Rectangle
	if maxX >= minX && maxY >= minY {
		content = image.Rect(minX, minY, maxX+1, maxY+1)
	}
	content = content.Union(keep.Intersect(b))
	if content.Empty() {
		return img
	}

	rect := image.Rect(content.Min.X-pad, content.Min.Y-pad, content.Max.X+pad, content.Max.Y+pad).Intersect(b)
	return img.SubImage(rect).(*image.RGBA)
}
