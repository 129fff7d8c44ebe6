package assets

import (
	"image"
	"image/color"
)

// The placeholders are drawn the same way every call: plain shape fills,
// no randomness, so a fallback run always looks identical.

// CrowPlaceholder draws a stubby crow silhouette: body, head, and beak.
func CrowPlaceholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 128, 128))
	body := color.RGBA{38, 38, 46, 255}
	beak := color.RGBA{228, 168, 50, 255}
	eye := color.RGBA{235, 235, 235, 255}

	fillEllipse(img, 58, 80, 42, 34, body)
	fillEllipse(img, 88, 44, 22, 20, body)
	fillTriangle(img, 106, 40, 126, 46, 106, 52, beak)
	fillEllipse(img, 94, 40, 4, 4, eye)
	return img
}

// TubPlaceholder draws a rounded white tub with a rim and feet.
func TubPlaceholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	shell := color.RGBA{226, 232, 240, 255}
	rim := color.RGBA{200, 208, 220, 255}
	foot := color.RGBA{180, 186, 198, 255}

	fillRect(img, 16, 28, 240, 96, shell)
	fillEllipse(img, 16, 62, 14, 34, shell)
	fillEllipse(img, 240, 62, 14, 34, shell)
	fillRect(img, 10, 24, 246, 34, rim)
	fillRect(img, 40, 96, 56, 116, foot)
	fillRect(img, 200, 96, 216, 116, foot)
	return img
}

// SpongePlaceholder draws a yellow block with a few darker pores.
func SpongePlaceholder() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	block := color.RGBA{250, 208, 90, 255}
	pore := color.RGBA{214, 168, 52, 255}

	fillRect(img, 2, 2, 62, 46, block)
	for _, p := range [][2]int{{12, 12}, {30, 8}, {48, 16}, {20, 30}, {42, 34}, {54, 28}} {
		fillEllipse(img, p[0], p[1], 3, 3, pore)
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

func fillEllipse(img *image.RGBA, cx, cy, rx, ry int, c color.RGBA) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 int, c color.RGBA) {
	minX := min(x0, x1, x2)
	maxX := max(x0, x1, x2)
	minY := min(y0, y1, y2)
	maxY := max(y0, y1, y2)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if inTriangle(float64(x), float64(y), float64(x0), float64(y0), float64(x1), float64(y1), float64(x2), float64(y2)) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

func inTriangle(px, py, x0, y0, x1, y1, x2, y2 float64) bool {
	d0 := edgeSign(px, py, x0, y0, x1, y1)
	d1 := edgeSign(px, py, x1, y1, x2, y2)
	d2 := edgeSign(px, py, x2, y2, x0, y0)

	hasNeg := d0 < 0 || d1 < 0 || d2 < 0
	hasPos := d0 > 0 || d1 > 0 || d2 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}
