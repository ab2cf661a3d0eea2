package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// fbDisplay lets tinygo drivers code (tinyfont) draw on a Framebuffer.
type fbDisplay struct {
	fb Framebuffer
}

// Displayer adapts fb to drivers.Displayer.
func Displayer(fb Framebuffer) drivers.Displayer {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	w, h := d.fb.Size()
	return int16(clampInt(w, 0, 0x7fff)), int16(clampInt(h, 0, 0x7fff))
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	d.fb.SetPixel(int(x), int(y), c)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil {
		return nil
	}
	return d.fb.FillRect(int(x), int(y), int(width), int(height), c)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
