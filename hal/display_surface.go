package hal

import (
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

type rectFiller interface {
	FillRectangle(x, y, width, height int16, c color.RGBA) error
}

// DisplaySurface draws the wireframe directly on a tinygo display driver. Lines are
// rasterised with Bresenham and a square brush; there is no anti-aliasing.
type DisplaySurface struct {
	d drivers.Displayer
}

func NewDisplaySurface(d drivers.Displayer) *DisplaySurface {
	return &DisplaySurface{d: d}
}

func (s *DisplaySurface) Size() (w, h int) {
	x, y := s.d.Size()
	return int(x), int(y)
}

func (s *DisplaySurface) FillRect(x, y, w, h int, c color.RGBA) error {
	dw, dh := s.Size()
	x0, y0 := clampInt(x, 0, dw), clampInt(y, 0, dh)
	x1, y1 := clampInt(x+w, 0, dw), clampInt(y+h, 0, dh)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	if f, ok := s.d.(rectFiller); ok {
		return f.FillRectangle(int16(x0), int16(y0), int16(x1-x0), int16(y1-y0), c)
	}
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.d.SetPixel(int16(px), int16(py), c)
		}
	}
	return nil
}

func (s *DisplaySurface) StrokeLine(fx0, fy0, fx1, fy1 float64, c color.RGBA, width float64) error {
	w, h := s.Size()
	r := int(width / 2)
	fx0, fy0, fx1, fy1, ok := clipSegment(fx0, fy0, fx1, fy1,
		float64(-r), float64(-r), float64(w+r), float64(h+r))
	if !ok {
		return nil
	}
	x0, y0 := int(math.Round(fx0)), int(math.Round(fy0))
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		s.brush(x0, y0, r, w, h, c)
		if x0 == x1 && y0 == y1 {
			return nil
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// clipSegment trims the segment to the rectangle [minX, maxX]×[minY, maxY] (Liang–Barsky).
// ok is false when nothing is left or an endpoint is not finite.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	for _, v := range [...]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [...][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func (s *DisplaySurface) brush(cx, cy, r, w, h int, c color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := cx - r; x <= cx+r; x++ {
			if x < 0 || x >= w {
				continue
			}
			s.d.SetPixel(int16(x), int16(y), c)
		}
	}
}

// Present pushes the drawn frame to the panel.
func (s *DisplaySurface) Present() error {
	return s.d.Display()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
