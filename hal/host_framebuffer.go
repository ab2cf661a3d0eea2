package hal

import (
	"image"
	"image/color"
	"sync"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/draw"
)

// RGBAFramebuffer is an in-memory Framebuffer. Lines are stroked with draw2d so the
// requested width is honoured.
type RGBAFramebuffer struct {
	mu   sync.Mutex
	img  *image.RGBA
	gc   *draw2dimg.GraphicContext
	lost bool

	presents uint64
}

func NewFramebuffer(w, h int) *RGBAFramebuffer {
	f := &RGBAFramebuffer{}
	f.alloc(w, h)
	return f
}

func (f *RGBAFramebuffer) alloc(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	f.img = image.NewRGBA(image.Rect(0, 0, w, h))
	f.gc = draw2dimg.NewGraphicContext(f.img)
	f.gc.SetLineCap(draw2d.RoundCap)
}

func (f *RGBAFramebuffer) Size() (w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the pixels; the content is discarded.
func (f *RGBAFramebuffer) Resize(w, h int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return
	}
	f.alloc(w, h)
}

// Release marks the surface as lost. Every later draw call fails with ErrSurfaceLost.
func (f *RGBAFramebuffer) Release() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lost = true
}

func (f *RGBAFramebuffer) Lost() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lost
}

// Presents counts successful Present calls.
func (f *RGBAFramebuffer) Presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

func (f *RGBAFramebuffer) FillRect(x, y, w, h int, c color.RGBA) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lost {
		return ErrSurfaceLost
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	if r.Empty() {
		return nil
	}
	draw.Draw(f.img, r, image.NewUniform(c), image.Point{}, draw.Src)
	return nil
}

func (f *RGBAFramebuffer) StrokeLine(x0, y0, x1, y1 float64, c color.RGBA, width float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lost {
		return ErrSurfaceLost
	}
	gc := f.gc
	gc.SetStrokeColor(c)
	gc.SetLineWidth(width)
	gc.BeginPath()
	gc.MoveTo(x0, y0)
	gc.LineTo(x1, y1)
	gc.Stroke()
	return nil
}

func (f *RGBAFramebuffer) SetPixel(x, y int, c color.RGBA) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lost {
		return
	}
	f.img.SetRGBA(x, y, c)
}

func (f *RGBAFramebuffer) Present() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lost {
		return ErrSurfaceLost
	}
	f.presents++
	return nil
}

func (f *RGBAFramebuffer) Snapshot(dst *image.RGBA) *image.RGBA {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.img.Bounds()
	if dst == nil || dst.Bounds() != b {
		dst = image.NewRGBA(b)
	}
	draw.Copy(dst, image.Point{}, f.img, b, draw.Src, nil)
	return dst
}
