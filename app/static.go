package app

import (
	"strings"

	"clubsite/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var captionFont = &proggy.TinySZ8pt7b

// drawStatic paints the plain background, optionally with a centred caption. It is what
// the page shows before the animation starts and after it stopped. Errors are ignored: a
// lost surface simply shows nothing.
func (b *background) drawStatic(caption string) {
	w, h := b.fb.Size()
	if w <= 0 || h <= 0 {
		return
	}
	opts := b.cfg.Options
	if err := b.fb.FillRect(0, 0, w, h, opts.Background); err != nil {
		return
	}

	caption = strings.TrimSpace(caption)
	if caption != "" {
		d := hal.Displayer(b.fb)
		_, outbox := tinyfont.LineWidth(captionFont, caption)
		x := (w - int(outbox)) / 2
		if x < 0 {
			x = 0
		}
		y := h / 2
		tinyfont.WriteLine(d, captionFont, int16(x), int16(y), caption, opts.Foreground)
	}
	_ = b.fb.Present()
}
