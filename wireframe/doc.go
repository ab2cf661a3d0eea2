// Package wireframe renders a rotating wireframe shape onto a drawing surface.
//
// It is the decorative background of the club site: a fixed vertex/face model is
// spun about one axis, pushed forward so it stays in front of the eye, projected with
// a plain perspective divide and stroked edge by edge. Every frame clears the whole
// surface and redraws every edge.
//
// Pipeline (fixed):
//
//	Geometry → Rotate → Forward offset → Perspective divide → Screen mapping → Stroke.
//
// The renderer does not own a clock. It asks a Scheduler for one callback per visual
// refresh and re-requests after each frame, so the host decides the pace (a vsync-aligned
// window loop, a headless ticker, or a test pumping frames by hand). Rotation advances by
// a fixed increment per frame; there is no delta-time correction.
package wireframe
