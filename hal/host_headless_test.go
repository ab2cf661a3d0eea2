package hal

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRunHeadlessTickLimit(t *testing.T) {
	steps := 0
	pumped := 0
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		var tick func()
		tick = func() {
			pumped++
			h.Frames().RequestFrame(tick)
		}
		h.Frames().RequestFrame(tick)
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Width: 32, Height: 16, Hz: 1000, Ticks: 5})
	if err != nil {
		t.Fatalf("RunHeadless() = %v", err)
	}
	if steps != 5 || pumped != 5 {
		t.Fatalf("steps = %d, pumped = %d, want 5 and 5", steps, pumped)
	}
}

func TestRunHeadlessStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("RunHeadless() = %v, want %v", err, boom)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(h HAL) func() error {
		if w, hh := h.Display().Framebuffer().Size(); w != 640 || hh != 360 {
			t.Errorf("default size = %d×%d, want 640×360", w, hh)
		}
		return nil
	}, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("RunHeadless() = %v, want deadline exceeded", err)
	}
}
