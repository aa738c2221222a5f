package anim

import (
	"errors"
	"fmt"
	"image"
	"time"
)

// Delay resolution of the GIF container
const Centisecond = 10 * time.Millisecond

// MaxDelay is the longest frame delay the 16-bit GIF delay field holds
const MaxDelay = 65535 * Centisecond

var (
	// ErrDelayResolution is returned for durations that are not whole centiseconds or exceed MaxDelay
	ErrDelayResolution = errors.New("duration not representable in centiseconds")
	// ErrNoFrames is returned when encoding an empty sequence
	ErrNoFrames = errors.New("no frames")
)

// Frame is one rasterized image and how long it stays on screen
type Frame struct {
	Image    image.Image
	Duration time.Duration
}

// Delay converts d to GIF centiseconds
func Delay(d time.Duration) (int, error) {
	if d <= 0 {
		return 0, fmt.Errorf("non-positive duration %v", d)
	}
	if d%Centisecond != 0 {
		return 0, fmt.Errorf("%w: %v", ErrDelayResolution, d)
	}
	if d > MaxDelay {
		return 0, fmt.Errorf("%w: %v exceeds %v", ErrDelayResolution, d, MaxDelay)
	}
	return int(d / Centisecond), nil
}

// Total sums frame durations
func Total(frames []Frame) time.Duration {
	var total time.Duration
	for _, f := range frames {
		total += f.Duration
	}
	return total
}
