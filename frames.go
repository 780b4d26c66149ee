package surf

import (
	"fmt"
	"time"
)

// Disposal says what happens to a frame's area once the frame has been
// shown, before the next frame is composed.
type Disposal uint8

const (
	// DisposeNone leaves the frame in place.
	DisposeNone Disposal = iota

	// DisposeBackground restores the frame's area from the base image.
	DisposeBackground

	// DisposePrevious restores the frame's area to what it was before the
	// frame was drawn.
	DisposePrevious
)

// String returns a string representation of the disposal mode.
func (d Disposal) String() string {
	switch d {
	case DisposeNone:
		return "None"
	case DisposeBackground:
		return "Background"
	case DisposePrevious:
		return "Previous"
	default:
		return "Unknown"
	}
}

// Frame is one animation frame: a surface drawn at (X, Y) over the base
// image.
type Frame struct {
	Surface  *Surface
	X, Y     int
	Delay    time.Duration
	Disposal Disposal
}

// AddFrame appends a copy of src, converted to the format of s, as a new
// animation frame and returns its index.
func (s *Surface) AddFrame(src *Surface, x, y int, delay time.Duration, disposal Disposal) (int, error) {
	fs, err := Convert(src, &s.Format)
	if err != nil {
		return 0, fmt.Errorf("surf: add frame: %w", err)
	}
	s.Frames = append(s.Frames, Frame{
		Surface:  fs,
		X:        x,
		Y:        y,
		Delay:    delay,
		Disposal: disposal,
	})
	s.Flags |= FlagAnimated
	return len(s.Frames) - 1, nil
}

// RenderFrame returns a new surface showing the animation at frame n:
// frames 0 through n blitted over a copy of s, with the disposal of each
// earlier frame applied before the next one is drawn.
func (s *Surface) RenderFrame(n int) (*Surface, error) {
	if n < 0 || n >= len(s.Frames) {
		return nil, fmt.Errorf("surf: render frame %d of %d: %w", n, len(s.Frames), ErrFrameIndex)
	}
	canvas, err := s.Dup()
	if err != nil {
		return nil, err
	}
	for _, f := range canvas.Frames {
		f.Surface.Free()
	}
	canvas.Frames = nil
	canvas.Flags &^= FlagAnimated

	var (
		prev     *Frame
		snapshot *Surface
	)
	for i := range n + 1 {
		if prev != nil {
			area := Rect{X: prev.X, Y: prev.Y, Width: prev.Surface.W, Height: prev.Surface.H}
			switch prev.Disposal {
			case DisposeBackground:
				restore(canvas, s, area)
			case DisposePrevious:
				if snapshot != nil {
					restore(canvas, snapshot, area)
				}
			}
		}
		if snapshot != nil {
			snapshot.Free()
			snapshot = nil
		}

		f := &s.Frames[i]
		if f.Disposal == DisposePrevious && i < n {
			if snapshot, err = canvas.Dup(); err != nil {
				canvas.Free()
				return nil, err
			}
		}
		Blit(f.Surface, nil, canvas, f.X, f.Y)
		prev = f
	}
	return canvas, nil
}

// restore copies area from src to the same place in dst. Both surfaces
// share one format and size.
func restore(dst, src *Surface, area Rect) {
	area = area.Intersect(Rect{Width: dst.W, Height: dst.H})
	if area.Empty() {
		return
	}
	blitCopy(src, area, dst, area.X, area.Y)
}
