package model

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-engine/rules"
)

// ExportImage writes alive or dead into dst for every cell; dst is row-major with width*height entries
func (e *Engine) ExportImage(dst []color.RGBA, alive, dead color.RGBA) error {
	if len(dst) != len(e.cells) {
		return errors.Wrapf(ErrInvalidParameter, "[ExportImage] buffer holds %d pixels, grid has %d",
			len(dst), len(e.cells))
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	parallelFor(e.MaxParallelism(), 0, len(e.cells), 1, func(_, lo, hi int) {
		for i, state := range e.cells[lo:hi] {
			if state == rules.Alive {
				dst[lo+i] = alive
			} else {
				dst[lo+i] = dead
			}
		}
	})
	return nil
}

// Image renders the grid into a new RGBA image, one pixel per cell
func (e *Engine) Image(alive, dead color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, e.width, e.height))
	palette := [2][4]byte{
		rules.Dead:  {dead.R, dead.G, dead.B, dead.A},
		rules.Alive: {alive.R, alive.G, alive.B, alive.A},
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	// a fresh image has Stride == 4*width, so cell i maps to Pix[4*i:4*i+4]
	parallelFor(e.MaxParallelism(), 0, len(e.cells), 1, func(_, lo, hi int) {
		for i, state := range e.cells[lo:hi] {
			copy(img.Pix[4*(lo+i):], palette[state][:])
		}
	})
	return img
}
