package model

import "github.com/sheikhrachel/go-life-engine/rules"

/*
sanitizeBorder kills the left and right border cells of rows [lo, hi) and returns how
many of them had been set alive by the updater.

Each batch lane sums only its own cell's offsets, so row-edge reads reach at most
one column past the edge and a one-cell border is enough for any batch width.
Rows 0 and height-1 are never written by a step.
*/
func sanitizeBorder(cells []byte, width, lo, hi int) (killed int) {
	for j := lo; j < hi; j++ {
		left, right := j*width, j*width+width-1
		killed += int(cells[left]) + int(cells[right])
		cells[left], cells[right] = rules.Dead, rules.Dead
	}
	return
}
