package model

import "github.com/sheikhrachel/go-life-engine/rules"

// updaterRange covers every row except the first and last
func updaterRange(width, height int) (from, to int) {
	return width, width*height - width
}

// applyTransitions replaces cells[lo:hi] with their next state and returns how many are alive
func applyTransitions(cells, scratch []byte, lo, hi int) (live int) {
	cells, scratch = cells[lo:hi], scratch[lo:hi]
	for i, state := range cells {
		next := rules.Transition(rules.TransitionKey(scratch[i], state))
		cells[i] = next
		live += int(next)
	}
	return
}
