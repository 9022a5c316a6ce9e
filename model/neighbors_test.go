package model

import (
	"math/rand/v2"
	"testing"

	"github.com/sheikhrachel/go-life-engine/rules"
)

// randomCells returns a width*height buffer with a dead border and random interior
func randomCells(width, height int, seed uint64) []byte {
	rng := rand.New(rand.NewPCG(seed, 0))
	cells := make([]byte, width*height)
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			if rng.IntN(2) == 1 {
				cells[y*width+x] = rules.Alive
			}
		}
	}
	return cells
}

func TestBatchMatchesScalar(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {8, 8}, {9, 5}, {13, 31}, {64, 17}, {100, 100}} {
		w, h := dims[0], dims[1]
		cells := randomCells(w, h, uint64(w*h))
		from, to := counterRange(w, h)

		batched := make([]byte, w*h)
		countNeighbors(cells, batched, w, from, to)

		scalar := make([]byte, w*h)
		offsets := neighborOffsets(w)
		for i := from; i < to; i++ {
			accumulateScalar(scalar, cells, i, &offsets)
		}

		for i := range batched {
			if batched[i] != scalar[i] {
				t.Fatalf("%dx%d index %d: batched=%d scalar=%d", w, h, i, batched[i], scalar[i])
			}
		}
	}
}

func TestCountNeighborsZeroesStaleScratch(t *testing.T) {
	const w, h = 20, 10
	cells := randomCells(w, h, 5)
	from, to := counterRange(w, h)

	fresh := make([]byte, w*h)
	countNeighbors(cells, fresh, w, from, to)

	stale := make([]byte, w*h)
	for i := range stale {
		stale[i] = 7
	}
	countNeighbors(cells, stale, w, from, to)

	for i := from; i < to; i++ {
		if stale[i] != fresh[i] {
			t.Fatalf("index %d: got=%d want=%d", i, stale[i], fresh[i])
		}
	}
}

func TestCountNeighborsFullLanes(t *testing.T) {
	// every interior neighbor alive drives interior lanes to 8 without carrying
	const w, h = 18, 6
	cells := make([]byte, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			cells[y*w+x] = rules.Alive
		}
	}
	scratch := make([]byte, w*h)
	from, to := counterRange(w, h)
	countNeighbors(cells, scratch, w, from, to)

	for y := 2; y < h-2; y++ {
		for x := 2; x < w-2; x++ {
			if got := scratch[y*w+x]; got != 8 {
				t.Fatalf("cell (%d,%d): got=%d want=8", x, y, got)
			}
		}
	}
}

// Row-edge reads must only ever reach the opposite border column, whatever the batch width.
func TestRowEdgeReadsStayInBorderColumns(t *testing.T) {
	const w, h = 11, 9
	offsets := neighborOffsets(w)
	from, to := counterRange(w, h)

	for i := from; i < to; i++ {
		x, y := i%w, i/w
		for _, off := range offsets {
			nx, ny := (i+off)%w, (i+off)/w
			dx, dy := nx-x, ny-y
			if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
				continue
			}
			if x != 0 && x != w-1 {
				t.Fatalf("interior cell (%d,%d) reads across the row edge at (%d,%d)", x, y, nx, ny)
			}
			if nx != 0 && nx != w-1 {
				t.Fatalf("edge cell (%d,%d) reads non-border cell (%d,%d)", x, y, nx, ny)
			}
		}
	}
}

func TestSanitizeBorderCountsKilled(t *testing.T) {
	const w, h = 5, 4
	cells := make([]byte, w*h)
	cells[1*w] = rules.Alive
	cells[2*w+w-1] = rules.Alive
	cells[2*w+2] = rules.Alive

	if got := sanitizeBorder(cells, w, 1, h-1); got != 2 {
		t.Fatalf("unexpected killed count: got=%d want=2", got)
	}
	if cells[1*w] != rules.Dead || cells[2*w+w-1] != rules.Dead {
		t.Fatalf("border cells should be dead")
	}
	if cells[2*w+2] != rules.Alive {
		t.Fatalf("interior cell must not be touched")
	}
}

func TestApplyTransitionsTally(t *testing.T) {
	cells := []byte{1, 1, 0, 0, 1}
	scratch := []byte{2, 3, 3, 2, 8}
	if got := applyTransitions(cells, scratch, 0, len(cells)); got != 3 {
		t.Fatalf("unexpected live tally: got=%d want=3", got)
	}
	want := []byte{1, 1, 1, 0, 0}
	for i := range want {
		if cells[i] != want[i] {
			t.Fatalf("index %d: got=%d want=%d", i, cells[i], want[i])
		}
	}
}
