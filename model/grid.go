package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"math/rand/v2"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-engine/rules"
)

// MinDimension is the smallest width or height that leaves an interior inside the dead border
const MinDimension = 3

/*
Engine simulates a bounded Game of Life grid whose one-cell outer ring is always dead.

Cells live in a flat row-major byte buffer (index = y*width + x). Each Step counts
neighbors into a scratch buffer, applies the transition table in place and then
clears the border, with a barrier between the phases. Mutating methods are
serialized; readers may run concurrently with each other.
*/
type Engine struct {
	width   int
	height  int
	cells   []byte
	scratch []byte

	mu          sync.RWMutex
	parallelism atomic.Int32
	liveCells   atomic.Int64
	generation  atomic.Int64
	tallies     *tallyPool
}

// NewEngine allocates a dead grid with the specified dimensions
func NewEngine(width, height int) (*Engine, error) {
	if width < MinDimension || height < MinDimension {
		return nil, errors.Wrapf(ErrConstruction, "[NewEngine] %dx%d, minimum is %dx%d",
			width, height, MinDimension, MinDimension)
	}
	if width > math.MaxInt/height {
		return nil, errors.Wrapf(ErrConstruction, "[NewEngine] %dx%d overflows the cell buffer", width, height)
	}

	e := &Engine{
		width:   width,
		height:  height,
		cells:   make([]byte, width*height),
		scratch: make([]byte, width*height),
		tallies: newTallyPool(),
	}
	e.parallelism.Store(int32(runtime.NumCPU()))
	return e, nil
}

// GetWidth returns the width of the grid
func (e *Engine) GetWidth() int {
	return e.width
}

// GetHeight returns the height of the grid
func (e *Engine) GetHeight() int {
	return e.height
}

// MaxParallelism returns the number of workers used by the next parallel phase
func (e *Engine) MaxParallelism() int {
	return int(e.parallelism.Load())
}

// SetMaxParallelism bounds the worker count; n <= 0 restores runtime.NumCPU()
func (e *Engine) SetMaxParallelism(n int) {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	e.parallelism.Store(int32(min(n, math.MaxInt32)))
}

/*
LiveCellCount returns the number of live cells left by the most recent Step, or 0 before
the first one. Set, Clear and GenerateRandomField do not change it; use LiveCells for a
fresh count after editing the grid.
*/
func (e *Engine) LiveCellCount() int {
	return int(e.liveCells.Load())
}

// Generation returns the number of steps since construction or the last Clear or random fill
func (e *Engine) Generation() int {
	return int(e.generation.Load())
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.width && y >= 0 && y < e.height
}

func (e *Engine) onBorder(x, y int) bool {
	return x == 0 || y == 0 || x == e.width-1 || y == e.height-1
}

// Get returns the state of a cell
func (e *Engine) Get(x, y int) (bool, error) {
	if !e.inBounds(x, y) {
		return false, errors.Wrapf(ErrOutOfRange, "[Get] (%d,%d) outside %dx%d", x, y, e.width, e.height)
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cells[y*e.width+x] == rules.Alive, nil
}

// Set sets a cell to alive (true) or dead (false). Border cells can only be set dead.
func (e *Engine) Set(x, y int, alive bool) error {
	if !e.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfRange, "[Set] (%d,%d) outside %dx%d", x, y, e.width, e.height)
	}
	if alive && e.onBorder(x, y) {
		return errors.Wrapf(ErrBorderCell, "[Set] (%d,%d) on %dx%d", x, y, e.width, e.height)
	}

	state := rules.Dead
	if alive {
		state = rules.Alive
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.cells[y*e.width+x] = state
	return nil
}

/*
Step advances the grid one generation.

The neighbor counter must finish over the whole grid before the updater touches any
cell, since updates happen in place. Live counts are summed from per-chunk partials
after each phase joins.
*/
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	workers := e.MaxParallelism()

	from, to := counterRange(e.width, e.height)
	parallelFor(workers, from, to, batchWidth, func(_, lo, hi int) {
		countNeighbors(e.cells, e.scratch, e.width, lo, hi)
	})

	from, to = updaterRange(e.width, e.height)
	born := e.reduce(workers, partition(from, to, workers, batchWidth), func(lo, hi int) int {
		return applyTransitions(e.cells, e.scratch, lo, hi)
	})

	killed := e.reduce(workers, partition(1, e.height-1, workers, 1), func(lo, hi int) int {
		return sanitizeBorder(e.cells, e.width, lo, hi)
	})

	e.liveCells.Store(int64(born - killed))
	e.generation.Add(1)
}

// reduce runs fn over spans in parallel and sums the per-chunk results after the join
func (e *Engine) reduce(workers int, spans []span, fn func(lo, hi int) int) int {
	partials := e.tallies.Get(len(spans))
	defer e.tallies.Put(partials)

	runSpans(workers, spans, func(chunk, lo, hi int) {
		(*partials)[chunk] = fn(lo, hi)
	})
	return total(*partials)
}

/*
GenerateRandomField makes every interior cell alive with probability density.

Cells are drawn in row-major order from a PCG stream seeded by seed, so the same seed
and density always produce the same field. The border is left dead.
*/
func (e *Engine) GenerateRandomField(seed uint64, density float64) error {
	if math.IsNaN(density) || density < 0 || density > 1 {
		return errors.Wrapf(ErrInvalidParameter, "[GenerateRandomField] density %v outside [0,1]", density)
	}

	rng := rand.New(rand.NewPCG(seed, seed))

	e.mu.Lock()
	defer e.mu.Unlock()
	for y := 1; y < e.height-1; y++ {
		row := e.cells[y*e.width : (y+1)*e.width]
		for x := 1; x < e.width-1; x++ {
			row[x] = rules.Dead
			if rng.Float64() < density {
				row[x] = rules.Alive
			}
		}
	}
	e.generation.Store(0)
	return nil
}

// Clear kills every interior cell
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for y := 1; y < e.height-1; y++ {
		clear(e.cells[y*e.width+1 : (y+1)*e.width-1])
	}
	e.generation.Store(0)
}

// LiveCells returns the total number of living cells by scanning the grid
func (e *Engine) LiveCells() (count int) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	for _, state := range e.cells {
		count += int(state)
	}
	return
}

// Fingerprint returns an MD5 hash of the current grid state
func (e *Engine) Fingerprint() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return fmt.Sprintf("%x", md5.Sum(e.cells))
}
