package model

import "encoding/binary"

/*
batchWidth is the number of one-byte cells summed by a single uint64 addition.

Each lane starts at zero and receives at most 8 additions of 0 or 1, so no lane
can carry into its neighbor.
*/
const batchWidth = 8

// neighborOffsets lists the eight neighbor index deltas for a row-major grid of the given width
func neighborOffsets(width int) [8]int {
	return [8]int{
		-width - 1, -width, -width + 1,
		-1, +1,
		width - 1, width, width + 1,
	}
}

// counterRange is the index range whose neighbor offsets all stay inside the buffer
func counterRange(width, height int) (from, to int) {
	return width + 1, width*height - width - 1
}

/*
countNeighbors writes live neighbor counts for [lo, hi) into scratch.

Offsets are applied to the flat buffer, so cells in columns 0 and width-1 read
across the row edge into the opposite border column. Those cells are counted
like interior ones and may be born by the updater; sanitizeBorder masks them.
*/
func countNeighbors(cells, scratch []byte, width, lo, hi int) {
	clear(scratch[lo:hi])

	offsets := neighborOffsets(width)
	i := lo
	for ; i+batchWidth <= hi; i += batchWidth {
		accumulateBatch(scratch[i:i+batchWidth], cells, i, &offsets)
	}
	for ; i < hi; i++ {
		accumulateScalar(scratch, cells, i, &offsets)
	}
}

// accumulateBatch adds the neighbors of cells[i:i+8] into dst using one word per offset
func accumulateBatch(dst, cells []byte, i int, offsets *[8]int) {
	sum := binary.LittleEndian.Uint64(dst)
	for _, off := range offsets {
		sum += binary.LittleEndian.Uint64(cells[i+off:])
	}
	binary.LittleEndian.PutUint64(dst, sum)
}

// accumulateScalar is the per-cell fallback for tails shorter than a batch
func accumulateScalar(dst, cells []byte, i int, offsets *[8]int) {
	sum := dst[i]
	for _, off := range offsets {
		sum += cells[i+off]
	}
	dst[i] = sum
}
