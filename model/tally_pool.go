package model

import "sync"

// tallyPool recycles the per-chunk partial count buffers used by each step
type tallyPool struct {
	pool sync.Pool
}

func newTallyPool() *tallyPool {
	return &tallyPool{
		pool: sync.Pool{
			New: func() interface{} {
				return new([]int)
			},
		},
	}
}

// Get retrieves a zeroed buffer with n slots
func (p *tallyPool) Get(n int) *[]int {
	t := p.pool.Get().(*[]int)
	if cap(*t) < n {
		*t = make([]int, n)
	}
	*t = (*t)[:n]
	clear(*t)
	return t
}

// Put returns a buffer to the pool
func (p *tallyPool) Put(t *[]int) {
	if t == nil {
		return
	}
	p.pool.Put(t)
}

// total sums partial counts after every chunk has joined
func total(partials []int) (sum int) {
	for _, n := range partials {
		sum += n
	}
	return
}
