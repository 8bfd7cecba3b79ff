package universe

import "sync"

// bufferPool recycles generation buffers so a long-running simulation stops
// allocating once it is warm. Each Tick takes a scratch buffer from the pool
// and returns the previous generation to it.
type bufferPool struct {
	pool sync.Pool
}

func newBufferPool() *bufferPool {
	return &bufferPool{
		pool: sync.Pool{
			New: func() interface{} {
				return []Cell(nil)
			},
		},
	}
}

// get returns a buffer of length n. Contents are not zeroed; callers
// overwrite every cell.
func (p *bufferPool) get(n int) []Cell {
	buf := p.pool.Get().([]Cell)
	if cap(buf) < n {
		return make([]Cell, n)
	}
	return buf[:n]
}

// put hands a buffer back for reuse.
func (p *bufferPool) put(buf []Cell) {
	p.pool.Put(buf[:0])
}
