package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil {
		return
	}

	pool.Put(board)
}

// BoardPool for memory efficiency
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, resetting its dimensions
func (p *BoardPool) Get(size Size) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(size)
	return b
}

// Put returns a board to the pool, clearing its state
func (p *BoardPool) Put(b *Board) {
	// Clear the board before returning to pool
	b.Clear()
	p.pool.Put(b)
}
