package model

import (
	"bytes"
	"sync"
)

// FramePool recycles the buffers a renderer composes frames into
type FramePool struct {
	pool sync.Pool
}

func NewFramePool() *FramePool {
	return &FramePool{
		pool: sync.Pool{
			New: func() interface{} {
				return new(bytes.Buffer)
			},
		},
	}
}

// Get retrieves an empty buffer from the pool
func (p *FramePool) Get() *bytes.Buffer {
	buf := p.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool
func (p *FramePool) Put(buf *bytes.Buffer) {
	if buf == nil {
		return
	}
	p.pool.Put(buf)
}
