package emojify

import (
	"bytes"
	"context"

	pool "github.com/jolestar/go-commons-pool"
)

// scratch holds the per-call working storage of a translation.
// Scratch objects are short-lived. To avoid repeated allocation of
// buffers we will pool them.
type scratch struct {
	tokens []string
	buf    bytes.Buffer
	pooled bool
}

// Buffers grown beyond this size are not returned to the pool.
const maxPooledBufferSize = 64 * 1024

type scratchPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalScratchPool *scratchPool

func init() {
	globalScratchPool = &scratchPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			sc := &scratch{tokens: make([]string, 0, 32), pooled: true}
			return sc, nil
		})
	globalScratchPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalScratchPool.opool = pool.NewObjectPool(globalScratchPool.ctx, factory, config)
}

// borrowScratch returns an empty scratch object from the pool.
func borrowScratch() *scratch {
	o, err := globalScratchPool.opool.BorrowObject(globalScratchPool.ctx)
	if err != nil {
		tracer().Errorf("scratch pool: %v", err)
		return &scratch{}
	}
	return o.(*scratch)
}

// Clears the scratch object and puts it back into the pool.
func (sc *scratch) release() {
	if !sc.pooled {
		return
	}
	clear(sc.tokens)
	sc.tokens = sc.tokens[:0]
	if sc.buf.Cap() > maxPooledBufferSize {
		_ = globalScratchPool.opool.InvalidateObject(globalScratchPool.ctx, sc)
		return
	}
	sc.buf.Reset()
	_ = globalScratchPool.opool.ReturnObject(globalScratchPool.ctx, sc)
}
