package richtext

import "sync"

// LayoutPool pools Layouts for measurement-heavy paths that lay text out
// and discard the result.
type LayoutPool struct {
	pool sync.Pool
}

// NewLayoutPool creates an empty layout pool.
func NewLayoutPool() *LayoutPool {
	return &LayoutPool{
		pool: sync.Pool{
			New: func() any { return NewLayout() },
		},
	}
}

// Get retrieves a Layout with default configuration from the pool.
func (p *LayoutPool) Get() *Layout {
	return p.pool.Get().(*Layout)
}

// Put returns a Layout to the pool. The layout is reset before reuse.
func (p *LayoutPool) Put(l *Layout) {
	if l != nil {
		l.Reset()
		p.pool.Put(l)
	}
}

var layoutPool = NewLayoutPool()

// GetLayout returns a Layout from the package-wide pool.
func GetLayout() *Layout { return layoutPool.Get() }

// PutLayout resets l and returns it to the package-wide pool.
func PutLayout(l *Layout) { layoutPool.Put(l) }
