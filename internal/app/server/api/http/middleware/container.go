package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Middleware is a huma router-agnostic middleware.
type Middleware = func(ctx huma.Context, next func(huma.Context))

// Container накапливает мидлвари общей цепочки; With ответвляет цепочку
// для отдельной группы операций, не меняя исходную.
type Container struct {
	chain huma.Middlewares
}

func NewContainer(mws ...Middleware) *Container {
	c := &Container{chain: make(huma.Middlewares, 0, len(mws))}
	c.Add(mws...)
	return c
}

// Add appends middlewares to the chain, skipping nil ones.
func (c *Container) Add(mws ...Middleware) {
	for _, mw := range mws {
		if mw != nil {
			c.chain = append(c.chain, mw)
		}
	}
}

// With returns a new container with mws appended after the current chain.
func (c *Container) With(mws ...Middleware) *Container {
	next := &Container{chain: make(huma.Middlewares, len(c.chain), len(c.chain)+len(mws))}
	copy(next.chain, c.chain)
	next.Add(mws...)
	return next
}

// All returns a copy of the chain, safe to hand to huma.Operation.
func (c *Container) All() huma.Middlewares {
	out := make(huma.Middlewares, len(c.chain))
	copy(out, c.chain)
	return out
}
