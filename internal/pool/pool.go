// Package pool provides a type-safe generic wrapper around sync.Pool.
//
// Values are reset before they are handed back to the pool so that a caller
// never observes state left behind by a previous user.
//
// Example usage:
//
//	var buffers = pool.New(
//	    func() *bytes.Buffer { return new(bytes.Buffer) },
//	    (*bytes.Buffer).Reset,
//	)
//
//	func render() (string, error) {
//	    buf, err := buffers.Get()
//	    if err != nil {
//	        return "", err
//	    }
//	    defer buffers.Put(buf)
//
//	    buf.WriteString("x^2")
//	    return buf.String(), nil
//	}
package pool

import (
	"fmt"
	"sync"
)

// Pool hands out values of type T.
type Pool[T any] struct {
	inner sync.Pool
	reset func(T)
}

// New creates a pool whose empty slots are filled by `newFn`.
// `reset` may be nil; when set it runs on every value passed to Put.
func New[T any](newFn func() T, reset func(T)) *Pool[T] {
	p := &Pool[T]{reset: reset}
	if newFn != nil {
		p.inner.New = func() any { return newFn() }
	}
	return p
}

// Get retrieves a value from the pool with type safety.
// Returns an error if:
//   - the pool is nil
//   - the pool has no constructor and is empty
//   - the pool holds a value of the wrong type
func (p *Pool[T]) Get() (T, error) {
	var zero T

	if p == nil {
		return zero, ErrPoolIsNil
	}

	v := p.inner.Get()
	if v == nil {
		return zero, ErrPoolReturnedNil
	}

	typed, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T",
			ErrPoolWrongType, zero, v)
	}

	return typed, nil
}

// MustGet is Get for pools that always have a constructor.
func (p *Pool[T]) MustGet() T {
	v, err := p.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Put resets `v` and returns it to the pool.
// Silently ignores a nil pool to avoid panics in defer statements.
func (p *Pool[T]) Put(v T) {
	if p == nil {
		return
	}
	if p.reset != nil {
		p.reset(v)
	}
	p.inner.Put(v)
}
