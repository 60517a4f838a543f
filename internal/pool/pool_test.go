package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPool_HappyPath(t *testing.T) {
	type testBuffer struct {
		data []int64
	}

	p := New(func() *testBuffer {
		return &testBuffer{data: make([]int64, 10)}
	}, nil)

	buf, err := p.Get()
	require.NoError(t, err)
	require.NotNil(t, buf)
	require.Len(t, buf.data, 10)

	p.Put(buf)
}

func TestPool_ResetOnPut(t *testing.T) {
	p := New(func() *bytes.Buffer { return new(bytes.Buffer) }, (*bytes.Buffer).Reset)

	buf := p.MustGet()
	buf.WriteString("x^2 + 1")
	p.Put(buf)

	require.Equal(t, 0, buf.Len())
}

func TestPool_WrongType(t *testing.T) {
	p := New[*int](nil, nil)
	p.inner.New = func() any { return "wrong type" }

	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolWrongType)
	require.ErrorContains(t, err, "expected *int, got string")
}

func TestPool_ReturnsNil(t *testing.T) {
	p := New[*int](nil, nil)

	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolReturnedNil)
	require.Panics(t, func() { p.MustGet() })
}

func TestPool_NilPool(t *testing.T) {
	var p *Pool[*int]
	_, err := p.Get()
	require.ErrorIs(t, err, ErrPoolIsNil)

	// Put should not panic with nil pool
	require.NotPanics(t, func() {
		p.Put(nil)
	})
}
