package pool

import "errors"

var (
	// ErrPoolIsNil is returned when Get is called on a nil pool.
	ErrPoolIsNil = errors.New("pool is nil")

	// ErrPoolReturnedNil is returned when the pool is empty and has no constructor.
	ErrPoolReturnedNil = errors.New("pool returned nil")

	// ErrPoolWrongType is returned when the pool holds an unexpected type.
	ErrPoolWrongType = errors.New("pool returned wrong type")
)
