package binomial

import "github.com/pkg/errors"

var (
	// Returned by Top and Pop when the heap holds no elements.
	ErrContainerEmpty = errors.New("container is empty")

	ErrUnknownOrder = errors.New("unknown queue order")
)
