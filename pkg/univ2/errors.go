package univ2

import "github.com/pkg/errors"

var (
	// ErrInsufficientInputAmount is returned when the input amount of a swap
	// or quote is zero.
	ErrInsufficientInputAmount = errors.New("insufficient input amount")

	// ErrInsufficientOutputAmount is returned when the desired output amount
	// of an inverse swap is zero.
	ErrInsufficientOutputAmount = errors.New("insufficient output amount")

	// ErrInsufficientLiquidity is returned when a pool reserve is zero, or
	// when the desired output meets or exceeds the available reserve.
	ErrInsufficientLiquidity = errors.New("insufficient liquidity")

	// ErrInvalidPath is returned when a swap path holds fewer than two tokens.
	ErrInvalidPath = errors.New("invalid path")

	// ErrOverflow is returned when an intermediate product or sum does not
	// fit the 256-bit range. Results are never silently wrapped.
	ErrOverflow = errors.New("arithmetic overflow")
)
