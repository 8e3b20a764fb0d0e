package apperrors

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned when the request parameters are invalid.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrReserveRead is returned when fetching pool reserves fails, typically
	// due to an RPC or ABI decoding error.
	ErrReserveRead = errors.New("reserve read failed")
)
