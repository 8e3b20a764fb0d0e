package univ2

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

//go:generate mockgen -source path.go -destination mock/reserve_source.go -package mock

// ReserveSource resolves a token pair to the reserves of the pool holding it.
// Reserves are returned in argument order: the first value belongs to tokenIn,
// the second to tokenOut. Implementations handle canonical pair ordering
// internally; callers never reorder.
type ReserveSource interface {
	GetReserves(ctx context.Context, tokenIn, tokenOut common.Address) (*uint256.Int, *uint256.Int, error)
}

// GetAmountsOut chains GetAmountOut along path, front to back. The result
// holds one amount per path position, amounts[0] being amountIn. Each hop's
// output feeds the next hop; a failure at any hop aborts the whole
// computation with no partial result.
func GetAmountsOut(ctx context.Context, src ReserveSource, amountIn *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}

	amounts := make([]*uint256.Int, len(path))
	amounts[0] = new(uint256.Int).Set(amountIn)
	for i := 0; i < len(path)-1; i++ {
		reserveIn, reserveOut, err := src.GetReserves(ctx, path[i], path[i+1])
		if err != nil {
			return nil, errors.Wrapf(err, "src.GetReserves hop %d", i)
		}
		out, err := GetAmountOut(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i)
		}
		amounts[i+1] = out
	}
	return amounts, nil
}

// GetAmountsIn chains GetAmountIn along path, back to front. The result holds
// one amount per path position, the last being amountOut and amounts[0] the
// required input. Abort semantics match GetAmountsOut.
func GetAmountsIn(ctx context.Context, src ReserveSource, amountOut *uint256.Int, path []common.Address) ([]*uint256.Int, error) {
	if len(path) < 2 {
		return nil, ErrInvalidPath
	}

	amounts := make([]*uint256.Int, len(path))
	amounts[len(amounts)-1] = new(uint256.Int).Set(amountOut)
	for i := len(path) - 1; i > 0; i-- {
		reserveIn, reserveOut, err := src.GetReserves(ctx, path[i-1], path[i])
		if err != nil {
			return nil, errors.Wrapf(err, "src.GetReserves hop %d", i-1)
		}
		in, err := GetAmountIn(amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, errors.Wrapf(err, "hop %d", i-1)
		}
		amounts[i-1] = in
	}
	return amounts, nil
}
