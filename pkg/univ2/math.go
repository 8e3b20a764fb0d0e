// Package univ2 implements the Uniswap V2 constant-product pricing formulas
// and multi-hop path quoting over them. All arithmetic is exact 256-bit
// unsigned integer math; overflow is detected and reported, never wrapped.
package univ2

import "github.com/holiman/uint256"

// Fee constants: 0.3% = 997/1000, applied to the input side. Single
// definition point for every formula below.
var (
	feeMul = uint256.NewInt(997)
	feeDen = uint256.NewInt(1000)
	one    = uint256.NewInt(1)
)

// Quote returns the proportional counterpart of amountA at the current
// reserve ratio: floor(amountA * reserveB / reserveA). No fee is applied;
// this is meant for balanced liquidity provision, not for swaps.
func Quote(amountA, reserveA, reserveB *uint256.Int) (*uint256.Int, error) {
	if amountA.IsZero() {
		return nil, ErrInsufficientInputAmount
	}
	if reserveA.IsZero() || reserveB.IsZero() {
		return nil, ErrInsufficientLiquidity
	}

	num, overflow := new(uint256.Int).MulOverflow(amountA, reserveB)
	if overflow {
		return nil, ErrOverflow
	}
	return num.Div(num, reserveA), nil
}

// GetAmountOut solves the fee-adjusted constant-product curve for the output
// amount given an input amount:
//
//	amountOut = (amountIn*997 * reserveOut) / (reserveIn*1000 + amountIn*997)
//
// The division floors, so rounding loss always favors the pool.
func GetAmountOut(amountIn, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	if amountIn.IsZero() {
		return nil, ErrInsufficientInputAmount
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInsufficientLiquidity
	}

	// ainFee = amountIn * 997
	ainFee, overflow := new(uint256.Int).MulOverflow(amountIn, feeMul)
	if overflow {
		return nil, ErrOverflow
	}
	// num = ainFee * reserveOut
	num, overflow := new(uint256.Int).MulOverflow(ainFee, reserveOut)
	if overflow {
		return nil, ErrOverflow
	}
	// den = reserveIn * 1000 + ainFee
	den, overflow := new(uint256.Int).MulOverflow(reserveIn, feeDen)
	if overflow {
		return nil, ErrOverflow
	}
	den, overflow = den.AddOverflow(den, ainFee)
	if overflow {
		return nil, ErrOverflow
	}

	return num.Div(num, den), nil
}

// GetAmountIn solves the curve in the other direction, returning the input
// amount required for a desired output amount:
//
//	amountIn = (reserveIn * amountOut * 1000) / ((reserveOut - amountOut) * 997) + 1
//
// The +1 is unconditional, also on exact division, so rounding excess always
// favors the pool. The desired output must be strictly below reserveOut; the
// subtraction is guarded and reported as insufficient liquidity, not allowed
// to underflow.
func GetAmountIn(amountOut, reserveIn, reserveOut *uint256.Int) (*uint256.Int, error) {
	if amountOut.IsZero() {
		return nil, ErrInsufficientOutputAmount
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return nil, ErrInsufficientLiquidity
	}
	if !amountOut.Lt(reserveOut) {
		return nil, ErrInsufficientLiquidity
	}

	// num = reserveIn * amountOut * 1000
	num, overflow := new(uint256.Int).MulOverflow(reserveIn, amountOut)
	if overflow {
		return nil, ErrOverflow
	}
	num, overflow = num.MulOverflow(num, feeDen)
	if overflow {
		return nil, ErrOverflow
	}
	// den = (reserveOut - amountOut) * 997
	den := new(uint256.Int).Sub(reserveOut, amountOut)
	den, overflow = den.MulOverflow(den, feeMul)
	if overflow {
		return nil, ErrOverflow
	}

	amountIn := num.Div(num, den)
	amountIn, overflow = amountIn.AddOverflow(amountIn, one)
	if overflow {
		return nil, ErrOverflow
	}
	return amountIn, nil
}
