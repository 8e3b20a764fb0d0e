package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// QuoteRequest represents a request to price a multi-hop swap path off-chain.
// Amount is the fixed end of the computation: the input amount for forward
// quoting, the desired output amount for inverse quoting.
type QuoteRequest struct {
	Path   []common.Address
	Amount *uint256.Int
}
