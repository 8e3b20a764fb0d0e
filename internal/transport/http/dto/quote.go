package dto

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// QuoteRequest represents a parsed HTTP request for the quoting endpoints.
type QuoteRequest struct {
	Path   []common.Address
	Amount *uint256.Int
}

// QuoteResponse carries one amount per path position, as decimal strings.
type QuoteResponse struct {
	Amounts []string `json:"amounts"`
}
