package service

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/dexquote/v2router/internal/infra/uniswap"
	"github.com/dexquote/v2router/internal/service/dto"
)

//go:generate mockgen -source service.go -destination mock/service.go -package mock

// Service represents interface for business logic.
type Service interface {
	AmountsOut(ctx context.Context, req dto.QuoteRequest) ([]*uint256.Int, error)
	AmountsIn(ctx context.Context, req dto.QuoteRequest) ([]*uint256.Int, error)
}

// QuoterService represents struct for business logic.
type QuoterService struct {
	reserves uniswap.Client
}

// NewQuoterService creates QuoterService.
func NewQuoterService(cli uniswap.Client) *QuoterService {
	return &QuoterService{reserves: cli}
}
