package service

import (
	"context"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dexquote/v2router/internal/apperrors"
	"github.com/dexquote/v2router/internal/service/dto"
	"github.com/dexquote/v2router/internal/service/validate"
	"github.com/dexquote/v2router/pkg/univ2"
)

// AmountsOut validates the request and chains the constant-product formula
// forward along the path, fetching reserves per hop through the infra client.
// The result holds one amount per path position, the first being the input.
func (s *QuoterService) AmountsOut(ctx context.Context, req dto.QuoteRequest) ([]*uint256.Int, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}

	amounts, err := univ2.GetAmountsOut(ctx, s.reserves, req.Amount, req.Path)
	if err != nil {
		return nil, mapPricingError(err)
	}
	return amounts, nil
}

// AmountsIn validates the request and chains the inverse formula backward
// along the path. The result holds one amount per path position, the last
// being the desired output and the first the required input.
func (s *QuoterService) AmountsIn(ctx context.Context, req dto.QuoteRequest) ([]*uint256.Int, error) {
	if err := validate.QuoteRequestValidate(req); err != nil {
		return nil, err
	}

	amounts, err := univ2.GetAmountsIn(ctx, s.reserves, req.Amount, req.Path)
	if err != nil {
		return nil, mapPricingError(err)
	}
	return amounts, nil
}

// mapPricingError keeps pricing failures as-is and folds everything else,
// which can only come from the reserve lookup, into ErrReserveRead.
func mapPricingError(err error) error {
	switch {
	case errors.Is(err, univ2.ErrInvalidPath),
		errors.Is(err, univ2.ErrInsufficientInputAmount),
		errors.Is(err, univ2.ErrInsufficientOutputAmount),
		errors.Is(err, univ2.ErrInsufficientLiquidity),
		errors.Is(err, univ2.ErrOverflow):
		return err
	default:
		return errors.Wrap(apperrors.ErrReserveRead, err.Error())
	}
}
