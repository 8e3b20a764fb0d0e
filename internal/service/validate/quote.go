package validate

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/dexquote/v2router/internal/apperrors"
	"github.com/dexquote/v2router/internal/service/dto"
	"github.com/dexquote/v2router/pkg/univ2"
)

// QuoteRequestValidate validates a business logic request. All problems are
// collected and reported together rather than one at a time.
func QuoteRequestValidate(req dto.QuoteRequest) error {
	var zeroAddress = common.Address{}
	var combined error

	if len(req.Path) < 2 {
		combined = multierr.Append(combined, errors.Wrap(univ2.ErrInvalidPath, "path must contain at least two tokens"))
	}

	for i, token := range req.Path {
		if token == zeroAddress {
			combined = multierr.Append(combined, errors.Wrapf(apperrors.ErrInvalidArgument, "path token %d cannot be the zero address", i))
		}
		if i > 0 && token == req.Path[i-1] {
			combined = multierr.Append(combined, errors.Wrapf(apperrors.ErrInvalidArgument, "path tokens %d and %d are identical", i-1, i))
		}
	}

	if req.Amount == nil || req.Amount.IsZero() {
		combined = multierr.Append(combined, errors.Wrap(apperrors.ErrInvalidArgument, "amount cannot be zero"))
	}

	return combined
}
