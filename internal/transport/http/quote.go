package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/dexquote/v2router/internal/apperrors"
	servicedto "github.com/dexquote/v2router/internal/service/dto"
	"github.com/dexquote/v2router/internal/transport/http/dto"
	"github.com/dexquote/v2router/internal/transport/http/validate"
	"github.com/dexquote/v2router/pkg/univ2"
)

func (s *Server) handleAmountsOut(w http.ResponseWriter, r *http.Request) {
	s.handleQuote(w, r, "amount_in", s.quoter.AmountsOut)
}

func (s *Server) handleAmountsIn(w http.ResponseWriter, r *http.Request) {
	s.handleQuote(w, r, "amount_out", s.quoter.AmountsIn)
}

func (s *Server) handleQuote(
	w http.ResponseWriter,
	r *http.Request,
	amountParam string,
	quote func(context.Context, servicedto.QuoteRequest) ([]*uint256.Int, error),
) {
	req, code, err := validate.QuoteRequestValidate(r, amountParam)
	if err != nil {
		if code == 0 {
			code = http.StatusBadRequest
		}
		http.Error(w, err.Error(), code)
		return
	}

	ctx := r.Context()
	if s.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.requestTimeout)
		defer cancel()
	}

	amounts, err := quote(ctx, servicedto.QuoteRequest{
		Path:   req.Path,
		Amount: req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidArgument),
			errors.Is(err, univ2.ErrInvalidPath),
			errors.Is(err, univ2.ErrInsufficientInputAmount),
			errors.Is(err, univ2.ErrInsufficientOutputAmount),
			errors.Is(err, univ2.ErrInsufficientLiquidity),
			errors.Is(err, univ2.ErrOverflow):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, apperrors.ErrReserveRead):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	resp := dto.QuoteResponse{Amounts: make([]string, len(amounts))}
	for i, a := range amounts {
		resp.Amounts[i] = a.Dec()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Warn().Err(err).Msg("quote write error")
	}
}
