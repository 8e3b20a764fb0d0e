package validate

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"

	"github.com/dexquote/v2router/internal/transport/http/dto"
)

// QuoteRequestValidate validates a quoting request query and returns dto.
// amountParam names the query parameter carrying the fixed amount
// ("amount_in" or "amount_out").
func QuoteRequestValidate(r *http.Request, amountParam string) (*dto.QuoteRequest, int, error) {
	q := r.URL.Query()
	pathStr := q.Get("path")
	amt := q.Get(amountParam)
	if pathStr == "" || amt == "" {
		return nil, http.StatusBadRequest, errors.New("missing params")
	}

	parts := strings.Split(pathStr, ",")
	if len(parts) < 2 {
		return nil, http.StatusBadRequest, errors.New("path must contain at least two addresses")
	}

	path := make([]common.Address, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if !common.IsHexAddress(p) {
			return nil, http.StatusBadRequest, errors.New("bad address format")
		}
		path = append(path, common.HexToAddress(p))
	}

	a, err := uint256.FromDecimal(amt)
	if err != nil || a.IsZero() {
		return nil, http.StatusBadRequest, errors.Errorf("bad %s", amountParam)
	}

	return &dto.QuoteRequest{
		Path:   path,
		Amount: a,
	}, 0, nil
}
