package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dexquote/v2router/internal/apperrors"
	"github.com/dexquote/v2router/internal/config"
	"github.com/dexquote/v2router/internal/service/mock"
	"github.com/dexquote/v2router/internal/transport/http/dto"
	"github.com/dexquote/v2router/pkg/univ2"
)

const (
	addrA = "0x1111111111111111111111111111111111111111"
	addrB = "0x2222222222222222222222222222222222222222"
	addrC = "0x3333333333333333333333333333333333333333"
)

func TestPingHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockService(ctrl)
	server := NewServer(mockService, config.Config{})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	server.mux.ServeHTTP(w, req)

	resp := w.Result()
	defer closeBody(resp.Body)

	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "pong", string(body))
}

func TestAmountsOutHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockService(ctrl)
	server := NewServer(mockService, config.Config{})

	target := "/amounts_out?path=" + addrA + "," + addrB + "," + addrC + "&amount_in=1000"

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			AmountsOut(gomock.Any(), gomock.Any()).
			Return([]*uint256.Int{
				uint256.NewInt(1000),
				uint256.NewInt(1992),
				uint256.NewInt(3956),
			}, nil)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body dto.QuoteResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, []string{"1000", "1992", "3956"}, body.Amounts)
	})

	t.Run("validation error - missing params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/amounts_out?path="+addrA, nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("validation error - bad address", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/amounts_out?path=invalid,"+addrB+"&amount_in=1000", nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	testServiceError := func(t *testing.T, serviceError error, expectedStatusCode int) {
		mockService.EXPECT().
			AmountsOut(gomock.Any(), gomock.Any()).
			Return(nil, serviceError)

		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, expectedStatusCode, resp.StatusCode)
	}

	t.Run("service error - invalid argument", func(t *testing.T) {
		testServiceError(t, apperrors.ErrInvalidArgument, http.StatusBadRequest)
	})

	t.Run("service error - insufficient liquidity", func(t *testing.T) {
		testServiceError(t, univ2.ErrInsufficientLiquidity, http.StatusBadRequest)
	})

	t.Run("service error - overflow", func(t *testing.T) {
		testServiceError(t, univ2.ErrOverflow, http.StatusBadRequest)
	})

	t.Run("service error - reserve read failed", func(t *testing.T) {
		testServiceError(t, apperrors.ErrReserveRead, http.StatusBadGateway)
	})

	t.Run("service error - unknown", func(t *testing.T) {
		testServiceError(t, errors.New("boom"), http.StatusInternalServerError)
	})
}

func TestAmountsInHandler(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockService(ctrl)
	server := NewServer(mockService, config.Config{})

	t.Run("success", func(t *testing.T) {
		mockService.EXPECT().
			AmountsIn(gomock.Any(), gomock.Any()).
			Return([]*uint256.Int{
				uint256.NewInt(1000),
				uint256.NewInt(1992),
			}, nil)

		req := httptest.NewRequest(http.MethodGet,
			"/amounts_in?path="+addrA+","+addrB+"&amount_out=1992", nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body dto.QuoteResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.Equal(t, []string{"1000", "1992"}, body.Amounts)
	})

	t.Run("validation error - zero amount", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/amounts_in?path="+addrA+","+addrB+"&amount_out=0", nil)
		w := httptest.NewRecorder()

		server.mux.ServeHTTP(w, req)

		resp := w.Result()
		defer closeBody(resp.Body)

		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func closeBody(body io.ReadCloser) {
	if err := body.Close(); err != nil {
		log.Warn().Err(err).Msg("body.Close")
	}
}
