package service

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dexquote/v2router/internal/apperrors"
	"github.com/dexquote/v2router/internal/infra/uniswap/mock"
	"github.com/dexquote/v2router/internal/service/dto"
	"github.com/dexquote/v2router/pkg/univ2"
)

func TestAmountsOut(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	quoter := NewQuoterService(mockClient)

	tokenA := common.HexToAddress("0x1111111111111111111111111111111111111111")
	tokenB := common.HexToAddress("0x2222222222222222222222222222222222222222")
	tokenC := common.HexToAddress("0x3333333333333333333333333333333333333333")

	t.Run("success two hops", func(t *testing.T) {
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenA, tokenB).
			Return(uint256.NewInt(1_000_000), uint256.NewInt(2_000_000), nil)
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenB, tokenC).
			Return(uint256.NewInt(500_000), uint256.NewInt(1_000_000), nil)

		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, tokenB, tokenC},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, amounts, 3)
		require.Equal(t, "1992", amounts[1].Dec())
		require.Equal(t, "3956", amounts[2].Dec())
	})

	t.Run("invalid argument - short path", func(t *testing.T) {
		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.ErrorIs(t, err, univ2.ErrInvalidPath)
		require.Nil(t, amounts)
	})

	t.Run("invalid argument - zero address in path", func(t *testing.T) {
		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, {}},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		require.Nil(t, amounts)
	})

	t.Run("invalid argument - nil amount", func(t *testing.T) {
		req := dto.QuoteRequest{
			Path: []common.Address{tokenA, tokenB},
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		require.Nil(t, amounts)
	})

	t.Run("reserve read failure maps to ErrReserveRead", func(t *testing.T) {
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenA, tokenB).
			Return(nil, nil, errors.New("rpc error"))

		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, tokenB},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.ErrorIs(t, err, apperrors.ErrReserveRead)
		require.Nil(t, amounts)
	})

	t.Run("empty pool passes pricing error through", func(t *testing.T) {
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenA, tokenB).
			Return(uint256.NewInt(0), uint256.NewInt(1), nil)

		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, tokenB},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsOut(context.Background(), req)
		require.ErrorIs(t, err, univ2.ErrInsufficientLiquidity)
		require.Nil(t, amounts)
	})
}

func TestAmountsIn(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mock.NewMockClient(ctrl)
	quoter := NewQuoterService(mockClient)

	tokenA := common.HexToAddress("0x1111111111111111111111111111111111111111")
	tokenB := common.HexToAddress("0x2222222222222222222222222222222222222222")

	t.Run("success", func(t *testing.T) {
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenA, tokenB).
			Return(uint256.NewInt(1_000_000), uint256.NewInt(2_000_000), nil)

		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, tokenB},
			Amount: uint256.NewInt(1992),
		}

		amounts, err := quoter.AmountsIn(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, amounts, 2)
		require.Equal(t, "1000", amounts[0].Dec())
		require.Equal(t, "1992", amounts[1].Dec())
	})

	t.Run("output exceeding reserve", func(t *testing.T) {
		mockClient.EXPECT().
			GetReserves(gomock.Any(), tokenA, tokenB).
			Return(uint256.NewInt(1_000_000), uint256.NewInt(1000), nil)

		req := dto.QuoteRequest{
			Path:   []common.Address{tokenA, tokenB},
			Amount: uint256.NewInt(1000),
		}

		amounts, err := quoter.AmountsIn(context.Background(), req)
		require.ErrorIs(t, err, univ2.ErrInsufficientLiquidity)
		require.Nil(t, amounts)
	})
}
