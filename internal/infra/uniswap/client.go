package uniswap

import (
	"bytes"
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

//go:generate mockgen -source client.go -destination mock/client.go -package mock

const pairABIJSON = `[
	{"inputs":[],"name":"getReserves","outputs":[{"internalType":"uint112","name":"_reserve0","type":"uint112"},{"internalType":"uint112","name":"_reserve1","type":"uint112"},{"internalType":"uint32","name":"_blockTimestampLast","type":"uint32"}],"stateMutability":"view","type":"function"}
]`

// Client resolves a token pair to the reserves of the Uniswap V2 pool holding
// it. It satisfies univ2.ReserveSource.
type Client interface {
	// GetReserves returns the pool reserves ordered to match the argument
	// order: the first value belongs to tokenIn, the second to tokenOut.
	GetReserves(ctx context.Context, tokenIn, tokenOut common.Address) (*uint256.Int, *uint256.Int, error)
}

// EthCaller represents interface for calling contracts.
type EthCaller interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

type ethClientImpl struct {
	caller  EthCaller
	pairABI abi.ABI

	factory      common.Address
	initCodeHash common.Hash

	callTimeout time.Duration
}

// NewClient creates a new Uniswap Client backed by an Ethereum RPC connection.
func NewClient(rpcURL string, factory common.Address, initCodeHash common.Hash, callTimeout time.Duration) (Client, error) {
	caller, err := ethclient.Dial(rpcURL)
	if err != nil {
		return nil, errors.Wrap(err, "ethclient.Dial")
	}

	return newClientWithCaller(caller, factory, initCodeHash, callTimeout)
}

func newClientWithCaller(caller EthCaller, factory common.Address, initCodeHash common.Hash, callTimeout time.Duration) (Client, error) {
	pairABI, err := abi.JSON(strings.NewReader(pairABIJSON))
	if err != nil {
		return nil, errors.Wrap(err, "abi.JSON")
	}

	return &ethClientImpl{
		caller:  caller,
		pairABI: pairABI,

		factory:      factory,
		initCodeHash: initCodeHash,

		callTimeout: callTimeout,
	}, nil
}

func (c *ethClientImpl) call(ctx context.Context, to common.Address, method string) ([]interface{}, error) {
	data, err := c.pairABI.Pack(method)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Pack")
	}

	res, err := c.caller.CallContract(
		ctx,
		ethereum.CallMsg{
			To:   &to,
			Data: data,
		},
		nil,
	)
	if err != nil {
		return nil, errors.Wrap(err, "c.caller.CallContract")
	}

	out, err := c.pairABI.Unpack(method, res)
	if err != nil {
		return nil, errors.Wrap(err, "c.pairABI.Unpack")
	}

	return out, nil
}

// GetReserves reads getReserves() from the pool holding (tokenIn, tokenOut)
// and returns the reserves in argument order.
func (c *ethClientImpl) GetReserves(ctx context.Context, tokenIn, tokenOut common.Address) (*uint256.Int, *uint256.Int, error) {
	if tokenIn == tokenOut {
		return nil, nil, errors.New("identical tokens")
	}

	token0, token1 := sortTokens(tokenIn, tokenOut)
	pair := pairFor(c.factory, c.initCodeHash, token0, token1)

	ctxCall, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	out, err := c.call(ctxCall, pair, "getReserves")
	if err != nil {
		return nil, nil, errors.Wrap(err, "c.call")
	}

	const requiredSize = 2
	if len(out) < requiredSize {
		return nil, nil, errors.Errorf("insufficient outputs from getReserves call: expected %d, got %d", requiredSize, len(out))
	}

	reserves := make([]*uint256.Int, requiredSize)
	reserveNames := []string{"reserve0", "reserve1"}

	for i := 0; i < requiredSize; i++ {
		reserve, ok := out[i].(*big.Int)
		if !ok {
			return nil, nil, errors.Errorf("failed to cast %s to *big.Int", reserveNames[i])
		}
		r, overflow := uint256.FromBig(reserve)
		if overflow {
			return nil, nil, errors.Errorf("%s does not fit 256 bits", reserveNames[i])
		}
		reserves[i] = r
	}

	if tokenIn == token0 {
		return reserves[0], reserves[1], nil
	}
	return reserves[1], reserves[0], nil
}

// sortTokens returns the pair tokens in the canonical order the factory used
// when deploying the pool.
func sortTokens(tokenA, tokenB common.Address) (common.Address, common.Address) {
	if bytes.Compare(tokenA.Bytes(), tokenB.Bytes()) < 0 {
		return tokenA, tokenB
	}
	return tokenB, tokenA
}

// pairFor derives the CREATE2 address of the pool for canonically ordered
// tokens without touching the chain.
func pairFor(factory common.Address, initCodeHash common.Hash, token0, token1 common.Address) common.Address {
	salt := crypto.Keccak256Hash(token0.Bytes(), token1.Bytes())
	return crypto.CreateAddress2(factory, salt, initCodeHash.Bytes())
}
