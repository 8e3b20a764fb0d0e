package main

import (
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dexquote/v2router/internal/config"
	"github.com/dexquote/v2router/internal/infra/uniswap"
	"github.com/dexquote/v2router/internal/service"
	transport "github.com/dexquote/v2router/internal/transport/http"
)

func main() {
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "cfg/config.yaml"
	}

	cfg := config.Load(path)

	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	client, err := uniswap.NewClient(
		cfg.RPCURL,
		common.HexToAddress(cfg.FactoryAddress),
		common.HexToHash(cfg.InitCodeHash),
		cfg.CallTimeout,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("uniswap.NewClient")
	}

	srv := transport.NewServer(service.NewQuoterService(client), cfg)

	if err := srv.ListenAndServe(cfg.ListenAddr); err != nil {
		log.Fatal().Err(err).Msg("srv.ListenAndServe")
	}
}
