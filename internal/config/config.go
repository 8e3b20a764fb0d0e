package config

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Mainnet Uniswap V2 factory parameters, used when the config omits them.
const (
	defaultFactoryAddress = "0x5C69bEe701ef814a2B6a3EDD4B1652CB9cc5aA6f"
	defaultInitCodeHash   = "0x96e8ac4277198ff8b6f785478aa9a39f403cb768dd02cbe8eb7b4a80a5a7b556"
)

// Config holds application configuration loaded from file.
type Config struct {
	RPCURL            string        `yaml:"rpc_url"`
	ListenAddr        string        `yaml:"listen_addr"`
	LogLevel          string        `yaml:"log_level"`
	FactoryAddress    string        `yaml:"factory_address"`
	InitCodeHash      string        `yaml:"init_code_hash"`
	GraceTimeout      time.Duration `yaml:"shutdown_timeout"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	CallTimeout       time.Duration `yaml:"call_timeout"`
}

// Load reads the config from a YAML file path.
// Fails fatally if config is invalid or file is missing.
func Load(path string) Config {
	f, err := os.Open(path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open config file: os.Open")
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close config file: f.Close")
		}
	}(f)

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to parse config file: decoder.Decode")
	}

	// Fallbacks
	const defaultTimeout = 5 * time.Second
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":1337"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.FactoryAddress == "" {
		cfg.FactoryAddress = defaultFactoryAddress
	}
	if cfg.InitCodeHash == "" {
		cfg.InitCodeHash = defaultInitCodeHash
	}
	if cfg.GraceTimeout == 0 {
		cfg.GraceTimeout = defaultTimeout
	}
	if cfg.RequestTimeout == 0 {
		cfg.RequestTimeout = defaultTimeout
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = defaultTimeout
	}
	if cfg.CallTimeout == 0 {
		cfg.CallTimeout = defaultTimeout
	}

	if cfg.RPCURL == "" {
		log.Fatal().Msg("rpc_url is required in config")
	}

	return cfg
}
