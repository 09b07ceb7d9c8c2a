package arguments

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

// ServerEnvConfig mirrors the command line flags. A non-empty environment
// value wins over the flag.
type ServerEnvConfig struct {
	DatabaseDSN        string `env:"DATABASE_DSN"`
	NatsURL            string `env:"NATS_URL"`
	NatsSubject        string `env:"NATS_SUBJECT"`
	HPServer           string `env:"HTTP_URL"`
	CacheSize          int    `env:"CACHE_SIZE"`
	CacheTimeLimitSecs int    `env:"CACHE_LIMIT_SECS"`
	PixKey             string `env:"PIX_KEY"`
	PixName            string `env:"PIX_NAME"`
	PixCity            string `env:"PIX_CITY"`
}

type ServerConfig struct {
	DatabaseDSN    string
	NatsURL        string
	NatsSubject    string
	HPServer       string
	CacheSize      int
	CacheTimeLimit time.Duration

	// Beneficiary used for charges that do not name their own.
	PixKey  string
	PixName string
	PixCity string
}

const (
	DefaultSubject = "pix.charges"
	DefaultDSN     = "host=localhost port=5432 user=postgres dbname=brcode sslmode=disable"
)

func ParseArgsServer(args []string) (*ServerConfig, error) {
	var cfg ServerEnvConfig
	err := env.Parse(&cfg)
	if err != nil {
		return nil, fmt.Errorf("Problem with parsing of env variables: %w", err)
	}
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	d := fs.String("d", DefaultDSN, "Postgres data source name")
	n := fs.String("n", "0.0.0.0:4222", "Nats <host>:<port> to connect")
	sub := fs.String("subject", DefaultSubject, "Nats subject with charge requests")
	cs := fs.Int("cs", 128, "Cache max capacity")
	ctl := fs.Int("ctl", 300, "Cache time limit on value in seconds")
	s := fs.String("s", "0.0.0.0:8000", "Http <host>:<port> to listen on")
	key := fs.String("key", "noivos@email.com", "Default PIX key of the beneficiary")
	name := fs.String("name", "Gabriel e Milleny", "Default beneficiary name")
	city := fs.String("city", "Curitiba", "Default beneficiary city")
	err = fs.Parse(args)
	if err != nil {
		return nil, fmt.Errorf("Problem with parsing of flags: %w", err)
	}

	conf := &ServerConfig{
		DatabaseDSN:    pick(cfg.DatabaseDSN, *d),
		NatsURL:        pick(cfg.NatsURL, *n),
		NatsSubject:    pick(cfg.NatsSubject, *sub),
		HPServer:       pick(cfg.HPServer, *s),
		CacheSize:      *cs,
		CacheTimeLimit: time.Second * time.Duration(*ctl),
		PixKey:         pick(cfg.PixKey, *key),
		PixName:        pick(cfg.PixName, *name),
		PixCity:        pick(cfg.PixCity, *city),
	}
	if cfg.CacheSize != 0 {
		conf.CacheSize = cfg.CacheSize
	}
	if cfg.CacheTimeLimitSecs != 0 {
		conf.CacheTimeLimit = time.Second * time.Duration(cfg.CacheTimeLimitSecs)
	}
	if conf.CacheSize <= 0 {
		return nil, fmt.Errorf("Cache size must be positive, got %d", conf.CacheSize)
	}
	return conf, nil
}

func pick(fromEnv, fromFlag string) string {
	if fromEnv != "" {
		return fromEnv
	}
	return fromFlag
}
