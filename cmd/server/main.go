package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akashipov/brcode/internal/arguments"
	"github.com/akashipov/brcode/internal/charges"
	"github.com/akashipov/brcode/internal/consumer"
	"github.com/akashipov/brcode/internal/handlers"
	"github.com/akashipov/brcode/internal/pkg/middleware/logger"
	"github.com/akashipov/brcode/internal/server"
	"github.com/akashipov/brcode/internal/storage"
	"github.com/akashipov/brcode/internal/storage/cache"
	"github.com/akashipov/brcode/internal/storage/charge"
	"github.com/akashipov/brcode/internal/storage/memory"
	"github.com/akashipov/brcode/internal/storage/postgres"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conf, err := arguments.ParseArgsServer(os.Args[1:])
	if err != nil {
		return err
	}
	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("Log creation problem: %w", err)
	}
	defer log.Sync()
	log.Infow("Starting", "http", conf.HPServer, "nats", conf.NatsURL, "subject", conf.NatsSubject,
		"cache_size", conf.CacheSize, "cache_ttl", conf.CacheTimeLimit)

	st, closeStorage, err := openStorage(ctx, conf, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	// Load recently used charges from the storage into local memory
	c := cache.InitCache(ctx, conf.CacheSize, conf.CacheTimeLimit, st, log)
	svc := charges.NewService(st, c, charge.Beneficiary{
		PayeeKey: conf.PixKey,
		Name:     conf.PixName,
		City:     conf.PixCity,
	}, log)

	nc, err := nats.Connect(conf.NatsURL, nats.Name("brcode-server"))
	if err != nil {
		return fmt.Errorf("Problem with connecting to nats: %w", err)
	}
	defer nc.Close()
	cons := consumer.NewConsumer(svc, log)
	err = cons.Subscribe(nc, conf.NatsSubject)
	if err != nil {
		return fmt.Errorf("Problem with nats subscription: %w", err)
	}

	srv, err := server.NewServer(conf.HPServer, handlers.ServerRouter(svc, log), log)
	if err != nil {
		return err
	}
	err = srv.RunServer(ctx)
	if cErr := cons.Close(); cErr != nil {
		log.Infof("Problem with closing subscription: %s", cErr.Error())
	}
	log.Infoln("Subscription was closed!")
	return err
}

// openStorage connects to postgres, or keeps charges in memory when no
// data source is configured.
func openStorage(ctx context.Context, conf *arguments.ServerConfig, log *zap.SugaredLogger) (storage.Storage, func(), error) {
	if conf.DatabaseDSN == "" {
		log.Infoln("No database configured, charges are kept in memory")
		return memory.New(), func() {}, nil
	}
	w, err := postgres.NewSqlWorker(ctx, conf.DatabaseDSN, log)
	if err != nil {
		return nil, nil, err
	}
	err = w.CreateDefaultTables(ctx)
	if err != nil {
		w.Close()
		return nil, nil, err
	}
	return w, func() { w.Close() }, nil
}
