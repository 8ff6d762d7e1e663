// Command pendingwatch tracks submitted blockchain transactions and watches
// them until they confirm, fail or drop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/pendingwatch/internal/balance"
	"github.com/gabapcia/pendingwatch/internal/handlers/cli"
	"github.com/gabapcia/pendingwatch/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/pendingwatch/internal/infra/storage/memory"
	"github.com/gabapcia/pendingwatch/internal/infra/storage/redis"
	"github.com/gabapcia/pendingwatch/internal/nonce"
	"github.com/gabapcia/pendingwatch/internal/pendingtx"
	"github.com/gabapcia/pendingwatch/internal/pkg/eventbus"
	"github.com/gabapcia/pendingwatch/internal/pkg/logger"
	"github.com/gabapcia/pendingwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/pendingwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/pendingwatch/internal/pkg/transport/http"
	"github.com/gabapcia/pendingwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/pendingwatch/internal/reconcile"
	"github.com/gabapcia/pendingwatch/internal/txwatch"
)

// shutdownTimeout bounds the flush of telemetry on exit.
const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// telemetry goes first so the logger can attach its OTEL bridge
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()
			err = errors.Join(err, shutdown(ctx))
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, shared, closeStore, err := newStore(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connecting to storage: %w", err)
	}
	defer func() { err = errors.Join(err, closeStore()) }()

	var (
		changes = eventbus.New[pendingtx.Changed]()
		settled = eventbus.New[pendingtx.Settled]()

		transactions = pendingtx.New(store, changes)
		rpcRetry     = retry.New(retry.WithAttempts(cfg.RPC.RetryAttempts))
		httpClient   = transporthttp.NewStandardClient(transporthttp.WithTimeout(cfg.RPC.Timeout))

		reconcileChains = make(map[string]reconcile.Chain, len(cfg.RPC.Endpoints))
		nonceChains     = make(map[string]nonce.Chain, len(cfg.RPC.Endpoints))
		balanceChains   = make(map[string]balance.Chain, len(cfg.RPC.Endpoints))
	)

	for chainID, endpoint := range cfg.RPC.Endpoints {
		client := ethereum.NewClient(jsonrpc.NewClient(httpClient, endpoint))

		reconcileChains[chainID] = client
		nonceChains[chainID] = client
		balanceChains[chainID] = client
	}

	reconciler := reconcile.New(transactions, reconcileChains, settled, reconcile.WithRetry(rpcRetry))

	balances := balance.New(balanceChains, settled, balance.WithRetry(rpcRetry))
	defer balances.Close()

	watchers := txwatch.NewRegistry(transactions, reconciler.Watch,
		txwatch.WithInterval(cfg.Watch.Interval),
		txwatch.WithMaxWatchDuration(cfg.Watch.MaxDuration),
		txwatch.WithFailureThreshold(cfg.Watch.FailureThreshold),
		txwatch.WithResync(cfg.Watch.Resync),
	)
	defer watchers.Close()

	return cli.Run(ctx, cli.Dependencies{
		Transactions: transactions,
		Watcher:      watchers,
		Nonces:       nonce.New(transactions, nonceChains, nonce.WithRetry(rpcRetry)),
		Balances:     balances,
		SharedStore:  shared,
	})
}

// newStore returns the Redis store when an address is configured and the
// in-memory store otherwise. shared reports whether other processes see the
// same transactions.
func newStore(ctx context.Context, cfg redisConfig) (store pendingtx.Store, shared bool, closeStore func() error, err error) {
	if cfg.Addr == "" {
		return memory.NewStore(), false, func() error { return nil }, nil
	}

	client, err := redis.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB)
	if err != nil {
		return nil, false, nil, err
	}

	return client, true, client.Close, nil
}
