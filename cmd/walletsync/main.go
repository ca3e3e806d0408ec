// Command walletsync is a terminal client for the custodial wallet API.
//
// Configuration comes from WALLETSYNC_* environment variables, see the
// config package. Logs are written as JSON to stderr and, with telemetry
// enabled, exported over OTLP as well.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/walletsync/internal/config"
	"github.com/gabapcia/walletsync/internal/dashboard"
	"github.com/gabapcia/walletsync/internal/handlers/cli"
	"github.com/gabapcia/walletsync/internal/infra/storage/redis"
	"github.com/gabapcia/walletsync/internal/pkg/logger"
	"github.com/gabapcia/walletsync/internal/pkg/resilience/retry"
	"github.com/gabapcia/walletsync/internal/pkg/telemetry"
	"github.com/gabapcia/walletsync/internal/pkg/transport/graphql"
	transporthttp "github.com/gabapcia/walletsync/internal/pkg/transport/http"
	"github.com/gabapcia/walletsync/internal/session"
	"github.com/gabapcia/walletsync/internal/walletapi"
)

const serviceName = "walletsync"

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", cli.ErrorMessage(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		opts := []telemetry.Option{
			telemetry.WithEndpoint(cfg.Telemetry.Endpoint),
			telemetry.WithServiceVersion(version),
		}
		if cfg.Telemetry.Insecure {
			opts = append(opts, telemetry.WithInsecure())
		}

		shutdown, err := telemetry.Init(ctx, serviceName, opts...)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	// After telemetry, so the logger picks up the OTLP log provider.
	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	storage, closeStorage, err := newSessionStorage(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeStorage()

	// The token source reads the session lazily, so the session service can
	// be built on top of the API client that uses it.
	var sessions session.Service

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTP.Timeout),
		transporthttp.WithRetryMax(cfg.HTTP.RetryMax),
	)
	gql := graphql.NewClient(httpClient.StandardClient(), cfg.APIEndpoint,
		graphql.WithTokenSource(func(ctx context.Context) (string, error) {
			return sessions.Token(ctx)
		}),
	)
	wallet := walletapi.New(gql, walletapi.WithTransactionCacheSize(cfg.HTTP.CacheSize))

	sessions = session.New(wallet,
		session.WithStorage(storage),
		session.WithProfile(cfg.Profile),
	)

	if cfg.Token != "" {
		if _, err := sessions.Resume(ctx, cfg.Token); err != nil {
			return fmt.Errorf("resume session from token: %w", err)
		}
	}

	opts := []cli.Option{
		cli.WithDashboardOptions(dashboardOptions(cfg.Dashboard, sessions)...),
	}
	if !cfg.Redis.UseRedis() {
		opts = append(opts, cli.WithEphemeralSessions())
	}

	return cli.Run(ctx, sessions, wallet, opts...)
}

func newSessionStorage(ctx context.Context, cfg config.Redis) (session.Storage, func(), error) {
	if !cfg.UseRedis() {
		return session.NewMemoryStorage(), func() {}, nil
	}

	client, err := redis.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn(ctx, "failed to close redis", "error", err)
		}
	}, nil
}

func dashboardOptions(cfg config.Dashboard, sessions session.Service) []dashboard.Option {
	opts := []dashboard.Option{
		dashboard.WithPageSize(cfg.PageSize),
		dashboard.WithHistoryRefreshDelay(cfg.HistoryRefreshDelay),
		dashboard.WithFetchTimeout(cfg.FetchTimeout),
		dashboard.WithUnauthenticatedHandler(sessions.Expire),
	}

	if cfg.SettlementAttempts > 0 {
		opts = append(opts, dashboard.WithSettlementRetry(retry.New(
			retry.WithAttempts(cfg.SettlementAttempts),
			retry.WithDelay(cfg.SettlementDelay),
			retry.WithMaxDelay(4*cfg.SettlementDelay),
		)))
	}

	return opts
}
