// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/autheliarr/autheliarr/internal/authelia"
	"github.com/autheliarr/autheliarr/internal/config"
	"github.com/autheliarr/autheliarr/internal/db"
	"github.com/autheliarr/autheliarr/internal/docker"
	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
	"github.com/autheliarr/autheliarr/internal/monitoring/prometheus"
	"github.com/autheliarr/autheliarr/internal/secrets"
	"github.com/autheliarr/autheliarr/internal/tracing"
	"github.com/autheliarr/autheliarr/internal/validation"
	"github.com/autheliarr/autheliarr/internal/wizarr"
	"github.com/autheliarr/autheliarr/pkg/hashing"
	"github.com/autheliarr/autheliarr/pkg/sync"
	"github.com/autheliarr/autheliarr/pkg/web"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "sync reconciles Wizarr users into Authelia",
	Long: `Run one reconciliation pass, or repeat on a fixed interval when
SYNC_INTERVAL is greater than zero. Configuration is environment driven,
the list of variables is available in the readme.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSync(); err != nil {
			fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("autheliarr", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbClient, err := db.NewDBClient(db.Config{Path: specs.WizarrDBPath, ReadOnly: true}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to open wizarr database: %v", err)
	}
	defer dbClient.Close()

	source := wizarr.NewClient(dbClient, tracer, monitor, logger)
	target := authelia.NewFileStore(specs.AutheliaUsersPath, tracer, monitor, logger)

	var restarter docker.RestarterInterface
	if specs.RestartAuthelia && !specs.DryRun {
		restarter, err = docker.NewClient(specs.AutheliaContainer, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create docker client: %v", err)
		}
	} else {
		restarter = docker.NewNoopRestarter(logger)
	}

	var sink secrets.SinkInterface
	if specs.SecureLogPath != "" {
		sink = secrets.NewFileSink(specs.SecureLogPath, logger)
	} else {
		sink = secrets.NewNoopSink(logger)
	}

	service := sync.NewService(
		sync.Config{DefaultGroup: specs.DefaultGroup, DryRun: specs.DryRun},
		source,
		target,
		hashing.NewArgon2Hasher(),
		restarter,
		validation.NewValidator(),
		sink,
		tracer,
		monitor,
		logger,
	)

	logger.Infof("wizarr db: %s", specs.WizarrDBPath)
	logger.Infof("authelia users: %s", specs.AutheliaUsersPath)
	logger.Infof("default group: %s", specs.DefaultGroup)
	logger.Infof("dry run: %v, restart authelia: %v (container %q)", specs.DryRun, specs.RestartAuthelia, specs.AutheliaContainer)

	if specs.SyncInterval <= 0 {
		// Single pass: any pass failure is fatal.
		_, err := service.Run(context.Background())
		return err
	}

	return runLoop(service, specs, tracer, monitor, logger)
}

// runLoop repeats passes on a fixed interval, strictly serialized. An
// interrupt is honored between passes only, an in-flight pass finishes.
func runLoop(service sync.ServiceInterface, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) error {
	interval := time.Duration(specs.SyncInterval) * time.Second
	logger.Infof("running in periodic mode, syncing every %s", interval)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      web.NewRouter(tracer, monitor, logger),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("observability server error: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Security().SystemStartup()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := service.Run(context.Background()); err != nil {
			logger.Errorf("sync failed: %v, retrying in %s", err, interval)
		} else {
			logger.Infof("waiting %s until next sync", interval)
		}

		select {
		case <-c:
			logger.Info("shutting down gracefully")
			logger.Security().SystemShutdown()

			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()

			return srv.Shutdown(ctx)
		case <-ticker.C:
		}
	}
}
