package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/alexanderramin/folio/internal/advisor"
	"github.com/alexanderramin/folio/internal/cli"
	"github.com/alexanderramin/folio/internal/config"
	"github.com/alexanderramin/folio/internal/db"
	"github.com/alexanderramin/folio/internal/llm"
	folioLog "github.com/alexanderramin/folio/internal/log"
	"github.com/alexanderramin/folio/internal/metrics"
	"github.com/alexanderramin/folio/internal/server"
	"github.com/alexanderramin/folio/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	config.LoadDotEnv()

	// Determine DB path: env var or default ~/.folio/folio.db
	dbPath := os.Getenv("FOLIO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".folio", "folio.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	llmCfg := llm.LoadConfig()

	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}

	app := &cli.App{
		Profiles: service.NewProfileService(database, uow),
		Advisor:  advisor.NewAdviceService(llm.NewClient(llmCfg, observer)),
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
		Serve: func(ctx context.Context, addr string) error {
			return serve(ctx, addr, database, uow, llmCfg)
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// serve wires the HTTP server with structured logging and its own metrics
// registry, then blocks until ctx is cancelled.
func serve(ctx context.Context, addr string, database *sql.DB, uow db.UnitOfWork, llmCfg llm.LLMConfig) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading server config: %w", err)
	}
	if addr != "" {
		cfg.Address = addr
	}

	lvl, err := folioLog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := folioLog.InitLog(lvl)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()
	undo := zap.ReplaceGlobals(logger)
	defer undo()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	observers := llm.MultiObserver{llm.NewZapObserver(logger.Sugar().Named("llm")), recorder}
	if llmCfg.LogCalls {
		observers = append(observers, llm.NewLogObserver(os.Stderr))
	}

	srv := server.New(cfg, server.Options{
		Advisor:  advisor.NewAdviceService(llm.NewClient(llmCfg, observers)),
		Profiles: service.NewProfileService(database, uow, service.NewZapUseCaseObserver(logger.Sugar().Named("profiles"))),
		Logger:   logger,
		Registry: registry,
		Recorder: recorder,
	})

	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Address, err)
	}
	logger.Sugar().Infow("starting folio server",
		"address", cfg.Address,
		"provider", llmCfg.Provider,
		"model", llmCfg.Model,
	)
	return srv.Run(ctx, ln)
}
