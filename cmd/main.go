// Package main wires the SAML user report pipeline.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smolz/github-saml-report/config"
	"github.com/smolz/github-saml-report/internal/entities"
	"github.com/smolz/github-saml-report/internal/identity"
	"github.com/smolz/github-saml-report/internal/usecase"
	"github.com/smolz/github-saml-report/pkg/logger"

	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", "config.ini", "path to the INI configuration file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log = log.With("run_id", uuid.NewString())

	provider, err := identity.New("github", log, cfg)
	if err != nil {
		log.Errorw("identity provider initialization error", "error", err)
		os.Exit(1)
	}

	uc, err := usecase.New(log, provider, cfg)
	if err != nil {
		log.Errorw("pipeline initialization error", "error", err)
		os.Exit(1)
	}

	summary, err := uc.Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		log.Warnw("operation cancelled by user")
		return
	case errors.Is(err, entities.ErrNoRecords):
		log.Errorw("no users found", "organizations", cfg.Organizations())
		log.Infow("check that the API token has the read:org scope")
		log.Infow("check that the organizations have SAML enabled")
		log.Infow("check that the organization names are correct")
		os.Exit(1)
	default:
		log.Errorw("report generation failed", "error", err)
		os.Exit(1)
	}

	log.Infow("all files generated",
		"users", summary.Users,
		"csv", summary.CSVPath,
		"html", summary.HTMLPath,
	)
}
