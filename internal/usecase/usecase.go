// Package usecase orchestrates the fetch, extract and render pipeline.
package usecase

import (
	"fmt"
	"time"

	"github.com/smolz/github-saml-report/config"
	"github.com/smolz/github-saml-report/internal/identity"

	"go.uber.org/zap"
)

// Usecase runs the report pipeline against one identity provider.
type Usecase struct {
	log      *zap.SugaredLogger
	provider identity.Provider
	orgs     []string
	header   string
	outDir   string
	loc      *time.Location
	timeout  time.Duration
}

// Summary reports the outcome of a completed run.
type Summary struct {
	Users    int
	ByOrg    map[string]int
	CSVPath  string
	HTMLPath string
}

// New constructs the pipeline with its dependencies. The configured timezone
// must resolve against the host tz database.
func New(log *zap.SugaredLogger, provider identity.Provider, cfg *config.Config) (*Usecase, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Timezone, err)
	}

	return &Usecase{
		log:      log,
		provider: provider,
		orgs:     cfg.Organizations(),
		header:   cfg.HTMLHeader,
		outDir:   cfg.OutputDir,
		loc:      loc,
		timeout:  cfg.RequestTimeout,
	}, nil
}
