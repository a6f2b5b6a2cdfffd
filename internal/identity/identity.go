// Package identity provides the factory for identity-provider backends.
package identity

import (
	"context"
	"fmt"

	"github.com/smolz/github-saml-report/config"
	"github.com/smolz/github-saml-report/internal/entities"
	"github.com/smolz/github-saml-report/internal/identity/github"
	"github.com/smolz/github-saml-report/internal/identity/query"

	"go.uber.org/zap"
)

// Provider fetches the linked external identities of an organization.
type Provider interface {
	ExternalIdentities(ctx context.Context, org string) (*query.Response, error)
}

// New constructs an identity-provider backend by name.
func New(name string, log *zap.SugaredLogger, cfg *config.Config) (Provider, error) {
	switch name {
	case "github":
		return github.NewClient(log, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %s", entities.ErrUnknownProvider, name)
	}
}
