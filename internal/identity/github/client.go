// Package github implements the identity provider against the GitHub
// GraphQL API.
package github

import (
	"context"
	"fmt"

	"github.com/smolz/github-saml-report/config"
	"github.com/smolz/github-saml-report/internal/identity/query"

	"github.com/shurcooL/githubv4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// pageSize is the number of identity edges requested per organization.
// Only the first page is fetched.
const pageSize = 100

// Client queries SAML external identities over the GitHub GraphQL API.
type Client struct {
	log *zap.SugaredLogger
	gql *githubv4.Client
}

// NewClient creates a GitHub client authenticated with a static bearer token.
func NewClient(log *zap.SugaredLogger, cfg *config.Config) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.GitHubAPIToken})
	httpClient := oauth2.NewClient(context.Background(), src)
	httpClient.Timeout = cfg.RequestTimeout

	return &Client{
		log: log.Named("identity.github"),
		gql: githubv4.NewEnterpriseClient(cfg.GraphQLURL, httpClient),
	}
}

// ExternalIdentities runs the external-identities query for one organization
// and returns the decoded response.
func (c *Client) ExternalIdentities(ctx context.Context, org string) (*query.Response, error) {
	var resp query.Response
	vars := map[string]any{
		"login": githubv4.String(org),
		"first": githubv4.Int(pageSize),
	}

	if err := c.gql.Query(ctx, &resp, vars); err != nil {
		return nil, fmt.Errorf("query external identities of %s: %w", org, err)
	}

	if p := resp.Organization.SAMLIdentityProvider; p != nil {
		c.log.Debugw("identity provider resolved",
			"organization", org,
			"sso_url", p.SSOURL,
			"identities", len(p.ExternalIdentities.Edges),
		)
	}

	return &resp, nil
}
