// Package mapper flattens identity-provider responses into report records.
package mapper

import (
	"fmt"

	"github.com/smolz/github-saml-report/internal/entities"
	"github.com/smolz/github-saml-report/internal/identity/query"
)

// Records builds one entities.UserRecord per identity edge of an
// organization response. A missing object anywhere along the path voids the
// whole organization, so a partially readable reply never yields a partial
// record set.
func Records(resp *query.Response, org string) ([]entities.UserRecord, error) {
	if resp == nil || resp.Organization.SAMLIdentityProvider == nil {
		return nil, fmt.Errorf("%w: organization %s has no saml identity provider", entities.ErrMalformedResponse, org)
	}

	edges := resp.Organization.SAMLIdentityProvider.ExternalIdentities.Edges
	records := make([]entities.UserRecord, 0, len(edges))
	for _, e := range edges {
		if e.Node.User == nil || e.Node.SAMLIdentity == nil {
			return nil, fmt.Errorf("%w: identity %s of %s is not linked to a user", entities.ErrMalformedResponse, e.Node.GUID, org)
		}

		records = append(records, entities.UserRecord{
			Organization: org,
			Username:     e.Node.User.Login,
			Email:        e.Node.SAMLIdentity.NameID,
		})
	}

	return records, nil
}
