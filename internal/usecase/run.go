package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/smolz/github-saml-report/internal/entities"
	"github.com/smolz/github-saml-report/internal/mapper"
)

// Run queries every configured organization, accumulates the linked
// identities and writes both report files. Failing organizations are logged
// and skipped; a run without a single record returns entities.ErrNoRecords
// and writes nothing.
func (u *Usecase) Run(ctx context.Context) (*Summary, error) {
	u.log.Infow("querying organizations", "count", len(u.orgs))

	records := make([]entities.UserRecord, 0)
	counts := make(map[string]int, len(u.orgs))
	for _, org := range u.orgs {
		u.log.Infow("fetching users", "organization", org)

		recs, err := u.fetchOrg(ctx, org)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.Is(err, entities.ErrMalformedResponse):
			u.log.Warnw("could not parse users", "organization", org, "error", err)
			continue
		default:
			u.log.Warnw("fetch failed", "organization", org, "error", err)
			continue
		}

		u.log.Infow("found users", "organization", org, "count", len(recs))
		records = append(records, recs...)
		counts[org] = len(recs)
	}

	if len(records) == 0 {
		return nil, entities.ErrNoRecords
	}
	u.log.Infow("total users found", "count", len(records))

	summary, err := u.writeReports(records)
	if err != nil {
		return nil, err
	}
	summary.ByOrg = counts

	return summary, nil
}

// fetchOrg retrieves and flattens one organization under the per-request
// timeout.
func (u *Usecase) fetchOrg(ctx context.Context, org string) ([]entities.UserRecord, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	resp, err := u.provider.ExternalIdentities(ctx, org)
	if err != nil {
		return nil, err
	}

	return mapper.Records(resp, org)
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
