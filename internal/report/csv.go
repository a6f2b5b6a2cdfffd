// Package report renders accumulated user records as CSV and HTML documents.
package report

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/smolz/github-saml-report/internal/entities"
)

// csvHeader is the fixed column order of the CSV report.
var csvHeader = []string{"Organization", "Username", "Email Address"}

// WriteCSV writes one row per record after the header, in input order.
func WriteCSV(w io.Writer, records []entities.UserRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		if err := cw.Write([]string{r.Organization, r.Username, r.Email}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
