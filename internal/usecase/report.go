package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/smolz/github-saml-report/internal/entities"
	"github.com/smolz/github-saml-report/internal/report"
)

const (
	displayStampLayout = "01-02-2006 15:04:05"
	fileStampLayout    = "2006-01-02_150405"
)

// writeReports renders the CSV and HTML files for one run. Both file names
// share a single timestamp taken in the configured timezone.
func (u *Usecase) writeReports(records []entities.UserRecord) (*Summary, error) {
	if err := os.MkdirAll(u.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", u.outDir, err)
	}

	now := time.Now().In(u.loc)
	stamp := now.Format(fileStampLayout)
	csvPath := filepath.Join(u.outDir, fmt.Sprintf("saml_users_%s.csv", stamp))
	htmlPath := filepath.Join(u.outDir, fmt.Sprintf("saml_users_%s.html", stamp))

	if err := u.writeCSVFile(csvPath, records); err != nil {
		return nil, err
	}
	u.log.Infow("csv file created", "path", csvPath, "users", len(records))

	page := report.Page{
		Title:       u.title(),
		Records:     records,
		GeneratedAt: now.Format(displayStampLayout),
		FileStamp:   stamp,
	}
	if err := u.writeHTMLFile(htmlPath, page); err != nil {
		return nil, err
	}
	u.log.Infow("html file created", "path", htmlPath)

	return &Summary{Users: len(records), CSVPath: csvPath, HTMLPath: htmlPath}, nil
}

// title composes the page heading from the configured header and the
// organization list.
func (u *Usecase) title() string {
	return fmt.Sprintf("%s %s with SSO account information", u.header, strings.Join(u.orgs, ", "))
}

func (u *Usecase) writeCSVFile(path string, records []entities.UserRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteCSV(f, records); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv: %w", err)
	}

	return f.Close()
}

func (u *Usecase) writeHTMLFile(path string, page report.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteHTML(f, page); err != nil {
		_ = f.Close()
		return fmt.Errorf("write html: %w", err)
	}

	return f.Close()
}
