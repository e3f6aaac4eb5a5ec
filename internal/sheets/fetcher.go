// Package sheets fetches availability data out of a Google Spreadsheet,
// preferring the structured API when a key is configured and falling back
// to the public CSV export otherwise.
package sheets

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/kasikocoffeeatery/adminKasiko/internal/httpretry"
	"github.com/kasikocoffeeatery/adminKasiko/internal/sheetcsv"
)

const (
	defaultExportBaseURL = "https://docs.google.com"
	fetchAttempts        = 3

	// Google rejects unidentified fetchers on the export endpoint.
	browserUserAgent = "Mozilla/5.0"
)

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9_-]+)`)

var (
	// ErrInvalidURL means the sharing link carries no spreadsheet id.
	ErrInvalidURL = errors.New("invalid Google Sheets URL")

	// ErrHTMLBody means the export endpoint answered with a permission or
	// rate-limit page instead of CSV data.
	ErrHTMLBody = errors.New("upstream returned HTML instead of CSV")
)

// UpstreamError carries a non-success export status so handlers can mirror
// it back to the caller.
type UpstreamError struct {
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to fetch spreadsheet: %s", e.Status)
}

// ExtractSpreadsheetID pulls the canonical id out of a sharing link of the
// form https://docs.google.com/spreadsheets/d/{ID}/edit...
func ExtractSpreadsheetID(rawURL string) (string, error) {
	m := spreadsheetIDPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrInvalidURL
	}

	return m[1], nil
}

type Config struct {
	// APIKey enables the Sheets API path. Empty means export-only.
	APIKey string

	// ExportBaseURL overrides the export host, for tests.
	ExportBaseURL string

	Client *http.Client
	Logger *zap.SugaredLogger
}

type Fetcher struct {
	service    *gsheets.Service
	client     *http.Client
	exportBase string
	logger     *zap.SugaredLogger
}

// Result is one fetched sheet: the CSV text plus its content hash.
type Result struct {
	CSV  string
	Hash string
}

func New(cfg Config) (*Fetcher, error) {
	f := &Fetcher{
		client:     cfg.Client,
		exportBase: cfg.ExportBaseURL,
		logger:     cfg.Logger,
	}

	if f.client == nil {
		f.client = &http.Client{Timeout: 15 * time.Second}
	}
	if f.exportBase == "" {
		f.exportBase = defaultExportBaseURL
	}
	if f.logger == nil {
		f.logger = zap.NewNop().Sugar()
	}

	if cfg.APIKey != "" {
		service, err := gsheets.NewService(context.Background(), option.WithAPIKey(cfg.APIKey))
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		f.service = service
	}

	return f, nil
}

// Fetch retrieves one tab of a spreadsheet as CSV. The API path may fail
// for any reason without surfacing it; the export fallback owns the error
// the caller sees.
func (f *Fetcher) Fetch(ctx context.Context, spreadsheetID, gid string) (Result, error) {
	if f.service != nil {
		result, err := f.fetchViaAPI(ctx, spreadsheetID)
		if err == nil {
			return result, nil
		}
		f.logger.Warnw("sheets API fetch failed, falling back to CSV export",
			"spreadsheet_id", spreadsheetID, "error", err)
	}

	return f.fetchViaExport(ctx, spreadsheetID, gid)
}

func (f *Fetcher) fetchViaAPI(ctx context.Context, spreadsheetID string) (Result, error) {
	resp, err := f.service.Spreadsheets.Values.Get(spreadsheetID, "A:Z").Context(ctx).Do()
	if err != nil {
		return Result{}, fmt.Errorf("failed to read spreadsheet: %w", err)
	}

	if len(resp.Values) == 0 {
		return Result{}, errors.New("no data found in spreadsheet")
	}

	values := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, fmt.Sprintf("%v", cell))
		}
		values = append(values, cells)
	}

	csvText := sheetcsv.ToCSV(values)

	return Result{CSV: csvText, Hash: HashCSV(csvText)}, nil
}

func (f *Fetcher) fetchViaExport(ctx context.Context, spreadsheetID, gid string) (Result, error) {
	exportURL := fmt.Sprintf("%s/spreadsheets/d/%s/export?format=csv&gid=%s",
		f.exportBase, spreadsheetID, gid)

	build := func() (*http.Request, error) {
		req, err := http.NewRequest(http.MethodGet, exportURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", browserUserAgent)
		return req, nil
	}

	resp, err := httpretry.Do(ctx, f.client, build, fetchAttempts, httpretry.DefaultBackoff)
	if err != nil {
		return Result{}, fmt.Errorf("failed to fetch spreadsheet export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, &UpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read spreadsheet export: %w", err)
	}

	csvText := string(body)
	if looksLikeHTML(csvText) {
		return Result{}, ErrHTMLBody
	}

	return Result{CSV: csvText, Hash: HashCSV(csvText)}, nil
}

// HashCSV is the content hash used for conditional responses.
func HashCSV(csvText string) string {
	sum := sha1.Sum([]byte(csvText))
	return hex.EncodeToString(sum[:])
}

func looksLikeHTML(body string) bool {
	probe := strings.ToLower(strings.TrimSpace(body))
	if len(probe) > 512 {
		probe = probe[:512]
	}

	return strings.HasPrefix(probe, "<!doctype") ||
		strings.HasPrefix(probe, "<html") ||
		strings.Contains(probe, "<html")
}
