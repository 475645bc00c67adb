package ingest

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"oem-insights/config"
	"oem-insights/models"
	"oem-insights/utils"
)

// Fetcher assembles one snapshot from the configured CSV sources. Sources
// are fetched concurrently through a rate-limited worker pool with retry;
// a failing source contributes zero records rather than failing the
// snapshot, so a network outage degrades to an empty dataset.
type Fetcher struct {
	cfg    *config.Config
	logger *utils.Logger
	parser *Parser
	pool   *utils.WorkerPool
	seen   *utils.SeqSet
	retry  *utils.RetryConfig
	client *http.Client
}

// NewFetcher creates a ready-to-use Fetcher.
func NewFetcher(cfg *config.Config, logger *utils.Logger) *Fetcher {
	return &Fetcher{
		cfg:    cfg,
		logger: logger,
		parser: NewParser(logger),
		pool:   utils.NewWorkerPool(cfg.MaxConcurrency, cfg.RateLimitPerSec),
		seen:   utils.NewSeqSet(),
		retry: &utils.RetryConfig{
			MaxAttempts: cfg.MaxRetries,
			BaseDelay:   2 * time.Second,
			Logger:      logger,
		},
		client: &http.Client{
			Timeout: time.Duration(cfg.FetchTimeoutMs) * time.Millisecond,
		},
	}
}

// Fetch retrieves and parses every configured source and merges the results
// into one snapshot, first source wins on duplicate sequence numbers.
// Records keep source-list order so snapshots are reproducible.
func (f *Fetcher) Fetch() []*models.Company {
	f.logger.Info("[ingest] Fetching snapshot from %d source(s)", len(f.cfg.DataSources))

	type sourceResult struct {
		index     int
		companies []*models.Company
	}

	var mu sync.Mutex
	var results []sourceResult

	for i, source := range f.cfg.DataSources {
		i, source := i, source
		f.pool.Submit(func() {
			companies := f.fetchSource(source)
			mu.Lock()
			results = append(results, sourceResult{index: i, companies: companies})
			mu.Unlock()
		})
	}
	f.pool.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })

	var snapshot []*models.Company
	duplicates := 0
	for _, res := range results {
		for _, c := range res.companies {
			if !f.seen.Add(c.SeqNo) {
				duplicates++
				continue
			}
			snapshot = append(snapshot, c)
		}
	}

	if duplicates > 0 {
		f.logger.Debug("[ingest] Skipped %d duplicate sequence numbers", duplicates)
	}
	f.logger.Info("[ingest] Snapshot ready: %d records", len(snapshot))
	return snapshot
}

// fetchSource reads one source with retry and parses it. Any terminal
// failure is logged and yields no records.
func (f *Fetcher) fetchSource(source string) []*models.Company {
	var raw string
	err := f.retry.Do("fetch "+source, func() error {
		var err error
		raw, err = f.read(source)
		return err
	})
	if err != nil {
		f.logger.Error("[ingest] Source %s unavailable: %v", source, err)
		return nil
	}

	companies := f.parser.Parse(raw)
	f.logger.Info("[ingest] Source %s: %d records", source, len(companies))
	return companies
}

// read fetches the raw document body from a URL or a file path.
func (f *Fetcher) read(source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := f.client.Get(source)
		if err != nil {
			return "", fmt.Errorf("ingest: get %q: %w", source, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("ingest: get %q: unexpected status %d", source, resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("ingest: read body of %q: %w", source, err)
		}
		return string(body), nil
	}

	body, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("ingest: read file %q: %w", source, err)
	}
	return string(body), nil
}
