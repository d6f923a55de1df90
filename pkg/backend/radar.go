package backend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/domaos/domain-radar/pkg/db"
	"github.com/domaos/domain-radar/pkg/model"
	"github.com/domaos/domain-radar/pkg/registry"
	"github.com/domaos/domain-radar/pkg/scoring"
	"github.com/sirupsen/logrus"
)

const (
	defaultBatchSize  = 100
	defaultMaxBatches = 10
	pageDelay         = 100 * time.Millisecond
)

type Options struct {
	RefreshIntervalSeconds int64
	RefreshBatchSize       int
	RefreshMaxBatches      int
}

type backend struct {
	db       db.Database
	registry Registry
	log      *logrus.Entry

	refreshIntervalSeconds int64
	refreshBatchSize       int
	refreshMaxBatches      int

	pageDelay time.Duration
	now       func() time.Time

	// serializes TLD aggregate recomputes; the pipeline itself is
	// sequential but the API and the daemon can both trigger refreshes
	statsMu sync.Mutex
}

func NewBackend(database db.Database, reg Registry, log *logrus.Entry, opts Options) Backend {
	return &backend{
		db:                     database,
		registry:               reg,
		log:                    log,
		refreshIntervalSeconds: opts.RefreshIntervalSeconds,
		refreshBatchSize:       opts.RefreshBatchSize,
		refreshMaxBatches:      opts.RefreshMaxBatches,
		pageDelay:              pageDelay,
		now:                    time.Now,
	}
}

// Ingest pages through the upstream registry and upserts every record it can
// parse, refreshing the owning TLD's aggregate after each write. Failures
// are collected into the result, not returned: a partial run is still a
// usable run. Context cancellation stops the loop early without recording an
// error.
func (b *backend) Ingest(ctx context.Context, batchSize, maxBatches int, tlds []string) model.IngestResult {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	if maxBatches <= 0 {
		maxBatches = defaultMaxBatches
	}
	if len(tlds) == 0 {
		tlds = registry.SupportedTlds()
	}

	result := model.IngestResult{Errors: []string{}}
	skip := 0
	hasMore := true

	for hasMore && result.Batches < maxBatches {
		if ctx.Err() != nil {
			return result
		}

		b.log.WithFields(logrus.Fields{"batch": result.Batches + 1, "skip": skip}).Debug("fetching batch")

		page, err := b.registry.ListNames(ctx, skip, batchSize, tlds)
		if err != nil {
			if ctx.Err() != nil {
				return result
			}
			result.Errors = append(result.Errors, fmt.Sprintf("batch %d: %v", result.Batches+1, err))
			break
		}

		hasMore = page.HasNextPage

		if len(page.Items) == 0 {
			break
		}

		for _, item := range page.Items {
			if ctx.Err() != nil {
				return result
			}
			if err := b.processName(item); err != nil {
				b.log.WithError(err).Warnf("skipping record %q", item.Name)
				result.Skipped++
				continue
			}
			result.TotalProcessed++
		}

		skip += batchSize
		result.Batches++

		if hasMore && result.Batches < maxBatches {
			// keep some distance from upstream rate limits
			select {
			case <-ctx.Done():
				return result
			case <-time.After(b.pageDelay):
			}
		}
	}

	b.log.WithFields(logrus.Fields{
		"totalProcessed": result.TotalProcessed,
		"batches":        result.Batches,
		"skipped":        result.Skipped,
		"errors":         len(result.Errors),
	}).Info("ingestion run completed")

	return result
}

// processName normalizes one upstream record into a scored catalog row and
// refreshes its TLD aggregate.
func (b *backend) processName(item registry.Name) error {
	sld, tld, err := splitDomainName(item.Name)
	if err != nil {
		return err
	}

	var tokenID, networkID string
	owner := item.ClaimedBy
	if tok := item.OwnershipToken(); tok != nil {
		tokenID = tok.TokenID
		networkID = tok.NetworkID
		if owner == "" {
			owner = tok.OwnerAddress
		}
	}

	ianaID := item.Registrar.IanaID

	record := db.Domain{
		Name:                 item.Name,
		Sld:                  sld,
		Tld:                  tld,
		Score:                scoring.Score(sld, tld),
		Length:               len(sld),
		ContainsSaasKeywords: scoring.ContainsSaasKeyword(sld),
		SupportedTld:         scoring.IsSupportedTld(tld),
		OwnerAddress:         owner,
		ExpiresAt:            item.ExpiresAt,
		TokenID:              tokenID,
		NetworkID:            networkID,
		RegistrarIanaID:      &ianaID,
		LastUpdated:          b.now().UTC().Format(time.RFC3339),
	}

	if _, err := b.db.UpsertDomain(record); err != nil {
		return err
	}

	return b.updateTldStats(tld)
}

// splitDomainName takes the last label as the TLD and the one before it as
// the SLD. Records without a dot cannot be placed in the catalog.
func splitDomainName(name string) (sld, tld string, err error) {
	parts := strings.Split(name, ".")
	if len(parts) < 2 {
		return "", "", fmt.Errorf("invalid domain name: %q", name)
	}
	return parts[len(parts)-2], parts[len(parts)-1], nil
}

func (b *backend) RefreshDomain(ctx context.Context, name string) model.RefreshResult {
	item, err := b.registry.GetName(ctx, name)
	if err != nil {
		return model.RefreshResult{Error: err.Error()}
	}
	if item == nil {
		return model.RefreshResult{Error: "domain not found"}
	}
	if err := b.processName(*item); err != nil {
		return model.RefreshResult{Error: err.Error()}
	}
	return model.RefreshResult{Success: true, Processed: 1}
}

func (b *backend) RefreshTld(ctx context.Context, tld string) model.IngestResult {
	return b.Ingest(ctx, 50, 5, []string{tld})
}

func (b *backend) RefreshAll(ctx context.Context) model.IngestResult {
	return b.Ingest(ctx, 100, 20, nil)
}

func (b *backend) TopDomains(limit int) ([]db.Domain, error) {
	if limit <= 0 {
		limit = 10
	}
	return b.db.TopDomainsByScore(limit)
}

func (b *backend) DomainByName(name string) (db.Domain, error) {
	logrus.Debugf("get catalog row for domain: %v", name)
	return b.db.GetDomainByName(name)
}

func (b *backend) DomainsByTld(tld string, limit int) ([]db.Domain, error) {
	if limit <= 0 {
		limit = 50
	}
	return b.db.GetDomainsByTld(tld, limit)
}

func (b *backend) SearchDomains(sld string, limit int) ([]db.Domain, error) {
	if limit <= 0 {
		limit = 10
	}
	return b.db.SearchDomainsBySld(sld, limit)
}

func (b *backend) AllTldStats(limit int) ([]db.TldStat, error) {
	if limit <= 0 {
		limit = 20
	}
	return b.db.ListTldStats(limit)
}

func (b *backend) TldStats(tld string) (db.TldStat, []model.WeeklyTrendEntry, error) {
	stat, err := b.db.GetTldStat(tld)
	if err != nil {
		return stat, nil, err
	}
	if stat.ID == 0 {
		return stat, nil, nil
	}
	trend, err := stat.Trend()
	return stat, trend, err
}

func (b *backend) SupportedTlds() ([]db.SupportedTld, error) {
	return b.db.ListSupportedTlds()
}

func (b *backend) SeedSupportedTlds() (int, error) {
	return b.db.SeedSupportedTlds(db.DefaultSupportedTlds())
}
