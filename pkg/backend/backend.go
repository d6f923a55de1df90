package backend

import (
	"context"

	"github.com/domaos/domain-radar/pkg/db"
	"github.com/domaos/domain-radar/pkg/model"
	"github.com/domaos/domain-radar/pkg/registry"
)

// Registry is the slice of the upstream client the pipeline needs.
type Registry interface {
	ListNames(ctx context.Context, skip, take int, tlds []string) (registry.Page, error)
	GetName(ctx context.Context, name string) (*registry.Name, error)
}

type Backend interface {
	Ingest(ctx context.Context, batchSize, maxBatches int, tlds []string) model.IngestResult
	RefreshDomain(ctx context.Context, name string) model.RefreshResult
	RefreshTld(ctx context.Context, tld string) model.IngestResult
	RefreshAll(ctx context.Context) model.IngestResult

	Analyze(domains []string) []model.AnalysisResult

	TopDomains(limit int) ([]db.Domain, error)
	DomainByName(name string) (db.Domain, error)
	DomainsByTld(tld string, limit int) ([]db.Domain, error)
	SearchDomains(sld string, limit int) ([]db.Domain, error)

	TldStats(tld string) (db.TldStat, []model.WeeklyTrendEntry, error)
	AllTldStats(limit int) ([]db.TldStat, error)
	TldTrends(tlds []string, weeks int) ([]model.TldTrend, error)

	SupportedTlds() ([]db.SupportedTld, error)
	SeedSupportedTlds() (int, error)

	StartRefreshDaemon(done <-chan struct{})
}
