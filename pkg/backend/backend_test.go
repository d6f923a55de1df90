package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/domaos/domain-radar/pkg/db"
	"github.com/domaos/domain-radar/pkg/registry"
	"github.com/sirupsen/logrus"
)

type fakeRegistry struct {
	pages []registry.Page
	err   error
	names map[string]*registry.Name
	calls int
}

func (f *fakeRegistry) ListNames(ctx context.Context, skip, take int, tlds []string) (registry.Page, error) {
	f.calls++
	if f.err != nil {
		return registry.Page{}, f.err
	}
	if f.calls > len(f.pages) {
		return registry.Page{}, nil
	}
	return f.pages[f.calls-1], nil
}

func (f *fakeRegistry) GetName(ctx context.Context, name string) (*registry.Name, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.names[name], nil
}

func record(name string) registry.Name {
	return registry.Name{
		Name:      name,
		ExpiresAt: "2026-01-01T00:00:00Z",
		ClaimedBy: "0xabc",
		Registrar: registry.Registrar{Name: "Test Registrar", IanaID: 1234},
		Tokens: []registry.Token{
			{TokenID: "1", NetworkID: "eip155:1", OwnerAddress: "0xdef", Type: "OWNERSHIP"},
		},
	}
}

func testBackend(t *testing.T, reg Registry) (*backend, db.Database) {
	t.Helper()
	database, err := db.New(context.Background(), "sqlite", ":memory:", nil)
	if err != nil {
		t.Fatal(err)
	}
	b := NewBackend(database, reg, logrus.WithField("test", t.Name()), Options{}).(*backend)
	b.pageDelay = 0
	return b, database
}

func TestIngestEndToEnd(t *testing.T) {
	reg := &fakeRegistry{
		pages: []registry.Page{
			{Items: []registry.Name{record("alpha.com"), record("beta.com")}, HasNextPage: true},
			{Items: []registry.Name{record("gamma.com"), record("delta.com")}, HasNextPage: false},
		},
	}
	b, database := testBackend(t, reg)

	result := b.Ingest(context.Background(), 2, 10, []string{"com"})

	if result.TotalProcessed != 4 || result.Batches != 2 || len(result.Errors) != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}

	row, err := database.GetDomainByName("alpha.com")
	if err != nil {
		t.Fatal(err)
	}
	if row.ID == 0 || row.Sld != "alpha" || row.Tld != "com" {
		t.Errorf("domain not stored correctly: %+v", row)
	}
	if row.OwnerAddress != "0xabc" {
		t.Errorf("claimedBy should win over the token owner, got %q", row.OwnerAddress)
	}
	if row.RegistrarIanaID == nil || *row.RegistrarIanaID != 1234 {
		t.Errorf("registrar iana id lost: %+v", row.RegistrarIanaID)
	}

	stat, err := database.GetTldStat("com")
	if err != nil {
		t.Fatal(err)
	}
	if stat.ID == 0 || stat.DomainCount != 4 {
		t.Errorf("tld aggregate not maintained: %+v", stat)
	}
}

func TestIngestUpstreamErrorIsCollected(t *testing.T) {
	reg := &fakeRegistry{err: &registry.GraphQLError{Messages: []string{"malformed query"}}}
	b, _ := testBackend(t, reg)

	result := b.Ingest(context.Background(), 2, 10, []string{"com"})

	if result.TotalProcessed != 0 || result.Batches != 0 {
		t.Errorf("expected no progress, got %+v", result)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error entry, got %v", result.Errors)
	}
	if reg.calls != 1 {
		t.Errorf("the run must abort after the failing batch, got %d calls", reg.calls)
	}
}

func TestIngestSkipsUnparsableRecords(t *testing.T) {
	reg := &fakeRegistry{
		pages: []registry.Page{
			{Items: []registry.Name{record("good.com"), record("nodot")}, HasNextPage: false},
		},
	}
	b, _ := testBackend(t, reg)

	result := b.Ingest(context.Background(), 2, 10, []string{"com"})

	if result.TotalProcessed != 1 || result.Skipped != 1 || len(result.Errors) != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestIngestStopsOnEmptyPage(t *testing.T) {
	reg := &fakeRegistry{
		pages: []registry.Page{
			{Items: nil, HasNextPage: true},
		},
	}
	b, _ := testBackend(t, reg)

	result := b.Ingest(context.Background(), 2, 10, []string{"com"})
	if result.TotalProcessed != 0 || result.Batches != 0 || len(result.Errors) != 0 {
		t.Errorf("an empty page is exhaustion, not an error: %+v", result)
	}
}

func TestIngestHonorsCancellation(t *testing.T) {
	reg := &fakeRegistry{
		pages: []registry.Page{
			{Items: []registry.Name{record("alpha.com")}, HasNextPage: true},
		},
	}
	b, _ := testBackend(t, reg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := b.Ingest(ctx, 2, 10, []string{"com"})
	if result.TotalProcessed != 0 || len(result.Errors) != 0 {
		t.Errorf("cancellation is a graceful stop, not a failure: %+v", result)
	}
}

func TestIngestRespectsMaxBatches(t *testing.T) {
	reg := &fakeRegistry{
		pages: []registry.Page{
			{Items: []registry.Name{record("a.com")}, HasNextPage: true},
			{Items: []registry.Name{record("b.com")}, HasNextPage: true},
			{Items: []registry.Name{record("c.com")}, HasNextPage: true},
		},
	}
	b, _ := testBackend(t, reg)

	result := b.Ingest(context.Background(), 1, 2, []string{"com"})
	if result.Batches != 2 || result.TotalProcessed != 2 {
		t.Errorf("expected the run to stop after 2 batches: %+v", result)
	}
}

func TestTldAggregateAverage(t *testing.T) {
	b, database := testBackend(t, &fakeRegistry{})

	for name, score := range map[string]int{"a.io": 60, "b.io": 70, "c.io": 80} {
		if _, err := database.UpsertDomain(db.Domain{Name: name, Sld: name[:1], Tld: "io", Score: score}); err != nil {
			t.Fatal(err)
		}
	}

	if err := b.updateTldStats("io"); err != nil {
		t.Fatal(err)
	}

	stat, err := database.GetTldStat("io")
	if err != nil {
		t.Fatal(err)
	}
	if stat.AverageScore != 70 || stat.DomainCount != 3 {
		t.Errorf("expected average 70 over 3 domains, got %+v", stat)
	}
}

func TestTldAggregateEmptyTldIsNoop(t *testing.T) {
	b, database := testBackend(t, &fakeRegistry{})

	if err := b.updateTldStats("empty"); err != nil {
		t.Fatal(err)
	}
	stat, err := database.GetTldStat("empty")
	if err != nil {
		t.Fatal(err)
	}
	if stat.ID != 0 {
		t.Errorf("no row should be created for a TLD with no domains: %+v", stat)
	}
}

func TestWeeklyTrendCapAndOrder(t *testing.T) {
	b, database := testBackend(t, &fakeRegistry{})

	if _, err := database.UpsertDomain(db.Domain{Name: "a.io", Sld: "a", Tld: "io", Score: 80}); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		week := base.AddDate(0, 0, 7*i)
		b.now = func() time.Time { return week }
		if err := b.updateTldStats("io"); err != nil {
			t.Fatal(err)
		}
	}

	stat, err := database.GetTldStat("io")
	if err != nil {
		t.Fatal(err)
	}
	trend, err := stat.Trend()
	if err != nil {
		t.Fatal(err)
	}
	if len(trend) != 12 {
		t.Fatalf("expected the trend capped at 12 weeks, got %d", len(trend))
	}
	if trend[0].Week != "2025-02" {
		t.Errorf("the oldest week must be dropped, trend starts at %q", trend[0].Week)
	}
	if trend[len(trend)-1].Week != "2025-13" {
		t.Errorf("most recent week missing, trend ends at %q", trend[len(trend)-1].Week)
	}
}

func TestWeeklyTrendSameWeekOverwrites(t *testing.T) {
	b, database := testBackend(t, &fakeRegistry{})

	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if _, err := database.UpsertDomain(db.Domain{Name: "a.io", Sld: "a", Tld: "io", Score: 60}); err != nil {
		t.Fatal(err)
	}
	if err := b.updateTldStats("io"); err != nil {
		t.Fatal(err)
	}

	if _, err := database.UpsertDomain(db.Domain{Name: "b.io", Sld: "b", Tld: "io", Score: 80}); err != nil {
		t.Fatal(err)
	}
	if err := b.updateTldStats("io"); err != nil {
		t.Fatal(err)
	}

	stat, err := database.GetTldStat("io")
	if err != nil {
		t.Fatal(err)
	}
	trend, err := stat.Trend()
	if err != nil {
		t.Fatal(err)
	}
	if len(trend) != 1 {
		t.Fatalf("expected a single entry for the week, got %d", len(trend))
	}
	if trend[0].AverageScore != 70 || trend[0].Count != 2 {
		t.Errorf("the week's entry must be overwritten in place: %+v", trend[0])
	}
}

func TestWeekString(t *testing.T) {
	tests := []struct {
		date time.Time
		want string
	}{
		// Jan 1 2025 is a Wednesday: (0 + 3 + 1) / 7 rounded up = 1
		{time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), "2025-01"},
		{time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC), "2025-02"},
		// Jan 1 2023 is a Sunday: (0 + 0 + 1) / 7 rounded up = 1
		{time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), "2023-01"},
		// Dec 31 2023: (364 + 0 + 1) / 7 rounded up = 53
		{time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC), "2023-53"},
	}
	for _, tt := range tests {
		if got := weekString(tt.date); got != tt.want {
			t.Errorf("weekString(%v) = %q, want %q", tt.date, got, tt.want)
		}
	}
}

func TestRefreshDomain(t *testing.T) {
	item := record("fresh.io")
	reg := &fakeRegistry{names: map[string]*registry.Name{"fresh.io": &item}}
	b, database := testBackend(t, reg)

	result := b.RefreshDomain(context.Background(), "fresh.io")
	if !result.Success || result.Processed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}

	row, err := database.GetDomainByName("fresh.io")
	if err != nil {
		t.Fatal(err)
	}
	if row.ID == 0 {
		t.Error("refreshed domain not stored")
	}

	missing := b.RefreshDomain(context.Background(), "missing.io")
	if missing.Success || missing.Error == "" {
		t.Errorf("expected a not-found error, got %+v", missing)
	}
}

func TestRefreshDomainUpstreamError(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("boom")}
	b, _ := testBackend(t, reg)

	result := b.RefreshDomain(context.Background(), "any.io")
	if result.Success || result.Error != "boom" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestTldTrendsSlicing(t *testing.T) {
	b, database := testBackend(t, &fakeRegistry{})

	if _, err := database.UpsertDomain(db.Domain{Name: "a.io", Sld: "a", Tld: "io", Score: 80}); err != nil {
		t.Fatal(err)
	}

	base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		week := base.AddDate(0, 0, 7*i)
		b.now = func() time.Time { return week }
		if err := b.updateTldStats("io"); err != nil {
			t.Fatal(err)
		}
	}

	trends, err := b.TldTrends([]string{"io", "unknown"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(trends) != 1 {
		t.Fatalf("TLDs without stats are left out; got %d entries", len(trends))
	}
	got := trends[0]
	if got.Tld != "io" || got.DomainCount != 1 {
		t.Errorf("unexpected trend header: %+v", got)
	}
	if len(got.Trend) != 4 {
		t.Fatalf("expected the 4 most recent weeks, got %d", len(got.Trend))
	}
	if got.Trend[0].Week != "2025-07" || got.Trend[3].Week != "2025-10" {
		t.Errorf("expected chronological recent slice, got %q..%q", got.Trend[0].Week, got.Trend[3].Week)
	}
}
