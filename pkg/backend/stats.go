package backend

import (
	"fmt"
	"time"

	"github.com/domaos/domain-radar/pkg/model"
	"golang.org/x/exp/slices"
)

// The weekly trend keeps this many buckets per TLD.
const maxTrendWeeks = 12

// updateTldStats recomputes the aggregate row for one TLD from the rows
// currently stored. A TLD with no domains is a no-op: the row is neither
// created nor cleared.
func (b *backend) updateTldStats(tld string) error {
	b.statsMu.Lock()
	defer b.statsMu.Unlock()

	domains, err := b.db.GetDomainsByTld(tld, 0)
	if err != nil {
		return err
	}
	if len(domains) == 0 {
		return nil
	}

	total := 0
	for _, d := range domains {
		total += d.Score
	}
	average := float64(total) / float64(len(domains))

	now := b.now()
	entry := model.WeeklyTrendEntry{
		Week:         weekString(now),
		AverageScore: average,
		Count:        len(domains),
	}

	stat, err := b.db.GetTldStat(tld)
	if err != nil {
		return err
	}

	var trend []model.WeeklyTrendEntry
	if stat.ID != 0 {
		if trend, err = stat.Trend(); err != nil {
			return err
		}
	}

	idx := -1
	for i := range trend {
		if trend[i].Week == entry.Week {
			idx = i
			break
		}
	}
	if idx >= 0 {
		// at most one entry per week: recomputes within a week overwrite
		trend[idx] = entry
	} else {
		trend = append(trend, entry)
		if len(trend) > maxTrendWeeks {
			slices.SortFunc(trend, func(a, b model.WeeklyTrendEntry) bool {
				return a.Week < b.Week
			})
			trend = trend[len(trend)-maxTrendWeeks:]
		}
	}

	stat.Tld = tld
	stat.AverageScore = average
	stat.DomainCount = len(domains)
	stat.LastUpdated = now.UTC().Format(time.RFC3339)
	if err := stat.SetTrend(trend); err != nil {
		return err
	}

	return b.db.SaveTldStat(stat)
}

// TldTrends returns the most recent N weekly buckets per requested TLD in
// chronological order. TLDs without a stats row are left out.
func (b *backend) TldTrends(tlds []string, weeks int) ([]model.TldTrend, error) {
	if weeks <= 0 {
		weeks = 8
	}

	trends := []model.TldTrend{}
	for _, tld := range tlds {
		stat, err := b.db.GetTldStat(tld)
		if err != nil {
			return nil, err
		}
		if stat.ID == 0 {
			continue
		}

		trend, err := stat.Trend()
		if err != nil {
			return nil, err
		}

		slices.SortFunc(trend, func(a, b model.WeeklyTrendEntry) bool {
			return a.Week < b.Week
		})
		if len(trend) > weeks {
			trend = trend[len(trend)-weeks:]
		}

		trends = append(trends, model.TldTrend{
			Tld:          tld,
			Trend:        trend,
			CurrentScore: stat.AverageScore,
			DomainCount:  stat.DomainCount,
		})
	}
	return trends, nil
}

// weekString buckets a time into the simplified YYYY-WW format used by the
// trend series. This is deliberately not ISO-8601 week numbering: stored
// week strings depend on this exact formula.
func weekString(now time.Time) string {
	jan1 := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	days := now.YearDay() - 1
	week := (days + int(jan1.Weekday()) + 1 + 6) / 7
	return fmt.Sprintf("%d-%02d", now.Year(), week)
}
