package db

import (
	"encoding/json"
	"time"

	"github.com/domaos/domain-radar/pkg/model"
)

// Domain is one scored catalog row per fully-qualified domain name.
// Score, Length and the derived flags are recomputed from the latest
// upstream record on every upsert, never carried over.
type Domain struct {
	ID                   uint   `gorm:"primarykey" json:"-"`
	Name                 string `gorm:"uniqueIndex" json:"name"`
	Sld                  string `gorm:"index" json:"sld"`
	Tld                  string `gorm:"index" json:"tld"`
	Score                int    `gorm:"index" json:"score"`
	Length               int    `json:"length"`
	ContainsSaasKeywords bool   `json:"containsSaasKeywords"`
	SupportedTld         bool   `json:"supportedTld"`
	OwnerAddress         string `json:"ownerAddress,omitempty"`
	ExpiresAt            string `json:"expiresAt"`
	TokenID              string `json:"tokenId,omitempty"`
	NetworkID            string `json:"networkId,omitempty"`
	RegistrarIanaID      *int   `json:"registrarIanaId,omitempty"`
	LastUpdated          string `json:"lastUpdated"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TldStat is the derived aggregate row per TLD. The weekly trend is
// intentionally denormalized into a JSON text column because we don't want
// to create a trend-entries table.
type TldStat struct {
	ID           uint    `gorm:"primarykey" json:"-"`
	Tld          string  `gorm:"uniqueIndex" json:"tld"`
	AverageScore float64 `json:"averageScore"`
	DomainCount  int     `json:"domainCount"`
	WeeklyTrend  string  `gorm:"type:text" json:"-"`
	LastUpdated  string  `json:"lastUpdated"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// Trend decodes the denormalized weekly trend column.
func (t *TldStat) Trend() ([]model.WeeklyTrendEntry, error) {
	if t.WeeklyTrend == "" {
		return nil, nil
	}
	var entries []model.WeeklyTrendEntry
	if err := json.Unmarshal([]byte(t.WeeklyTrend), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SetTrend encodes the weekly trend into the denormalized column.
func (t *TldStat) SetTrend(entries []model.WeeklyTrendEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	t.WeeklyTrend = string(raw)
	return nil
}

// SupportedTld is a static reference row seeded once at setup.
type SupportedTld struct {
	ID    uint   `gorm:"primarykey" json:"-"`
	Tld   string `gorm:"uniqueIndex" json:"tld"`
	Type  string `json:"type"` // "gTLD" or "ccTLD"
	Bonus int    `json:"bonus"`
}
