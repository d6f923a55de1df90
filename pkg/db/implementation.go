package db

import (
	"context"
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type database struct {
	db *gorm.DB
}

// New creates a new database connection
func New(ctx context.Context, dialect string, dsn string, config *gorm.Config) (Database, error) {
	if config == nil {
		config = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	}

	var db *gorm.DB
	var err error

	if dialect == "sqlite" {
		db, err = gorm.Open(sqlite.Open(dsn), config)
	} else if dialect == "mysql" {
		db, err = gorm.Open(mysql.Open(dsn), config)
	} else {
		return nil, fmt.Errorf("unsupported dialect: %s", dialect)
	}

	if err != nil {
		return nil, err
	}

	db = db.WithContext(ctx)

	if err := db.AutoMigrate(
		&Domain{},
		&TldStat{},
		&SupportedTld{},
	); err != nil {
		return nil, err
	}

	d := &database{
		db: db,
	}
	return d, nil
}

// UpsertDomain writes the row keyed by its unique name. An existing row is
// overwritten wholesale so stale derived values never survive an update.
func (d *database) UpsertDomain(domain Domain) (uint, error) {
	var existing Domain
	sql := d.db.Where("name = ?", domain.Name).Limit(1).Find(&existing)
	if sql.Error != nil {
		return 0, sql.Error
	}

	if existing.ID != 0 {
		domain.ID = existing.ID
		domain.CreatedAt = existing.CreatedAt
		sql = d.db.Save(&domain)
		return domain.ID, sql.Error
	}

	sql = d.db.Create(&domain)
	return domain.ID, sql.Error
}

func (d *database) GetDomainByName(name string) (Domain, error) {
	domain := Domain{}
	sql := d.db.Where("name = ?", name).Limit(1).Find(&domain)
	return domain, sql.Error
}

// GetDomainsByTld returns rows for one TLD, best score first. A limit of 0
// means no limit, which the aggregate recompute relies on.
func (d *database) GetDomainsByTld(tld string, limit int) ([]Domain, error) {
	var domains []Domain
	q := d.db.Where("tld = ?", tld).Order("score desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	sql := q.Find(&domains)
	return domains, sql.Error
}

func (d *database) TopDomainsByScore(limit int) ([]Domain, error) {
	var domains []Domain
	sql := d.db.Order("score desc").Limit(limit).Find(&domains)
	return domains, sql.Error
}

func (d *database) SearchDomainsBySld(sld string, limit int) ([]Domain, error) {
	var domains []Domain
	sql := d.db.Where("sld = ?", sld).Limit(limit).Find(&domains)
	return domains, sql.Error
}

func (d *database) GetTldStat(tld string) (TldStat, error) {
	stat := TldStat{}
	sql := d.db.Where("tld = ?", tld).Limit(1).Find(&stat)
	return stat, sql.Error
}

func (d *database) SaveTldStat(stat TldStat) error {
	if stat.ID != 0 {
		sql := d.db.Save(&stat)
		return sql.Error
	}
	sql := d.db.Create(&stat)
	return sql.Error
}

func (d *database) ListTldStats(limit int) ([]TldStat, error) {
	var stats []TldStat
	q := d.db.Order("average_score desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	sql := q.Find(&stats)
	return stats, sql.Error
}

// SeedSupportedTlds inserts reference rows that are not already present and
// returns the number inserted. Safe to run on every startup.
func (d *database) SeedSupportedTlds(rows []SupportedTld) (int, error) {
	inserted := 0
	err := d.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			var existing SupportedTld
			sql := tx.Where("tld = ?", row.Tld).Limit(1).Find(&existing)
			if sql.Error != nil {
				return sql.Error
			}
			if existing.ID != 0 {
				continue
			}
			row.ID = 0
			if sql := tx.Create(&row); sql.Error != nil {
				return sql.Error
			}
			inserted++
		}
		return nil
	})
	return inserted, err
}

func (d *database) ListSupportedTlds() ([]SupportedTld, error) {
	var rows []SupportedTld
	sql := d.db.Order("bonus desc").Find(&rows)
	return rows, sql.Error
}
