package db

type Database interface {
	UpsertDomain(domain Domain) (uint, error)
	GetDomainByName(name string) (Domain, error)
	GetDomainsByTld(tld string, limit int) ([]Domain, error)
	TopDomainsByScore(limit int) ([]Domain, error)
	SearchDomainsBySld(sld string, limit int) ([]Domain, error)

	GetTldStat(tld string) (TldStat, error)
	SaveTldStat(stat TldStat) error
	ListTldStats(limit int) ([]TldStat, error)

	SeedSupportedTlds(rows []SupportedTld) (int, error)
	ListSupportedTlds() ([]SupportedTld, error)
}
