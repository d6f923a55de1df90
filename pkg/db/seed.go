package db

// DefaultSupportedTlds is the reference set seeded into the supported_tlds
// table. Bonuses mirror the catalog scorer's TLD table where both have an
// entry; the extra rows exist for display only.
func DefaultSupportedTlds() []SupportedTld {
	return []SupportedTld{
		// premium
		{Tld: "ai", Type: "ccTLD", Bonus: 25},
		{Tld: "io", Type: "ccTLD", Bonus: 20},
		{Tld: "dev", Type: "gTLD", Bonus: 20},
		{Tld: "cloud", Type: "gTLD", Bonus: 25},
		{Tld: "tech", Type: "gTLD", Bonus: 15},
		{Tld: "app", Type: "gTLD", Bonus: 20},
		{Tld: "co", Type: "ccTLD", Bonus: 15},

		// standard
		{Tld: "com", Type: "gTLD", Bonus: 10},
		{Tld: "org", Type: "gTLD", Bonus: 5},
		{Tld: "net", Type: "gTLD", Bonus: 5},

		// other popular
		{Tld: "xyz", Type: "gTLD", Bonus: 5},
		{Tld: "me", Type: "ccTLD", Bonus: 10},
		{Tld: "ly", Type: "ccTLD", Bonus: 8},
		{Tld: "sh", Type: "ccTLD", Bonus: 12},
		{Tld: "gg", Type: "ccTLD", Bonus: 10},
	}
}
