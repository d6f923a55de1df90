// Package scoring implements the catalog scorer used by the ingestion
// pipeline. It is intentionally separate from the speculative market scorer
// in pkg/analysis: this one ranks the stored catalog, the other estimates
// acquisition value, and the two maintain independent TLD tables.
package scoring

import "strings"

var saasKeywords = []string{
	"ai", "app", "api", "cloud", "dev", "tech", "software", "platform",
	"saas", "service", "tool", "tools", "hub", "lab", "labs", "studio",
	"build", "maker", "create", "data", "analytics", "smart", "auto",
	"digital", "online", "web", "net", "code", "pay", "shop", "store",
	"mail", "chat", "social", "connect", "sync", "flow", "stream",
	"dashboard", "admin", "manage", "track", "monitor", "secure", "pro",
}

var tldBonuses = map[string]int{
	"ai":    25,
	"io":    20,
	"dev":   20,
	"cloud": 25,
	"tech":  15,
	"app":   20,
	"co":    15,
	"com":   10,
	"org":   5,
	"net":   5,
}

// Score rates a domain's second-level label and TLD on a 0-100 scale.
// Pure: same inputs always produce the same score.
func Score(sld, tld string) int {
	score := 50

	switch length := len(sld); {
	case length <= 3:
		score += 30
	case length <= 5:
		score += 20
	case length <= 7:
		score += 10
	case length <= 10:
		// neutral
	default:
		score -= 10
	}

	if ContainsSaasKeyword(sld) {
		score += 15
	}

	score += TldBonus(tld)

	if !strings.ContainsAny(sld, "-0123456789") {
		score += 5
	}

	if isLikelyDictionaryWord(sld) {
		score += 10
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// ContainsSaasKeyword reports whether the label contains any entry of the
// SaaS keyword list as a substring. Flat: one match is as good as ten.
func ContainsSaasKeyword(sld string) bool {
	lower := strings.ToLower(sld)
	for _, keyword := range saasKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

// TldBonus returns the fixed catalog bonus for a TLD, 0 when unknown.
func TldBonus(tld string) int {
	return tldBonuses[tld]
}

// IsSupportedTld reports whether the TLD has an entry in the bonus table.
func IsSupportedTld(tld string) bool {
	_, ok := tldBonuses[tld]
	return ok
}

// isLikelyDictionaryWord is a cheap stand-in for a dictionary lookup: a word
// of three or more characters with at least one vowel and one non-vowel.
func isLikelyDictionaryWord(word string) bool {
	if len(word) < 3 {
		return false
	}
	vowels := 0
	for _, r := range strings.ToLower(word) {
		switch r {
		case 'a', 'e', 'i', 'o', 'u':
			vowels++
		}
	}
	return vowels > 0 && vowels < len(word)
}
