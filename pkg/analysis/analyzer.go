// Package analysis produces speculative acquisition analyses for arbitrary
// domain names. Its TLD value table is market-oriented and deliberately
// independent from the catalog bonus table in pkg/scoring.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/domaos/domain-radar/pkg/model"
	"github.com/domaos/domain-radar/pkg/tokenizer"
)

// Market value per TLD on a 0-100 scale. Unknown TLDs fall back to
// defaultTldValue rather than failing.
var tldValues = map[string]int{
	// premium gTLDs
	"com": 100, "org": 85, "net": 80, "io": 95, "ai": 95, "app": 90,
	"dev": 88, "tech": 85,

	// popular gTLDs
	"biz": 70, "info": 65, "name": 60, "pro": 75, "co": 82, "me": 78,
	"tv": 75, "cc": 70,

	// business and industry
	"agency": 65, "consulting": 65, "solutions": 65, "services": 65,
	"business": 70, "company": 70, "finance": 75, "bank": 80, "legal": 75,
	"health": 75, "store": 80, "shop": 80, "market": 75,

	// tech and innovation
	"cloud": 85, "digital": 80, "online": 75, "software": 80, "crypto": 90,
	"blockchain": 90,

	// geographic ccTLDs
	"us": 60, "uk": 70, "ca": 65, "au": 65, "de": 70, "fr": 65,
}

const defaultTldValue = 40

var highValueKeywords = map[string]bool{
	"ai": true, "crypto": true, "blockchain": true, "nft": true,
	"web3": true, "defi": true, "meta": true, "vr": true, "ar": true,
	"cloud": true, "saas": true, "api": true,
}

var mediumValueKeywords = map[string]bool{
	"app": true, "web": true, "tech": true, "digital": true, "online": true,
	"mobile": true, "smart": true, "pro": true, "global": true, "secure": true,
}

var businessKeywords = map[string]bool{
	"shop": true, "store": true, "market": true, "trade": true, "pay": true,
	"finance": true, "bank": true, "invest": true, "consulting": true,
}

var commonWords = map[string]bool{
	"home": true, "house": true, "car": true, "food": true, "game": true,
	"news": true, "book": true, "music": true, "video": true, "photo": true,
}

// Numbers that read as business shorthand (24/7, 365) get a reduced penalty.
var businessNumbers = map[string]bool{
	"24": true, "365": true, "24h": true, "7": true, "247": true,
}

// TldValue returns the market value of a TLD, with a fallback for TLDs not
// in the table.
func TldValue(tld string) int {
	if v, ok := tldValues[strings.ToLower(tld)]; ok {
		return v
	}
	return defaultTldValue
}

// Analyze tokenizes and scores a batch of domain names. It always returns
// one result per input, in order; garbage input just scores badly.
func Analyze(domains []string) []model.AnalysisResult {
	results := make([]model.AnalysisResult, 0, len(domains))
	for _, domain := range domains {
		results = append(results, analyzeOne(tokenizer.Tokenize(domain)))
	}
	return results
}

// analyzeOne accumulates the market score factor by factor. The evaluation
// order is fixed because each firing factor appends its own keyFactors
// entry: length, keywords, TLD, brandability, dictionary words, numbers,
// hyphens, SEO.
func analyzeOne(tok tokenizer.Tokenized) model.AnalysisResult {
	score := 0
	keyFactors := []string{}

	switch {
	case tok.Length <= 4:
		score += 35
		keyFactors = append(keyFactors, "Ultra-short length (premium)")
	case tok.Length <= 6:
		score += 25
		keyFactors = append(keyFactors, "Short length (highly valuable)")
	case tok.Length <= 10:
		score += 15
		keyFactors = append(keyFactors, "Moderate length")
	case tok.Length <= 15:
		score += 5
		keyFactors = append(keyFactors, "Long length")
	default:
		score -= 5
		keyFactors = append(keyFactors, "Very long length (reduces value)")
	}

	// Keyword tiers are mutually exclusive: the highest tier wins.
	switch {
	case anyToken(tok.Tokens, highValueKeywords):
		score += 30
		keyFactors = append(keyFactors, "Contains high-value tech keywords")
	case anyToken(tok.Tokens, mediumValueKeywords):
		score += 20
		keyFactors = append(keyFactors, "Contains popular keywords")
	case anyToken(tok.Tokens, businessKeywords):
		score += 15
		keyFactors = append(keyFactors, "Contains business-related keywords")
	}

	tldScore := TldValue(tok.Tld)
	score += int(math.Round(float64(tldScore) * 0.25))

	tldTier := "standard"
	tldUpper := strings.ToUpper(tok.Tld)
	switch {
	case tldScore >= 90:
		tldTier = "premium"
		keyFactors = append(keyFactors, tldUpper+" TLD (premium tier)")
	case tldScore >= 75:
		tldTier = "high-value"
		keyFactors = append(keyFactors, tldUpper+" TLD (high value)")
	case tldScore >= 60:
		tldTier = "good-value"
		keyFactors = append(keyFactors, tldUpper+" TLD (good value)")
	default:
		keyFactors = append(keyFactors, tldUpper+" TLD (standard)")
	}

	if isBrandable(tok.Tokens) {
		score += 10
		keyFactors = append(keyFactors, "High brandability (memorable)")
	}

	if anyToken(tok.Tokens, commonWords) {
		score += 8
		keyFactors = append(keyFactors, "Contains dictionary words")
	}

	if tok.HasNumbers {
		if anyToken(tok.Tokens, businessNumbers) {
			score -= 5
			keyFactors = append(keyFactors, "Contains business numbers (minor impact)")
		} else {
			score -= 12
			keyFactors = append(keyFactors, "Contains numbers (reduces brandability)")
		}
	}

	if tok.HasHyphens {
		score -= 18
		keyFactors = append(keyFactors, "Contains hyphens (significantly reduces value)")
	}

	if len(tok.Tokens) <= 3 && !tok.HasNumbers && !tok.HasHyphens {
		score += 5
		keyFactors = append(keyFactors, "Good SEO potential")
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	potential := model.PotentialLow
	switch {
	case score >= 75:
		potential = model.PotentialHigh
	case score >= 45:
		potential = model.PotentialMedium
	}

	return model.AnalysisResult{
		Domain:               tok.Domain,
		Tokens:               tok.Tokens,
		MarketScore:          score,
		AcquisitionPotential: potential,
		Reasoning:            reasoning(tok, score, tldScore, potential),
		KeyFactors:           keyFactors,
		EstimatedValue:       estimatedValue(score),
		TldInfo: model.TldInfo{
			Tld:   tok.Tld,
			Score: tldScore,
			Tier:  tldTier,
		},
	}
}

func anyToken(tokens []string, set map[string]bool) bool {
	for _, token := range tokens {
		if set[token] {
			return true
		}
	}
	return false
}

// isBrandable: at most two pronounceable tokens, each short enough to stick.
// Pronounceable means three or more characters and not purely numeric.
func isBrandable(tokens []string) bool {
	var pronounceable []string
	for _, token := range tokens {
		if len(token) >= 3 && !allDigits(token) {
			pronounceable = append(pronounceable, token)
		}
	}
	if len(pronounceable) > 2 {
		return false
	}
	for _, word := range pronounceable {
		if len(word) > 8 {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func reasoning(tok tokenizer.Tokenized, score, tldScore int, potential string) string {
	var verdict string
	switch potential {
	case model.PotentialHigh:
		verdict = "Excellent acquisition candidate with strong commercial potential and high resale value. Recommended for immediate acquisition."
	case model.PotentialMedium:
		verdict = "Good acquisition candidate with decent commercial potential and moderate investment risk. Consider for portfolio diversification."
	default:
		verdict = "Lower priority acquisition candidate. May be suitable for specific use cases or long-term speculation with limited budget allocation."
	}

	return fmt.Sprintf(
		"This domain scores %d/100 based on comprehensive analysis including length (%d chars), TLD value (.%s - %d/100), keyword relevance, brandability, and structural factors. %s",
		score, tok.Length, tok.Tld, tldScore, verdict)
}

func estimatedValue(score int) string {
	switch {
	case score >= 85:
		return "$50K - $500K+"
	case score >= 75:
		return "$10K - $50K"
	case score >= 60:
		return "$2K - $10K"
	case score >= 45:
		return "$500 - $2K"
	case score >= 30:
		return "$100 - $500"
	default:
		return "$10 - $100"
	}
}
