package tokenizer

import (
	"strings"
	"unicode"
)

// Tokenized is the decomposition of a full domain name. Length and the
// HasNumbers/HasHyphens flags are computed on the raw main-domain string,
// so separators count toward the length.
type Tokenized struct {
	Domain     string   `json:"domain"`
	MainDomain string   `json:"mainDomain"`
	Tld        string   `json:"tld"`
	Tokens     []string `json:"tokens"`
	Length     int      `json:"length"`
	HasNumbers bool     `json:"hasNumbers"`
	HasHyphens bool     `json:"hasHyphens"`
}

// Tokenize splits a full domain name into its TLD and lowercase sub-tokens.
// It never fails: a bare label with no dot yields an empty TLD and the whole
// input as the main domain.
func Tokenize(domain string) Tokenized {
	var tld, main string
	if i := strings.LastIndex(domain, "."); i >= 0 {
		main = domain[:i]
		tld = domain[i+1:]
	} else {
		main = domain
	}

	return Tokenized{
		Domain:     domain,
		MainDomain: main,
		Tld:        tld,
		Tokens:     splitTokens(main),
		Length:     len(main),
		HasNumbers: strings.ContainsAny(main, "0123456789"),
		HasHyphens: strings.Contains(main, "-"),
	}
}

// splitTokens splits on hyphens and underscores, then at camelCase
// boundaries, then at digit/non-digit boundaries, dropping empty pieces and
// lowercasing the rest.
func splitTokens(main string) []string {
	tokens := []string{}
	pieces := strings.FieldsFunc(main, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for _, piece := range pieces {
		for _, p := range splitCamelCase(piece) {
			for _, t := range splitDigitBoundaries(p) {
				if t != "" {
					tokens = append(tokens, strings.ToLower(t))
				}
			}
		}
	}
	return tokens
}

// splitCamelCase breaks a string before every uppercase letter.
func splitCamelCase(s string) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			parts = append(parts, s[start:i])
			start = i
		}
	}
	return append(parts, s[start:])
}

// splitDigitBoundaries breaks a string wherever a digit run starts or ends.
func splitDigitBoundaries(s string) []string {
	var parts []string
	runes := []rune(s)
	start := 0
	for i := 1; i < len(runes); i++ {
		if unicode.IsDigit(runes[i]) != unicode.IsDigit(runes[i-1]) {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	return append(parts, string(runes[start:]))
}
