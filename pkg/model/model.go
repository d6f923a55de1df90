package model

const (
	PotentialHigh   = "high"
	PotentialMedium = "medium"
	PotentialLow    = "low"
)

// AnalyzeRequest is the input of the acquisition analysis endpoint.
type AnalyzeRequest struct {
	Domains []string `json:"domains"`
}

// TldInfo describes the TLD's contribution to a market analysis.
type TldInfo struct {
	Tld   string `json:"tld"`
	Score int    `json:"score"`
	Tier  string `json:"tier"`
}

// AnalysisResult is the per-domain output of the market analyzer.
type AnalysisResult struct {
	Domain               string   `json:"domain"`
	Tokens               []string `json:"tokens"`
	MarketScore          int      `json:"marketScore"`
	AcquisitionPotential string   `json:"acquisitionPotential"`
	Reasoning            string   `json:"reasoning"`
	KeyFactors           []string `json:"keyFactors"`
	EstimatedValue       string   `json:"estimatedValue"`
	TldInfo              TldInfo  `json:"tldInfo"`
}

// IngestRequest triggers a bounded ingestion run.
type IngestRequest struct {
	BatchSize  int      `json:"batchSize,omitempty"`
	MaxBatches int      `json:"maxBatches,omitempty"`
	Tlds       []string `json:"tlds,omitempty"`
}

// IngestResult summarizes an ingestion run. Failures are collected into
// Errors rather than aborting the caller; Skipped counts records that could
// not be parsed into a domain row.
type IngestResult struct {
	TotalProcessed int      `json:"totalProcessed"`
	Batches        int      `json:"batches"`
	Skipped        int      `json:"skipped"`
	Errors         []string `json:"errors"`
}

// RefreshRequest refreshes one domain, one TLD, or everything when both
// fields are empty.
type RefreshRequest struct {
	DomainName string `json:"domainName,omitempty"`
	Tld        string `json:"tld,omitempty"`
}

type RefreshResult struct {
	Success   bool   `json:"success"`
	Processed int    `json:"processed"`
	Error     string `json:"error,omitempty"`
}

// WeeklyTrendEntry is one bucket of a TLD's rolling weekly score history.
// Week strings use the simplified YYYY-WW format, not ISO-8601 weeks.
type WeeklyTrendEntry struct {
	Week         string  `json:"week"`
	AverageScore float64 `json:"averageScore"`
	Count        int     `json:"count"`
}

// TldTrend is the chart-friendly slice of a TLD's recent weekly history.
type TldTrend struct {
	Tld          string             `json:"tld"`
	Trend        []WeeklyTrendEntry `json:"trend"`
	CurrentScore float64            `json:"currentScore"`
	DomainCount  int                `json:"domainCount"`
}

type ErrorResponse struct {
	Status  int         `json:"status,omitempty"`
	Message string      `json:"msg,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}
