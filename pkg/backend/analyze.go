package backend

import (
	"github.com/domaos/domain-radar/pkg/analysis"
	"github.com/domaos/domain-radar/pkg/model"
)

// Analyze runs the speculative market analyzer over a batch of domain
// names. Purely in-memory; nothing is read from or written to the catalog.
func (b *backend) Analyze(domains []string) []model.AnalysisResult {
	return analysis.Analyze(domains)
}
