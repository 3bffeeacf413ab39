// Package sales answers "how many units of X were sold in Y" questions
// against a sales log whose city names are spelled inconsistently.
package sales

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/config"
	"github.com/sells-group/answer-cli/internal/textnorm"
)

// Aggregator sums filtered sales for a clustered city.
type Aggregator struct {
	opts        ClusterOptions
	unknownCity string
}

// NewAggregator creates an Aggregator from the sales config section. Unset
// fields fall back to DefaultClusterOptions one by one.
func NewAggregator(cfg config.SalesConfig) *Aggregator {
	opts := DefaultClusterOptions()
	if len(cfg.ReferenceAlternates) > 0 {
		opts.ReferenceAlternates = cfg.ReferenceAlternates
	}
	if cfg.AlternateThreshold > 0 {
		opts.AlternateThreshold = cfg.AlternateThreshold
	}
	if cfg.FuzzyThreshold > 0 {
		opts.FuzzyThreshold = cfg.FuzzyThreshold
	}
	unknown := cfg.UnknownCity
	if unknown == "" {
		unknown = "Unknown"
	}
	return &Aggregator{opts: opts, unknownCity: unknown}
}

// Compute loads the sales log at dataPath and answers question with the
// total units as an integer string.
func (a *Aggregator) Compute(ctx context.Context, dataPath, question string) (string, error) {
	records, err := LoadRecords(ctx, dataPath, a.unknownCity)
	if err != nil {
		return "", err
	}

	q, err := ParseQuestion(question)
	if err != nil {
		return "", err
	}

	total := a.Total(records, q)
	return strconv.FormatInt(total, 10), nil
}

// Total clusters the cities of records and sums the sales of rows matching
// q's product and threshold whose cluster equals the query city's cluster.
func (a *Aggregator) Total(records []Record, q Query) int64 {
	c := NewClusterer(a.opts, records)
	c.Apply(records)
	target := c.Cluster(q.City)

	grouped := make(map[string]float64)
	kept := 0
	for _, r := range records {
		if !r.HasSales || r.Sales < float64(q.MinSales) {
			continue
		}
		if !textnorm.Equal(r.Product, q.Product) {
			continue
		}
		grouped[r.ClusteredCity] += r.Sales
		kept++
	}

	var sum float64
	for label, s := range grouped {
		if textnorm.Equal(label, target) {
			sum += s
		}
	}

	zap.L().Debug("sales: aggregated",
		zap.Int("records", len(records)),
		zap.Int("kept", kept),
		zap.Int("groups", len(grouped)),
		zap.String("target", target),
		zap.Float64("sum", sum),
	)
	return int64(sum)
}
