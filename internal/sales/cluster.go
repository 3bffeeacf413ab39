package sales

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/answer-cli/internal/fuzzy"
	"github.com/sells-group/answer-cli/internal/phonetic"
)

// ClusterOptions tunes how city spellings are grouped.
type ClusterOptions struct {
	// ReferenceAlternates are known spellings of one reference city. The
	// first entry is the canonical label for all of them.
	ReferenceAlternates []string
	// AlternateThreshold is the minimum token-sort score against any
	// reference alternate.
	AlternateThreshold float64
	// FuzzyThreshold is the minimum token-sort score against another city
	// in the dataset.
	FuzzyThreshold float64
}

// DefaultClusterOptions returns the stock heuristics.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		ReferenceAlternates: []string{"Jakarta", "Jakkarta", "Jakarata", "Djakarta", "Jayakarta", "Batavia"},
		AlternateThreshold:  90,
		FuzzyThreshold:      80,
	}
}

// Clusterer maps city spellings to a clustered label.
type Clusterer struct {
	opts   ClusterOptions
	cities []string // per row, dataset order
	keys   []string // phonetic key per row
	unique []string // distinct cities, first-seen order
	memo   map[string]string
}

// NewClusterer indexes the cities of records. It fills in each record's
// PhoneticKey but not its ClusteredCity; see Apply.
func NewClusterer(opts ClusterOptions, records []Record) *Clusterer {
	c := &Clusterer{
		opts:   opts,
		cities: make([]string, len(records)),
		keys:   make([]string, len(records)),
		memo:   make(map[string]string),
	}

	seen := make(map[string]struct{})
	for i := range records {
		city := records[i].City
		key := phonetic.Key(city)
		records[i].PhoneticKey = key
		c.cities[i] = city
		c.keys[i] = key
		if _, ok := seen[city]; !ok {
			seen[city] = struct{}{}
			c.unique = append(c.unique, city)
		}
	}
	return c
}

// Apply sets ClusteredCity on every record.
func (c *Clusterer) Apply(records []Record) {
	for i := range records {
		records[i].ClusteredCity = c.Cluster(records[i].City)
	}
}

// Cluster returns the clustered label for city. Rules are tried in order:
// a close match to a reference alternate, then the first dataset row that
// shares the phonetic key, then the best fuzzy match among dataset cities.
func (c *Clusterer) Cluster(city string) string {
	if label, ok := c.memo[city]; ok {
		return label
	}
	label, rule := c.cluster(city)
	c.memo[city] = label

	zap.L().Debug("sales: clustered city",
		zap.String("city", city),
		zap.String("label", label),
		zap.String("rule", rule),
	)
	return label
}

func (c *Clusterer) cluster(city string) (string, string) {
	lower := strings.ToLower(city)
	for _, alt := range c.opts.ReferenceAlternates {
		if fuzzy.TokenSortRatio(lower, strings.ToLower(alt)) >= c.opts.AlternateThreshold {
			return c.opts.ReferenceAlternates[0], "reference"
		}
	}

	if key := phonetic.Key(city); key != "" {
		for i, k := range c.keys {
			if k == key {
				return c.cities[i], "phonetic"
			}
		}
	}

	if m, ok := fuzzy.ExtractOne(city, c.unique, fuzzy.TokenSortRatio); ok && m.Score >= c.opts.FuzzyThreshold {
		return m.Choice, "fuzzy"
	}
	return city, "self"
}
