package report

import (
	"sort"

	"github.com/mcp-census/apiscan/internal/metadata"
	"github.com/mcp-census/apiscan/internal/walker"
)

var starBuckets = []struct {
	min   int
	max   int
	label string
}{
	{0, 10, "0-10"},
	{11, 100, "11-100"},
	{101, 1000, "101-1000"},
	{1001, 10000, "1001-10000"},
	{10001, 50000, "10001-50000"},
	{50001, -1, "50000+"},
}

// StarBucketLabels lists the bucket labels in ascending order.
func StarBucketLabels() []string {
	labels := make([]string, len(starBuckets))
	for i, bucket := range starBuckets {
		labels[i] = bucket.label
	}
	return labels
}

func starBucketLabel(stars int) string {
	for _, bucket := range starBuckets {
		if stars >= bucket.min && (bucket.max < 0 || stars <= bucket.max) {
			return bucket.label
		}
	}
	return starBuckets[0].label
}

// DimensionStats counts repositories of one table row. ResourceTypes counts
// how many of the row's repositories exhibit each resource category at least
// once, not the number of individual findings.
type DimensionStats struct {
	Repositories  int
	ResourceTypes map[string]int
}

func newDimensionStats() *DimensionStats {
	return &DimensionStats{ResourceTypes: map[string]int{}}
}

// Aggregate is the cross-repository summary the renderers consume.
type Aggregate struct {
	ResourceTypes  []string
	Categories     map[string]*DimensionStats
	StarBuckets    map[string]*DimensionStats
	ThreatCounts   map[string]int
	ResourceCounts map[string]int
	TotalFindings  int
	UnknownStars   int
}

// Build folds scan results and catalog metadata into an aggregate. Every
// repository contributes to its category rows; repositories without a known
// star count are left out of the star bucket rows.
func Build(results map[string]*walker.RepositoryResult, store *metadata.Store) *Aggregate {
	agg := &Aggregate{
		Categories:     map[string]*DimensionStats{},
		StarBuckets:    map[string]*DimensionStats{},
		ThreatCounts:   map[string]int{},
		ResourceCounts: map[string]int{},
	}

	resourceTypes := map[string]struct{}{}
	for _, result := range results {
		for resourceType := range result.ResourceCounts {
			resourceTypes[resourceType] = struct{}{}
		}
	}
	for resourceType := range resourceTypes {
		agg.ResourceTypes = append(agg.ResourceTypes, resourceType)
	}
	sort.Strings(agg.ResourceTypes)

	for name, result := range results {
		resolved := store.Resolve(name, "")

		agg.TotalFindings += len(result.Findings)
		for threat, count := range result.ThreatCounts {
			agg.ThreatCounts[threat] += count
		}
		for resourceType, count := range result.ResourceCounts {
			agg.ResourceCounts[resourceType] += count
		}

		for _, category := range resolved.Categories {
			stats, ok := agg.Categories[category]
			if !ok {
				stats = newDimensionStats()
				agg.Categories[category] = stats
			}
			stats.Repositories++
			for resourceType := range result.ResourceCounts {
				stats.ResourceTypes[resourceType]++
			}
		}

		if resolved.Stars < 0 {
			agg.UnknownStars++
			continue
		}
		label := starBucketLabel(resolved.Stars)
		stats, ok := agg.StarBuckets[label]
		if !ok {
			stats = newDimensionStats()
			agg.StarBuckets[label] = stats
		}
		stats.Repositories++
		for resourceType := range result.ResourceCounts {
			stats.ResourceTypes[resourceType]++
		}
	}

	return agg
}

// SortedCategories returns the category row labels in alphabetical order.
func (a *Aggregate) SortedCategories() []string {
	categories := make([]string, 0, len(a.Categories))
	for category := range a.Categories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
