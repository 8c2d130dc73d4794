package report

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders the aggregate as the security statistics table: one
// block of category rows and one block of star range rows, with a column per
// resource category counting affected repositories.
func RenderMarkdown(agg *Aggregate) string {
	var b strings.Builder

	fmt.Fprintf(&b, "| Dimension | Total | %s |\n", strings.Join(agg.ResourceTypes, " | "))
	fmt.Fprintf(&b, "|-----------|-------|%s\n", strings.Repeat("-|", len(agg.ResourceTypes)))

	b.WriteString("| **Category** |\n")
	for _, category := range agg.SortedCategories() {
		stats := agg.Categories[category]
		if stats.Repositories == 0 {
			continue
		}
		writeRow(&b, category, stats, agg.ResourceTypes)
	}

	b.WriteString("| **Stars Range** |\n")
	for _, label := range StarBucketLabels() {
		stats, ok := agg.StarBuckets[label]
		if !ok || stats.Repositories == 0 {
			continue
		}
		writeRow(&b, label, stats, agg.ResourceTypes)
	}

	return b.String()
}

func writeRow(b *strings.Builder, label string, stats *DimensionStats, resourceTypes []string) {
	fmt.Fprintf(b, "| %s | %d |", label, stats.Repositories)
	for _, resourceType := range resourceTypes {
		fmt.Fprintf(b, " %d |", stats.ResourceTypes[resourceType])
	}
	b.WriteString("\n")
}
