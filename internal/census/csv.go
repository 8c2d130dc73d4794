package census

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// WriteStatsCSV writes one frequency table as CSV with a percentage column
// relative to total. Rows are ordered by descending count, ties
// alphabetically. Entries below minFrequency are dropped.
func WriteStatsCSV(path string, stats map[string]int, total, minFrequency int) error {
	type row struct {
		name  string
		count int
	}
	rows := make([]row, 0, len(stats))
	for name, count := range stats {
		if count < minFrequency {
			continue
		}
		rows = append(rows, row{name, count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].name < rows[j].name
	})

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file '%s': %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"name", "count", "percentage"}); err != nil {
		return err
	}
	for _, r := range rows {
		percentage := 0.0
		if total > 0 {
			percentage = float64(r.count) / float64(total) * 100
		}
		record := []string{r.name, fmt.Sprintf("%d", r.count), fmt.Sprintf("%.2f", percentage)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// Export writes the combined library table plus one table per language into
// outputDir.
func (c *Census) Export(outputDir string, minFrequency int) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	combined := filepath.Join(outputDir, "library_statistics.csv")
	if err := WriteStatsCSV(combined, c.LibraryUsage, c.TotalRepositories, minFrequency); err != nil {
		return err
	}

	for language, stats := range c.PerLanguage {
		path := filepath.Join(outputDir, fmt.Sprintf("library_statistics_%s.csv", language))
		if err := WriteStatsCSV(path, stats, c.LanguageDistribution[language], minFrequency); err != nil {
			return err
		}
	}
	return nil
}
