package domain

import (
	"fmt"
	"strings"
	"time"
)

// Calculation is the outcome of one full pipeline run.
type Calculation struct {
	Reference   string
	Playlist    Playlist
	Stats       AggregateResult
	Partial     bool
	GeneratedAt time.Time
}

const (
	secondsPerDay    = 86400
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// FormatSeconds renders a second count as "1d 2h 3m 4s", omitting zero
// components. Zero renders as "0s".
func FormatSeconds(total int64) string {
	days := total / secondsPerDay
	hours := (total % secondsPerDay) / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	seconds := total % secondsPerMinute

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// RenderReport produces the multi-section text block used for on-screen
// display and file export. Deterministic for a fixed GeneratedAt.
func RenderReport(calc Calculation) string {
	var b strings.Builder
	stats := calc.Stats

	b.WriteString("YouTube Playlist Duration Calculator - Results\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")

	b.WriteString(fmt.Sprintf("Playlist: %s\n", calc.Playlist.Title))
	b.WriteString(fmt.Sprintf("Channel: %s\n", calc.Playlist.ChannelTitle))
	b.WriteString(fmt.Sprintf("Playlist ID: %s\n", calc.Reference))
	b.WriteString(fmt.Sprintf("Total Videos: %d\n", calc.Playlist.ItemCount))
	b.WriteString(fmt.Sprintf("Processed Videos: %d\n", stats.ProcessedCount))
	b.WriteString(fmt.Sprintf("Failed Videos: %d\n", stats.FailedCount))
	if calc.Partial {
		b.WriteString("Note: calculation was cancelled before completion; results are partial.\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Total Duration: %s\n", FormatSeconds(stats.TotalSeconds)))
	b.WriteString(fmt.Sprintf("Total Seconds: %d\n\n", stats.TotalSeconds))

	b.WriteString("Statistics:\n")
	b.WriteString(fmt.Sprintf("  Average Duration: %s\n", FormatSeconds(int64(stats.AverageSeconds))))
	b.WriteString(fmt.Sprintf("  Median Duration: %s\n", FormatSeconds(int64(stats.MedianSeconds))))
	if stats.ProcessedCount > 0 {
		b.WriteString(fmt.Sprintf("  Longest Video: %s (%s)\n", FormatSeconds(stats.Longest.DurationSeconds), stats.Longest.Title))
		b.WriteString(fmt.Sprintf("  Shortest Video: %s (%s)\n", FormatSeconds(stats.Shortest.DurationSeconds), stats.Shortest.Title))
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Generated on: %s\n", calc.GeneratedAt.Format("2006-01-02 15:04:05")))

	return b.String()
}
