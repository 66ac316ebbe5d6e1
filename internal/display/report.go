package display

import (
	"errors"
	"fmt"

	"github.com/gnomegl/productive-box/internal/models"
	"github.com/mattn/go-runewidth"
)

var ErrNoCommitsFound = errors.New("no commits found, make sure your repositories have commits")

const (
	ReportBarWidth   = 21
	labelColumnWidth = 10
	countColumnWidth = 14
)

var segmentLabels = map[models.DaySegment]string{
	models.Morning: "🌞 Morning",
	models.Daytime: "🌆 Daytime",
	models.Evening: "🌃 Evening",
	models.Night:   "🌙 Night",
}

// GenerateReport formats one aligned line per day segment in report order.
func GenerateReport(counts models.CommitCounts) ([]string, error) {
	sum := counts.Total()
	if sum == 0 {
		return nil, ErrNoCommitsFound
	}

	lines := make([]string, 0, len(models.Segments))
	for _, seg := range models.Segments {
		commits := counts.Get(seg)
		percent := float64(commits) / float64(sum) * 100

		bar, err := RenderBar(percent, ReportBarWidth)
		if err != nil {
			return nil, fmt.Errorf("render %s bar: %w", seg, err)
		}

		label := runewidth.FillRight(segmentLabels[seg], labelColumnWidth)
		commitText := fmt.Sprintf("%-*s", countColumnWidth, fmt.Sprintf("%5d commits", commits))
		lines = append(lines, fmt.Sprintf("%s %s %s %5.1f%%", label, commitText, bar, percent))
	}

	return lines, nil
}
