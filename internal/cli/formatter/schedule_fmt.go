package formatter

import (
	"fmt"

	"github.com/mkovari/costline/internal/feed"
)

// FormatTimeline renders a timeline payload as a table. Group rows from the
// global feed become bold section rows; their items are indented under them.
func FormatTimeline(p feed.Payload) string {
	headers := []string{"CODE", "TASK", "START", "FINISH", "DAYS", "DONE", "WHO"}
	rows := make([][]string, 0, len(p.Data))
	for _, rec := range p.Data {
		if rec.Type == "project" {
			rows = append(rows, []string{
				"",
				Bold(rec.Text),
				rec.StartDate,
				"", "", "", "",
			})
			continue
		}
		text := rec.Text
		if rec.Parent != "" {
			text = "  " + text
		}
		rows = append(rows, []string{
			StylePurple.Render(rec.Code),
			text,
			rec.StartDate,
			rec.FinishDate,
			fmt.Sprintf("%d", rec.Duration),
			progressPill(rec.Progress),
			rec.Responsible,
		})
	}
	return RenderTable(headers, rows)
}

func progressPill(fraction float64) string {
	pct := fmt.Sprintf("%.0f%%", fraction*100)
	switch {
	case fraction >= 1:
		return StyleGreen.Render(pct)
	case fraction > 0:
		return StyleYellow.Render(pct)
	default:
		return Dim(pct)
	}
}
