package formatter

import (
	"fmt"

	"github.com/mkovari/costline/internal/domain"
)

// FormatItemTable renders budget line items as an aligned table in their
// stored order.
func FormatItemTable(items []*domain.BudgetLineItem) string {
	headers := []string{"NO.", "DESCRIPTION", "QTY", "MATERIAL", "LABOR OWN", "LABOR SUB", "TOTAL", "DAYS"}
	rows := make([][]string, 0, len(items))
	for _, b := range items {
		qty := b.Quantity.String()
		if b.Unit != "" {
			qty += " " + Dim(b.Unit)
		}
		days := fmt.Sprintf("%d", b.ComputedDurationDays)
		if b.HasManualSchedule() {
			days = StyleYellow.Render(fmt.Sprintf("%d*", b.ManualDurationDays))
		}
		rows = append(rows, []string{
			Dim(b.OrdinalLabel),
			b.Description,
			qty,
			Money(b.MaterialTotal),
			Money(b.LaborTotalOwn),
			Money(b.LaborTotalSub),
			Bold(Money(b.RowTotal())),
			days,
		})
	}
	return RenderTable(headers, rows)
}
