package formatter

import (
	"fmt"
	"strings"

	"github.com/mkovari/costline/internal/domain"
)

// FormatCatalogList renders catalog items as an aligned table.
func FormatCatalogList(items []*domain.CatalogItem) string {
	headers := []string{"CODE", "DESCRIPTION", "UNIT", "MATERIAL", "LABOR", "MACHINE", "TOTAL", "H/UNIT"}
	rows := make([][]string, 0, len(items))
	for _, c := range items {
		rows = append(rows, []string{
			StylePurple.Render(c.Code),
			c.Description,
			c.Unit,
			Money(c.MaterialCost),
			Money(c.LaborCost),
			Money(c.MachineCost),
			Bold(Money(c.TotalPrice())),
			c.LaborHoursPerUnit.String(),
		})
	}
	return RenderTable(headers, rows)
}

// CatalogDetailData bundles a catalog item with its resolved component rows
// for the detail view.
type CatalogDetailData struct {
	Item       *domain.CatalogItem
	Materials  []CatalogComponentRow
	Operations []CatalogComponentRow
	Machines   []CatalogComponentRow
}

// CatalogComponentRow is one resolved component line: resource name plus
// amount and cost already formatted.
type CatalogComponentRow struct {
	Name   string
	Amount string
	Cost   string
}

// FormatCatalogDetail renders one catalog item with its build-up.
func FormatCatalogDetail(d CatalogDetailData) string {
	c := d.Item
	var b strings.Builder

	b.WriteString(Header(c.Code + "  " + c.Description))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n", Dim("Unit:"), c.Unit, Dim("Category:"), c.Category))
	b.WriteString(fmt.Sprintf("%s %s + %s + %s = %s\n",
		Dim("Unit price:"),
		Money(c.MaterialCost), Money(c.LaborCost), Money(c.MachineCost),
		Bold(Money(c.TotalPrice()))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Labor hours/unit:"), c.LaborHoursPerUnit.String()))

	section := func(title string, rows []CatalogComponentRow) {
		if len(rows) == 0 {
			return
		}
		b.WriteString("\n" + Header(title) + "\n")
		table := make([][]string, 0, len(rows))
		for _, r := range rows {
			table = append(table, []string{r.Name, r.Amount, r.Cost})
		}
		b.WriteString(RenderTable([]string{"RESOURCE", "AMOUNT", "COST"}, table))
	}
	section("materials", d.Materials)
	section("labor", d.Operations)
	section("machines", d.Machines)

	return b.String()
}
