package formatter

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mkovari/costline/internal/domain"
)

// FormatProjectList renders projects as an aligned table.
func FormatProjectList(projects []*domain.Project) string {
	headers := []string{"ID", "NAME", "STATUS", "CLIENT", "START", "RATE"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{
			TruncID(p.ID),
			Bold(p.Name),
			StatusPill(p.Status),
			p.Client,
			ShortDate(p.StartDate),
			Money(p.HourlyRate) + Dim("/h"),
		})
	}
	return RenderTable(headers, rows)
}

// FormatProjectDetail renders one project's header block and budget totals.
func FormatProjectDetail(p *domain.Project, items []*domain.BudgetLineItem) string {
	var b strings.Builder

	b.WriteString(Header(p.Name))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Status:"), StatusPill(p.Status)))
	if p.Client != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Client:"), p.Client))
	}
	if p.Location != "" {
		b.WriteString(fmt.Sprintf("%s %s\n", Dim("Location:"), p.Location))
	}
	b.WriteString(fmt.Sprintf("%s %s  %s %s\n",
		Dim("Start:"), ShortDate(p.StartDate),
		Dim("End:"), ShortDate(p.EndDate)))
	b.WriteString(fmt.Sprintf("%s %s/h at %s h/day, VAT %s%%\n",
		Dim("Rates:"), Money(p.HourlyRate), p.HoursPerDay.String(), p.VATRate.String()))

	if len(items) == 0 {
		b.WriteString("\n" + Dim("No budget line items.") + "\n")
		return b.String()
	}

	var material, laborOwn, laborSub decimal.Decimal
	for _, item := range items {
		material = material.Add(item.MaterialTotal)
		laborOwn = laborOwn.Add(item.LaborTotalOwn)
		laborSub = laborSub.Add(item.LaborTotalSub)
	}
	net := material.Add(laborOwn).Add(laborSub)
	vat := net.Mul(p.VATRate).Div(decimal.NewFromInt(100))

	b.WriteString("\n")
	b.WriteString(Header("budget"))
	b.WriteString("\n")
	b.WriteString(FormatItemTable(items))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Material:"), Money(material)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Labor (own):"), Money(laborOwn)))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Labor (sub):"), Money(laborSub)))
	b.WriteString(fmt.Sprintf("%s %s\n", Bold("Net total:"), Bold(Money(net))))
	b.WriteString(fmt.Sprintf("%s %s\n", Dim("Gross total:"), Money(net.Add(vat))))

	return b.String()
}
