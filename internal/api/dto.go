package api

import (
	"github.com/mkovari/costline/internal/domain"
)

const dateLayout = "2006-01-02"

// ProjectSummary is the list representation of a project.
type ProjectSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Client    string `json:"client,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

func toProjectSummary(p *domain.Project) ProjectSummary {
	s := ProjectSummary{
		ID:     p.ID,
		Name:   p.Name,
		Status: string(p.Status),
		Client: p.Client,
	}
	if p.StartDate != nil {
		s.StartDate = p.StartDate.Format(dateLayout)
	}
	if p.EndDate != nil {
		s.EndDate = p.EndDate.Format(dateLayout)
	}
	return s
}

// ItemRow is the budget-table representation of a line item. Money fields
// are exact decimal strings.
type ItemRow struct {
	ID            string `json:"id"`
	OrdinalLabel  string `json:"ordinal_label"`
	Description   string `json:"description"`
	Unit          string `json:"unit,omitempty"`
	Quantity      string `json:"quantity"`
	MaterialTotal string `json:"material_total"`
	LaborTotalOwn string `json:"labor_total_own"`
	LaborTotalSub string `json:"labor_total_sub"`
	RowTotal      string `json:"row_total"`
	DurationDays  int    `json:"duration_days"`
}

func toItemRow(b *domain.BudgetLineItem) ItemRow {
	return ItemRow{
		ID:            b.ID,
		OrdinalLabel:  b.OrdinalLabel,
		Description:   b.Description,
		Unit:          b.Unit,
		Quantity:      b.Quantity.String(),
		MaterialTotal: b.MaterialTotal.String(),
		LaborTotalOwn: b.LaborTotalOwn.String(),
		LaborTotalSub: b.LaborTotalSub.String(),
		RowTotal:      b.RowTotal().String(),
		DurationDays:  b.ComputedDurationDays,
	}
}
