package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Project is a construction project. HourlyRate and HoursPerDay feed every
// line item's cost and duration calculation; changing HourlyRate cascades a
// recompute over the whole budget.
type Project struct {
	ID       string
	Name     string
	Status   ProjectStatus
	Location string

	ContactName string
	Client      string

	HourlyRate  decimal.Decimal
	HoursPerDay decimal.Decimal
	VATRate     decimal.Decimal
	Budget      *decimal.Decimal

	StartDate *time.Time
	EndDate   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a project cannot be stored without.
func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required),
		validation.Field(&p.HourlyRate, validation.By(nonNegative)),
		validation.Field(&p.HoursPerDay, validation.By(nonNegative)),
		validation.Field(&p.VATRate, validation.By(nonNegative)),
	)
}

// EffectiveStart returns the project's start date, or today when none is
// set. The schedule chain begins here.
func (p *Project) EffectiveStart(today time.Time) time.Time {
	if p.StartDate != nil {
		return *p.StartDate
	}
	return today
}
