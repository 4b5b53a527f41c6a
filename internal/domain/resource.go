package domain

import "github.com/shopspring/decimal"

// Material is priced reference data. When a line item links to a material,
// the material's price overrides any manually entered unit price.
type Material struct {
	ID    string
	Name  string
	Unit  string
	Price decimal.Decimal
}

// Operation is a unit of labor with an hourly rate, used in catalog
// build-ups.
type Operation struct {
	ID         string
	Name       string
	HourlyRate decimal.Decimal
}

// Machine is priced equipment used in catalog build-ups.
type Machine struct {
	ID    string
	Name  string
	Price decimal.Decimal
}
