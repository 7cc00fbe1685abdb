package main

import "github.com/yurifrl/rampboard/pkg/models"

// filters collects the flag values shared by every subcommand.
type filters struct {
	employee   string
	category   string
	status     string
	dateFrom   string
	dateTo     string
	minAmount  float64
	maxAmount  float64
	department string

	departments   []string
	categories    []string
	merchants     []string
	spendPrograms []string
	compliance    string
}

func (f *filters) toFilterOptions() models.FilterOptions {
	return models.FilterOptions{
		Employee:         f.employee,
		Category:         f.category,
		Status:           f.status,
		DateFrom:         f.dateFrom,
		DateTo:           f.dateTo,
		MinAmount:        f.minAmount,
		MaxAmount:        f.maxAmount,
		Department:       f.department,
		Departments:      f.departments,
		Categories:       f.categories,
		Merchants:        f.merchants,
		SpendPrograms:    f.spendPrograms,
		PolicyCompliance: f.compliance,
	}
}
