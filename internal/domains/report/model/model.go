package model

import (
	"fmt"
	"time"

	catalogModel "agenda/internal/domains/catalog/model"
	"agenda/shared/constant"
	"agenda/shared/timezone"
)

// Period is an inclusive range of calendar days.
type Period struct {
	Month string
	From  timezone.Date
	To    timezone.Date
}

func ParsePeriod(month string) (Period, error) {
	start, err := time.Parse(constant.MonthKeyFormat, month)
	if err != nil {
		return Period{}, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", month, err)
	}

	return Period{
		Month: month,
		From:  timezone.DateFrom(start),
		To:    timezone.DateFrom(start.AddDate(0, 1, -1)),
	}, nil
}

type Breakdown struct {
	Service      float64
	Product      float64
	Subscription float64
}

func (b *Breakdown) Add(category catalogModel.Category, amount float64) {
	switch category {
	case catalogModel.CategoryProduct:
		b.Product += amount
	case catalogModel.CategorySubscription:
		b.Subscription += amount
	default:
		b.Service += amount
	}
}

// ProfessionalCommission is one row of the monthly commission report.
type ProfessionalCommission struct {
	ProfessionalID string
	Name           string
	Appointments   int
	Sales          float64
	Commission     float64
	Breakdown      Breakdown
}
