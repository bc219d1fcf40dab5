package payslip

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		month, year, want int
	}{
		{1, 2026, 31},
		{2, 2026, 28},
		{2, 2024, 29}, // leap year
		{2, 2100, 28}, // century non-leap
		{4, 2026, 30},
		{12, 2026, 31},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DaysInMonth(c.month, c.year), "month=%d year=%d", c.month, c.year)
	}
}

func TestCalculate(t *testing.T) {
	// 30000 base over a 30-day month with 25 paid days: 1000 per day,
	// 25000 basic, no deductions, 25000 net.
	comp := Calculate(decimal.NewFromInt(30000), 9, 2026, 25)

	assert.Equal(t, 30, comp.DaysInMonth)
	assert.Equal(t, 25, comp.PaidDays)
	assert.Equal(t, 5, comp.LOPDays)
	assert.True(t, comp.PerDaySalary.Equal(decimal.NewFromInt(1000)), "per day = %s", comp.PerDaySalary)
	assert.True(t, comp.BasicSalary.Equal(decimal.NewFromInt(25000)), "basic = %s", comp.BasicSalary)
	assert.True(t, comp.GrossEarnings.Equal(decimal.NewFromInt(25000)), "gross = %s", comp.GrossEarnings)
	assert.True(t, comp.TotalDeductions.IsZero())
	assert.True(t, comp.NetPayable.Equal(decimal.NewFromInt(25000)), "net = %s", comp.NetPayable)
}

func TestCalculate_ZeroPaidDays(t *testing.T) {
	comp := Calculate(decimal.NewFromInt(30000), 9, 2026, 0)

	assert.Equal(t, 0, comp.PaidDays)
	assert.Equal(t, 30, comp.LOPDays)
	assert.True(t, comp.NetPayable.IsZero())
}

func TestCalculate_FullMonth(t *testing.T) {
	comp := Calculate(decimal.NewFromInt(31000), 8, 2026, 31)

	assert.Equal(t, 0, comp.LOPDays)
	assert.True(t, comp.NetPayable.Equal(decimal.NewFromInt(31000)), "net = %s", comp.NetPayable)
}

func TestCalculate_PaidPlusLOPCoversMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		for paid := 0; paid <= DaysInMonth(month, 2026); paid++ {
			comp := Calculate(decimal.NewFromInt(12345), month, 2026, paid)
			assert.Equal(t, comp.DaysInMonth, comp.PaidDays+comp.LOPDays,
				"month=%d paid=%d", month, paid)
		}
	}
}
